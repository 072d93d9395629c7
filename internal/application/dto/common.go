package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP del servidor de la tienda.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIErrorBody forma del error que devuelve la API de la mueblería.
type APIErrorBody struct {
	Error   string `json:"error"`
	Detalle string `json:"detalle,omitempty"`
}
