package entity

// Estados de pedido que informa la API; las transiciones las decide el backend.
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmado = "confirmado"
	EstadoEnviado    = "enviado"
	EstadoEntregado  = "entregado"
	EstadoCancelado  = "cancelado"
)

// Pedido respuesta de la API al confirmar una compra.
type Pedido struct {
	ID        int     `json:"id"`
	Estado    string  `json:"estado"`
	Total     float64 `json:"total"`
	ClienteID *int    `json:"cliente_id,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}
