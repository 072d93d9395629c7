package entity

// Producto tal como lo publica el catálogo de la API.
type Producto struct {
	ID          int      `json:"id"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion,omitempty"`
	Precio      float64  `json:"precio"`
	Stock       int      `json:"stock"`
	CategoriaID *int     `json:"categoria_id,omitempty"`
	Imagen      string   `json:"imagen,omitempty"`
	Colores     []string `json:"colores,omitempty"`
	Activo      bool     `json:"activo"`
}

// ToCartItem arma la línea de carrito para la variante elegida.
func (p Producto) ToCartItem(color string) CartItem {
	return CartItem{
		ID:     p.ID,
		Nombre: p.Nombre,
		Precio: p.Precio,
		Color:  color,
		Imagen: p.Imagen,
	}
}

// Categoria agrupa productos del catálogo.
type Categoria struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}
