package dto

import "github.com/muebleria-iris/tienda/internal/domain/entity"

// ProductoFiltro parámetros de GET /productos.
type ProductoFiltro struct {
	CategoriaID int    `query:"categoria"`
	Busqueda    string `query:"q"`
	PageRequest
}

// ProductoListResponse listado paginado del catálogo.
type ProductoListResponse struct {
	Items []entity.Producto `json:"items"`
	Page  PageRequest       `json:"page"`
}
