package domain

// Categoria is a product grouping. Immutable once created; the id is
// generated server-side.
type Categoria struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
