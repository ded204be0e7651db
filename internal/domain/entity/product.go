package entity

// Product representa un producto del catálogo del cliente. Clave primaria
// (ID, ClientID); todos los campos no clave se reemplazan en cada ingesta.
type Product struct {
	ID         string
	ClientID   string
	SKU        string
	Name       string
	SupplierID string
}
