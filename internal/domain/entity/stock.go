package entity

// Stock representa la existencia de un producto en una sucursal. Clave primaria
// (ProductID, BranchID, ClientID). Quantity es una foto absoluta: cada ingesta
// la reemplaza completa, nunca se acumula.
type Stock struct {
	ProductID string
	BranchID  string
	ClientID  string
	Quantity  int
}
