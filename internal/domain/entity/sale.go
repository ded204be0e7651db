package entity

// Sale representa una venta reportada por el conector. Clave primaria
// (ID, ClientID). Date es un día calendario en formato ISO "YYYY-MM-DD"
// (no un timestamp); la comparación lexicográfica de fechas depende de ese
// formato, por eso se valida en la ingesta.
type Sale struct {
	ID        string
	ClientID  string
	ProductID string
	Date      string
	Quantity  int
}

// SaleDateLayout formato requerido para Sale.Date.
const SaleDateLayout = "2006-01-02"
