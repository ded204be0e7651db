package entity

// Branch representa una sucursal del cliente. Clave primaria (ID, ClientID);
// el nombre se reemplaza en cada ingesta (last-write-wins).
type Branch struct {
	ID       string
	ClientID string
	Name     string
}
