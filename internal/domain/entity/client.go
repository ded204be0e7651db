package entity

import "time"

// Client representa un tenant (conector) de la API. APIKey autoriza la ingesta
// de datos y ReadToken las consultas; son secretos independientes: tener uno no
// otorga los privilegios del otro.
type Client struct {
	ID        string
	APIKey    string // credencial de escritura (ingesta)
	ReadToken string // credencial de lectura (consultas)
	CreatedAt time.Time
}
