package dto

// ErrorResponse cuerpo de error HTTP: {"error": "mensaje"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse respuesta genérica de éxito.
type StatusResponse struct {
	Status string `json:"status"`
}

// Mensajes opacos para fallos de almacenamiento: el detalle se registra en el
// log, nunca se expone al cliente.
const (
	MsgInternal     = "error interno"
	MsgUnauthorized = "credenciales inválidas"
)
