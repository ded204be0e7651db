package dto

// CreateClientRequest alta de un cliente (tenant) vía /admin/add-client.
// Si apiKey o readToken vienen vacíos se generan automáticamente.
type CreateClientRequest struct {
	ClientID  string `json:"clientId"`
	APIKey    string `json:"apiKey"`
	ReadToken string `json:"readToken"`
}

// CreateClientResponse incluye las credenciales efectivas (las recibidas o las
// generadas) para que el alta siempre entregue credenciales usables.
type CreateClientResponse struct {
	Status    string `json:"status"`
	ClientID  string `json:"clientId"`
	APIKey    string `json:"apiKey"`
	ReadToken string `json:"readToken"`
}
