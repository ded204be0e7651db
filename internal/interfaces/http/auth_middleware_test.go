package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventario-sync-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testClientID  = "cliente-a"
	testAPIKey    = "api-key-escritura"
	testReadToken = "read-token-lectura"
)

// doRequest lanza una petición con los headers dados y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func writeHeaders() map[string]string {
	return map[string]string{
		apphttp.HeaderClientID: testClientID,
		apphttp.HeaderAPIKey:   testAPIKey,
	}
}

func readHeaders() map[string]string {
	return map[string]string{
		apphttp.HeaderClientID: testClientID,
		apphttp.HeaderAPIKey:   testReadToken,
	}
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards de escritura y lectura
// ──────────────────────────────────────────────────────────────────────────────

// Sin headers de autenticación → 401 antes de ejecutar el handler.
func TestAuthMiddleware_SinHeaders_Retorna401(t *testing.T) {
	store := newMemStore()
	seedClient(store, testClientID, testAPIKey, testReadToken)
	app := buildTestApp(store, "")

	resp := doRequest(t, app, http.MethodPost, "/ingest/branches", `{"data":[]}`, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/branches", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Credencial de escritura válida en ruta de ingesta → 200.
func TestAuthMiddleware_APIKeyValida_Pasa(t *testing.T) {
	store := newMemStore()
	seedClient(store, testClientID, testAPIKey, testReadToken)
	app := buildTestApp(store, "")

	resp := doRequest(t, app, http.MethodPost, "/ingest/branches", `{"data":[]}`, writeHeaders())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// La credencial de lectura no autoriza escritura, ni la de escritura lectura:
// son secretos independientes.
func TestAuthMiddleware_TipoDeCredencialCruzado_Retorna401(t *testing.T) {
	store := newMemStore()
	seedClient(store, testClientID, testAPIKey, testReadToken)
	app := buildTestApp(store, "")

	// ReadToken en ruta de escritura
	resp := doRequest(t, app, http.MethodPost, "/ingest/branches", `{"data":[]}`, readHeaders())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"read token no debe autorizar ingesta")

	// APIKey en ruta de lectura
	resp = doRequest(t, app, http.MethodGet, "/branches", "", writeHeaders())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"api key no debe autorizar consultas")
}

// La credencial también se acepta como Authorization: Bearer.
func TestAuthMiddleware_BearerValido_Pasa(t *testing.T) {
	store := newMemStore()
	seedClient(store, testClientID, testAPIKey, testReadToken)
	app := buildTestApp(store, "")

	resp := doRequest(t, app, http.MethodGet, "/branches", "", map[string]string{
		apphttp.HeaderClientID:    testClientID,
		fiber.HeaderAuthorization: "Bearer " + testReadToken,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// X-API-Key tiene prioridad sobre Bearer: si ambos vienen, se valida X-API-Key.
func TestAuthMiddleware_XAPIKeyTienePrioridadSobreBearer(t *testing.T) {
	store := newMemStore()
	seedClient(store, testClientID, testAPIKey, testReadToken)
	app := buildTestApp(store, "")

	resp := doRequest(t, app, http.MethodGet, "/branches", "", map[string]string{
		apphttp.HeaderClientID:    testClientID,
		apphttp.HeaderAPIKey:      "credencial-incorrecta",
		fiber.HeaderAuthorization: "Bearer " + testReadToken,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"con X-API-Key presente el Bearer válido no debe rescatar la petición")
}

// Cliente inexistente → 401, no 404: no se revela si el tenant existe.
func TestAuthMiddleware_ClienteInexistente_Retorna401(t *testing.T) {
	store := newMemStore()
	app := buildTestApp(store, "")

	resp := doRequest(t, app, http.MethodGet, "/branches", "", readHeaders())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Fallo del almacenamiento al resolver → 500 con mensaje opaco.
func TestAuthMiddleware_FalloDeStorage_Retorna500(t *testing.T) {
	store := newMemStore()
	seedClient(store, testClientID, testAPIKey, testReadToken)
	store.clientErr = errors.New("conexión perdida")
	app := buildTestApp(store, "")

	resp := doRequest(t, app, http.MethodGet, "/branches", "", readHeaders())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.NotContains(t, body["error"], "conexión perdida",
		"el detalle del error interno no debe llegar al cliente")
}
