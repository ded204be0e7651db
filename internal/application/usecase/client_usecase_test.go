package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-sync-api/internal/application/dto"
	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
)

type fakeClientRepo struct {
	clients map[string]*entity.Client
	getErr  error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (f *fakeClientRepo) Create(c *entity.Client) error {
	if _, ok := f.clients[c.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClientCreate_GeneraCredencialesVacias(t *testing.T) {
	repo := newFakeClientRepo()
	uc := NewClientUseCase(repo, "")

	out, err := uc.Create(dto.CreateClientRequest{ClientID: "c1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.APIKey)
	assert.NotEmpty(t, out.ReadToken)
	assert.NotEqual(t, out.APIKey, out.ReadToken)
	assert.Equal(t, repo.clients["c1"].APIKey, out.APIKey,
		"la respuesta debe reflejar lo persistido")
}

func TestClientCreate_SinClientID_EsInvalido(t *testing.T) {
	uc := NewClientUseCase(newFakeClientRepo(), "")
	_, err := uc.Create(dto.CreateClientRequest{APIKey: "k"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientCreate_DuplicadoReject(t *testing.T) {
	repo := newFakeClientRepo()
	uc := NewClientUseCase(repo, DuplicateReject)

	_, err := uc.Create(dto.CreateClientRequest{ClientID: "c1", APIKey: "k1", ReadToken: "t1"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateClientRequest{ClientID: "c1", APIKey: "k2", ReadToken: "t2"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "k1", repo.clients["c1"].APIKey, "nunca se sobreescribe")
}

func TestClientCreate_DuplicadoIgnore(t *testing.T) {
	repo := newFakeClientRepo()
	uc := NewClientUseCase(repo, DuplicateIgnore)

	_, err := uc.Create(dto.CreateClientRequest{ClientID: "c1", APIKey: "k1", ReadToken: "t1"})
	require.NoError(t, err)
	out, err := uc.Create(dto.CreateClientRequest{ClientID: "c1", APIKey: "k2", ReadToken: "t2"})
	require.NoError(t, err)
	assert.Equal(t, "k1", out.APIKey, "se responden las credenciales vigentes, no las del intento")
	assert.Equal(t, "k1", repo.clients["c1"].APIKey)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_PorTipoDeCredencial(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients["c1"] = &entity.Client{ID: "c1", APIKey: "clave-w", ReadToken: "clave-r"}
	uc := NewClientUseCase(repo, "")

	client, err := uc.Resolve("c1", "clave-w", CredentialWrite)
	require.NoError(t, err)
	assert.Equal(t, "c1", client.ID)

	client, err = uc.Resolve("c1", "clave-r", CredentialRead)
	require.NoError(t, err)
	assert.Equal(t, "c1", client.ID)

	// Tipo cruzado: cada secreto solo vale para su guard.
	_, err = uc.Resolve("c1", "clave-r", CredentialWrite)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Resolve("c1", "clave-w", CredentialRead)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_ComparacionExacta(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients["c1"] = &entity.Client{ID: "c1", APIKey: "Secreto", ReadToken: "t"}
	uc := NewClientUseCase(repo, "")

	_, err := uc.Resolve("c1", "secreto", CredentialWrite)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la comparación es sensible a mayúsculas")
}

func TestResolve_ClienteInexistenteOVacio(t *testing.T) {
	uc := NewClientUseCase(newFakeClientRepo(), "")

	_, err := uc.Resolve("nadie", "x", CredentialWrite)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Resolve("", "x", CredentialWrite)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Resolve("c1", "", CredentialRead)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_FalloDeStorageNoEs401(t *testing.T) {
	repo := newFakeClientRepo()
	repo.getErr = errors.New("conexión perdida")
	uc := NewClientUseCase(repo, "")

	_, err := uc.Resolve("c1", "x", CredentialWrite)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized,
		"un fallo de almacenamiento debe distinguirse de credencial inválida")
}
