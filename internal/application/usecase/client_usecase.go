package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-sync-api/internal/application/dto"
	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

// CredentialKind distingue qué secreto del cliente se valida.
type CredentialKind string

const (
	CredentialWrite CredentialKind = "write" // APIKey, autoriza ingesta
	CredentialRead  CredentialKind = "read"  // ReadToken, autoriza consultas
)

// DuplicatePolicy comportamiento del alta ante un clientId ya existente.
// Se elige por configuración para que el operador decida si el alta es
// idempotente o estricta.
type DuplicatePolicy string

const (
	DuplicateReject DuplicatePolicy = "reject" // 409 Conflict
	DuplicateIgnore DuplicatePolicy = "ignore" // no-op, responde las credenciales ya almacenadas
)

// ClientUseCase alta y resolución de clientes (tenants).
type ClientUseCase struct {
	repo   repository.ClientRepository
	policy DuplicatePolicy
}

// NewClientUseCase construye el caso de uso. policy vacío equivale a reject.
func NewClientUseCase(repo repository.ClientRepository, policy DuplicatePolicy) *ClientUseCase {
	if policy == "" {
		policy = DuplicateReject
	}
	return &ClientUseCase{repo: repo, policy: policy}
}

// Create da de alta un cliente. Los clientes son de solo creación: nunca se
// actualizan ni eliminan por esta vía. Credenciales vacías se generan
// automáticamente para que el alta siempre entregue credenciales usables.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.CreateClientResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	apiKey := in.APIKey
	if apiKey == "" {
		apiKey = uuid.New().String()
	}
	readToken := in.ReadToken
	if readToken == "" {
		readToken = uuid.New().String()
	}
	client := &entity.Client{
		ID:        in.ClientID,
		APIKey:    apiKey,
		ReadToken: readToken,
		CreatedAt: time.Now(),
	}
	err := uc.repo.Create(client)
	if errors.Is(err, domain.ErrDuplicate) && uc.policy == DuplicateIgnore {
		// No-op: el cliente ya existe y no se sobreescribe. Se responden las
		// credenciales vigentes, no las del intento.
		existing, getErr := uc.repo.GetByID(in.ClientID)
		if getErr != nil {
			return nil, fmt.Errorf("get client tras duplicado: %w", getErr)
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		client = existing
		err = nil
	}
	if err != nil {
		return nil, err
	}
	return &dto.CreateClientResponse{
		Status:    "ok",
		ClientID:  client.ID,
		APIKey:    client.APIKey,
		ReadToken: client.ReadToken,
	}, nil
}

// Resolve valida una credencial presentada contra el secreto del tipo indicado.
// Comparación por igualdad exacta, sensible a mayúsculas. Retorna
// domain.ErrUnauthorized si el cliente no existe o la credencial no coincide;
// cualquier otro error es un fallo de almacenamiento.
func (uc *ClientUseCase) Resolve(clientID, credential string, kind CredentialKind) (*entity.Client, error) {
	if clientID == "" || credential == "" {
		return nil, domain.ErrUnauthorized
	}
	client, err := uc.repo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}
	if client == nil {
		return nil, domain.ErrUnauthorized
	}
	expected := client.APIKey
	if kind == CredentialRead {
		expected = client.ReadToken
	}
	if credential != expected {
		return nil, domain.ErrUnauthorized
	}
	return client, nil
}
