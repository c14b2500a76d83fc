package party

import (
	"context"
	"testing"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Add(ctx context.Context, client *party.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, client *party.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, partyID uuid.UUID) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

func (m *MockClientRepository) FindByPartyID(ctx context.Context, partyID uuid.UUID) (*party.Client, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Client), args.Error(1)
}

func (m *MockClientRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*party.Client, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Client), args.Error(1)
}

func (m *MockClientRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]party.Client, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]party.Client), args.Error(1)
}

func (m *MockClientRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPartyRepository is a mock implementation of PartyRepository
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]party.Party, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]party.Party), args.Error(1)
}

func (m *MockPartyRepository) Save(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartyRepository) ExistsByTaxID(ctx context.Context, tenantID uuid.UUID, taxID string) (bool, error) {
	args := m.Called(ctx, tenantID, taxID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPartyRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

// =============================================================================
// Tests
// =============================================================================

func TestClientService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates client with contact fields", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		clientRepo.On("ExistsByCode", mock.Anything, tenantID, "CLI001").Return(false, nil)
		partyRepo.On("ExistsByTaxID", mock.Anything, tenantID, "B98765432").Return(false, nil)
		clientRepo.On("Add", mock.Anything, mock.AnythingOfType("*party.Client")).Return(nil)

		resp, err := service.Create(context.Background(), tenantID, CreateSpecializationRequest{
			Code:  "cli001",
			Name:  "Comercial Norte SL",
			TaxID: "b98765432",
			Email: "compras@norte.example",
			Phone: "+34 600 111 222",
		})

		require.NoError(t, err)
		assert.Equal(t, "CLI001", resp.Code)
		assert.Equal(t, "B98765432", resp.TaxID)
		assert.Equal(t, "compras@norte.example", resp.Email)
		assert.Equal(t, tenantID, resp.TenantID)
		clientRepo.AssertExpectations(t)
		partyRepo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate code", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		clientRepo.On("ExistsByCode", mock.Anything, tenantID, "CLI001").Return(true, nil)

		_, err := service.Create(context.Background(), tenantID, CreateSpecializationRequest{
			Code:  "CLI001",
			Name:  "Comercial Norte SL",
			TaxID: "B98765432",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		clientRepo.AssertNotCalled(t, "Add")
	})

	t.Run("rejects a duplicate tax id", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		clientRepo.On("ExistsByCode", mock.Anything, tenantID, "CLI001").Return(false, nil)
		partyRepo.On("ExistsByTaxID", mock.Anything, tenantID, "B98765432").Return(true, nil)

		_, err := service.Create(context.Background(), tenantID, CreateSpecializationRequest{
			Code:  "CLI001",
			Name:  "Comercial Norte SL",
			TaxID: "B98765432",
		})

		require.Error(t, err)
		clientRepo.AssertNotCalled(t, "Add")
	})

	t.Run("rejects an invalid email before touching the store", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		clientRepo.On("ExistsByCode", mock.Anything, tenantID, "CLI001").Return(false, nil)
		partyRepo.On("ExistsByTaxID", mock.Anything, tenantID, "B98765432").Return(false, nil)

		_, err := service.Create(context.Background(), tenantID, CreateSpecializationRequest{
			Code:  "CLI001",
			Name:  "Comercial Norte SL",
			TaxID: "B98765432",
			Email: "not-an-email",
		})

		require.Error(t, err)
		clientRepo.AssertNotCalled(t, "Add")
	})
}

func TestClientService_Update(t *testing.T) {
	tenantID := uuid.New()

	newClient := func(t *testing.T) *party.Client {
		t.Helper()
		client, err := party.NewClient(tenantID, "CLI001", "Comercial Norte SL", "B98765432")
		require.NoError(t, err)
		return client
	}

	t.Run("renames and recodes in one call", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		client := newClient(t)
		clientRepo.On("FindByPartyID", mock.Anything, client.PartyID()).Return(client, nil)
		clientRepo.On("ExistsByCode", mock.Anything, tenantID, "CLI002").Return(false, nil)
		clientRepo.On("Update", mock.Anything, client).Return(nil)

		newCode := "CLI002"
		newName := "Comercial Norte 2000 SL"
		resp, err := service.Update(context.Background(), client.PartyID(), UpdateSpecializationRequest{
			Code: &newCode,
			Name: &newName,
		})

		require.NoError(t, err)
		assert.Equal(t, "CLI002", resp.Code)
		assert.Equal(t, "Comercial Norte 2000 SL", resp.Name)
		clientRepo.AssertExpectations(t)
	})

	t.Run("skips the code check when the code is unchanged", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		client := newClient(t)
		clientRepo.On("FindByPartyID", mock.Anything, client.PartyID()).Return(client, nil)
		clientRepo.On("Update", mock.Anything, client).Return(nil)

		sameCode := "CLI001"
		_, err := service.Update(context.Background(), client.PartyID(), UpdateSpecializationRequest{
			Code: &sameCode,
		})

		require.NoError(t, err)
		clientRepo.AssertNotCalled(t, "ExistsByCode")
	})

	t.Run("propagates not found", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		partyID := uuid.New()
		clientRepo.On("FindByPartyID", mock.Anything, partyID).Return(nil, shared.ErrNotFound)

		_, err := service.Update(context.Background(), partyID, UpdateSpecializationRequest{})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestClientService_Delete(t *testing.T) {
	t.Run("delegates to the store", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		partyID := uuid.New()
		clientRepo.On("Delete", mock.Anything, partyID).Return(nil)

		err := service.Delete(context.Background(), partyID)

		assert.NoError(t, err)
		clientRepo.AssertExpectations(t)
	})
}

func TestClientService_List(t *testing.T) {
	t.Run("applies list defaults", func(t *testing.T) {
		tenantID := uuid.New()
		clientRepo := new(MockClientRepository)
		partyRepo := new(MockPartyRepository)
		service := NewClientService(clientRepo, partyRepo)

		expectedFilter := shared.Filter{Page: 1, PageSize: 20, OrderBy: "name", OrderDir: "asc"}
		clientRepo.On("FindAllForTenant", mock.Anything, tenantID, expectedFilter).Return([]party.Client{}, nil)
		clientRepo.On("CountForTenant", mock.Anything, tenantID).Return(int64(0), nil)

		_, total, err := service.List(context.Background(), tenantID, ListFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		clientRepo.AssertExpectations(t)
	})
}
