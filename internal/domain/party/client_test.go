package party

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates client with uppercased code and backing party", func(t *testing.T) {
		client, err := NewClient(tenantID, "cli001", "Comercial Norte SL", "B98765432")

		require.NoError(t, err)
		assert.Equal(t, "CLI001", client.Code)
		assert.Equal(t, tenantID, client.TenantID())
		assert.NotEqual(t, uuid.Nil, client.PartyID())
		assert.Equal(t, "Comercial Norte SL", client.Party.Name)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewClient(tenantID, "", "Comercial Norte SL", "B98765432")

		assert.Error(t, err)
	})

	t.Run("rejects code with invalid characters", func(t *testing.T) {
		_, err := NewClient(tenantID, "CLI 001", "Comercial Norte SL", "B98765432")

		assert.Error(t, err)
	})

	t.Run("propagates party validation failures", func(t *testing.T) {
		_, err := NewClient(tenantID, "CLI001", "", "B98765432")

		assert.Error(t, err)
	})
}

func TestClient_UpdateCode(t *testing.T) {
	t.Run("updates code", func(t *testing.T) {
		client, _ := NewClient(uuid.New(), "CLI001", "Comercial Norte SL", "B98765432")

		err := client.UpdateCode("cli002")

		require.NoError(t, err)
		assert.Equal(t, "CLI002", client.Code)
	})

	t.Run("rejects invalid code", func(t *testing.T) {
		client, _ := NewClient(uuid.New(), "CLI001", "Comercial Norte SL", "B98765432")

		err := client.UpdateCode("")

		assert.Error(t, err)
		assert.Equal(t, "CLI001", client.Code)
	})
}

func TestNewSupplier(t *testing.T) {
	t.Run("creates supplier mirroring the client shape", func(t *testing.T) {
		tenantID := uuid.New()

		supplier, err := NewSupplier(tenantID, "prv-7", "Suministros Sur SA", "A11223344")

		require.NoError(t, err)
		assert.Equal(t, "PRV-7", supplier.Code)
		assert.Equal(t, tenantID, supplier.TenantID())
		assert.Equal(t, "Suministros Sur SA", supplier.Party.Name)
	})
}
