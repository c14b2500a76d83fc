package party

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	partyID := uuid.New()

	t.Run("creates address with valid label", func(t *testing.T) {
		addr, err := NewAddress(partyID, AddressLabelFiscal, "Calle Mayor 1", "28001", "Madrid", "Madrid", "España")

		require.NoError(t, err)
		assert.Equal(t, partyID, addr.PartyID)
		assert.Equal(t, AddressLabelFiscal, addr.Label)
		assert.Equal(t, "28001", addr.PostalCode)
	})

	t.Run("rejects unknown label", func(t *testing.T) {
		_, err := NewAddress(partyID, AddressLabel("billing"), "Calle Mayor 1", "28001", "Madrid", "Madrid", "España")

		assert.Error(t, err)
	})

	t.Run("rejects empty party ID", func(t *testing.T) {
		_, err := NewAddress(uuid.Nil, AddressLabelShipping, "Calle Mayor 1", "28001", "Madrid", "Madrid", "España")

		assert.Error(t, err)
	})

	t.Run("allows duplicate labels per party", func(t *testing.T) {
		// Multiple addresses with the same label are legal; no uniqueness
		// constraint exists on the label.
		a, err := NewAddress(partyID, AddressLabelShipping, "Calle Mayor 1", "28001", "Madrid", "Madrid", "España")
		require.NoError(t, err)
		b, err := NewAddress(partyID, AddressLabelShipping, "Av. del Puerto 2", "46021", "Valencia", "Valencia", "España")
		require.NoError(t, err)

		assert.Equal(t, a.Label, b.Label)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestAddress_Relabel(t *testing.T) {
	t.Run("changes label", func(t *testing.T) {
		addr, _ := NewAddress(uuid.New(), AddressLabelOther, "Calle Mayor 1", "28001", "Madrid", "Madrid", "España")

		err := addr.Relabel(AddressLabelFiscal)

		require.NoError(t, err)
		assert.Equal(t, AddressLabelFiscal, addr.Label)
	})

	t.Run("rejects invalid label", func(t *testing.T) {
		addr, _ := NewAddress(uuid.New(), AddressLabelOther, "Calle Mayor 1", "28001", "Madrid", "Madrid", "España")

		err := addr.Relabel(AddressLabel(""))

		assert.Error(t, err)
		assert.Equal(t, AddressLabelOther, addr.Label)
	})
}

func TestAddressLabel_IsValid(t *testing.T) {
	assert.True(t, AddressLabelFiscal.IsValid())
	assert.True(t, AddressLabelShipping.IsValid())
	assert.True(t, AddressLabelOther.IsValid())
	assert.False(t, AddressLabel("postal").IsValid())
}
