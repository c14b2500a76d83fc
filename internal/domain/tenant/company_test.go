package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	t.Run("creates company with uppercased tax ID", func(t *testing.T) {
		company, err := NewCompany("Acme SL", "b12345678")

		require.NoError(t, err)
		assert.NotNil(t, company)
		assert.NotEqual(t, company.ID.String(), "00000000-0000-0000-0000-000000000000")
		assert.Equal(t, "Acme SL", company.Name)
		assert.Equal(t, "B12345678", company.TaxID)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCompany("", "B12345678")

		assert.Error(t, err)
	})

	t.Run("rejects empty tax ID", func(t *testing.T) {
		_, err := NewCompany("Acme SL", "")

		assert.Error(t, err)
	})
}

func TestCompany_Rename(t *testing.T) {
	t.Run("renames company", func(t *testing.T) {
		company, _ := NewCompany("Acme SL", "B12345678")

		err := company.Rename("Acme Industries SL")

		require.NoError(t, err)
		assert.Equal(t, "Acme Industries SL", company.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		company, _ := NewCompany("Acme SL", "B12345678")

		err := company.Rename("")

		assert.Error(t, err)
		assert.Equal(t, "Acme SL", company.Name)
	})
}
