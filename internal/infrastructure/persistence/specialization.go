package persistence

import (
	"time"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// specializationRow is the scan target for the join of a specialization
// table with the parties base table
type specializationRow struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	TenantID  uuid.UUID
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Code      string
}

const specializationColumns = "parties.id, parties.created_at, parties.updated_at, parties.tenant_id, parties.name, parties.tax_id, parties.email, parties.phone, %s.code"

func (row *specializationRow) toParty() party.Party {
	return party.Party{
		TenantEntity: shared.TenantEntity{
			BaseEntity: shared.BaseEntity{
				ID:        row.ID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			TenantID: row.TenantID,
		},
		Name:  row.Name,
		TaxID: row.TaxID,
		Email: row.Email,
		Phone: row.Phone,
	}
}

// specializationOrderColumn qualifies a validated sort field with its
// table: code lives on the specialization table, everything else on parties
func specializationOrderColumn(table, field string) string {
	if field == "code" {
		return table + ".code"
	}
	return "parties." + field
}
