package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/facturante/backend/internal/domain/catalog"
	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/facturante/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteDB opens an in-memory database with the full schema for
// behavioral tests that need real transaction semantics
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection only: every pooled connection to :memory: would
	// otherwise get its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.CompanyModel{},
		&models.PartyModel{},
		&models.ClientModel{},
		&models.SupplierModel{},
		&models.AddressModel{},
		&models.ProductModel{},
		&models.TaxRateModel{},
		&models.InvoiceModel{},
		&models.InvoiceLineModel{},
	))

	return db
}

func TestClientRepository_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a client through both tables", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormClientRepository(db)
		tenantID := uuid.New()

		client, err := party.NewClient(tenantID, "CLI001", "Comercial Norte SL", "B98765432")
		require.NoError(t, err)
		require.NoError(t, client.Party.SetContact("ventas@norte.example", "+34 912 345 678"))

		require.NoError(t, repo.Add(ctx, client))

		found, err := repo.FindByCode(ctx, tenantID, "cli001")
		require.NoError(t, err)
		assert.Equal(t, client.PartyID(), found.PartyID())
		assert.Equal(t, "CLI001", found.Code)
		assert.Equal(t, "Comercial Norte SL", found.Party.Name)
		assert.Equal(t, "B98765432", found.Party.TaxID)
		assert.Equal(t, "ventas@norte.example", found.Party.Email)
	})

	t.Run("duplicate code rolls back the party insert", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormClientRepository(db)
		partyRepo := NewGormPartyRepository(db)
		tenantID := uuid.New()

		first, err := party.NewClient(tenantID, "CLI001", "Comercial Norte SL", "B98765432")
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, first))

		second, err := party.NewClient(tenantID, "CLI001", "Otra Empresa SL", "B11111111")
		require.NoError(t, err)

		err = repo.Add(ctx, second)
		require.Error(t, err)

		// The base row of the failed insert must not survive.
		_, err = partyRepo.FindByID(ctx, second.PartyID())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		count, err := partyRepo.CountForTenant(ctx, tenantID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("same code is legal across tenants", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormClientRepository(db)
		tenantA := uuid.New()
		tenantB := uuid.New()

		a, err := party.NewClient(tenantA, "CLI001", "Empresa A", "B00000001")
		require.NoError(t, err)
		b, err := party.NewClient(tenantB, "CLI001", "Empresa B", "B00000002")
		require.NoError(t, err)

		require.NoError(t, repo.Add(ctx, a))
		require.NoError(t, repo.Add(ctx, b))

		clientsA, err := repo.FindAllForTenant(ctx, tenantA, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, clientsA, 1)
		assert.Equal(t, "Empresa A", clientsA[0].Party.Name)
	})

	t.Run("delete removes client, party and addresses", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormClientRepository(db)
		partyRepo := NewGormPartyRepository(db)
		addressRepo := NewGormAddressRepository(db)
		tenantID := uuid.New()

		client, err := party.NewClient(tenantID, "CLI001", "Comercial Norte SL", "B98765432")
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, client))

		addr, err := party.NewAddress(client.PartyID(), party.AddressLabelFiscal, "Calle Mayor 1", "28001", "Madrid", "Madrid", "España")
		require.NoError(t, err)
		require.NoError(t, addressRepo.Add(ctx, addr))

		require.NoError(t, repo.Delete(ctx, client.PartyID()))

		_, err = repo.FindByPartyID(ctx, client.PartyID())
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = partyRepo.FindByID(ctx, client.PartyID())
		assert.ErrorIs(t, err, shared.ErrNotFound)
		remaining, err := addressRepo.FindAllForParty(ctx, client.PartyID())
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("update rewrites party fields and code together", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormClientRepository(db)
		tenantID := uuid.New()

		client, err := party.NewClient(tenantID, "CLI001", "Comercial Norte SL", "B98765432")
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, client))

		require.NoError(t, client.Party.Rename("Comercial Norte 2000 SL"))
		require.NoError(t, client.UpdateCode("CLI002"))
		require.NoError(t, repo.Update(ctx, client))

		found, err := repo.FindByCode(ctx, tenantID, "CLI002")
		require.NoError(t, err)
		assert.Equal(t, "Comercial Norte 2000 SL", found.Party.Name)

		_, err = repo.FindByCode(ctx, tenantID, "CLI001")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSupplierRepository_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("clients and suppliers keep independent code spaces", func(t *testing.T) {
		db := newSQLiteDB(t)
		clientRepo := NewGormClientRepository(db)
		supplierRepo := NewGormSupplierRepository(db)
		tenantID := uuid.New()

		client, err := party.NewClient(tenantID, "X-1", "Cliente SL", "B00000001")
		require.NoError(t, err)
		supplier, err := party.NewSupplier(tenantID, "X-1", "Proveedor SA", "A00000002")
		require.NoError(t, err)

		require.NoError(t, clientRepo.Add(ctx, client))
		require.NoError(t, supplierRepo.Add(ctx, supplier))

		foundClient, err := clientRepo.FindByCode(ctx, tenantID, "X-1")
		require.NoError(t, err)
		foundSupplier, err := supplierRepo.FindByCode(ctx, tenantID, "X-1")
		require.NoError(t, err)
		assert.NotEqual(t, foundClient.PartyID(), foundSupplier.PartyID())
	})
}

func TestProductRepository_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips optional references", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormProductRepository(db)
		tenantID := uuid.New()
		supplierID := uuid.New()

		product, err := catalog.NewProductWithPrices(tenantID, "ART-001", "Tornillo M6",
			valueobject.NewMoneyEURFromFloat(2.50), valueobject.NewMoneyEURFromFloat(4.95))
		require.NoError(t, err)
		require.NoError(t, product.AssignSupplier(supplierID, "REF-99"))

		require.NoError(t, repo.Add(ctx, product))

		found, err := repo.FindByCode(ctx, tenantID, "art-001")
		require.NoError(t, err)
		require.NotNil(t, found.SupplierID)
		assert.Equal(t, supplierID, *found.SupplierID)
		assert.Nil(t, found.TaxRateID)
		assert.Equal(t, "4.95", found.SalePrice.StringFixed(2))
	})

	t.Run("clearing the supplier persists as null", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormProductRepository(db)
		tenantID := uuid.New()

		product, err := catalog.NewProduct(tenantID, "ART-002", "Tuerca M6")
		require.NoError(t, err)
		require.NoError(t, product.AssignSupplier(uuid.New(), "REF-1"))
		require.NoError(t, repo.Add(ctx, product))

		product.ClearSupplier()
		require.NoError(t, repo.Update(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Nil(t, found.SupplierID)
		assert.Empty(t, found.SupplierReference)
	})

	t.Run("duplicate code in a tenant is rejected", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormProductRepository(db)
		tenantID := uuid.New()

		first, err := catalog.NewProduct(tenantID, "ART-001", "Tornillo M6")
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, first))

		second, err := catalog.NewProduct(tenantID, "ART-001", "Otro artículo")
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Add(ctx, second), shared.ErrAlreadyExists)
	})

	t.Run("same code is legal across tenants", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormProductRepository(db)
		tenantA := uuid.New()
		tenantB := uuid.New()

		a, err := catalog.NewProduct(tenantA, "ART-001", "Tornillo M6")
		require.NoError(t, err)
		b, err := catalog.NewProduct(tenantB, "ART-001", "Tornillo M6 ajeno")
		require.NoError(t, err)

		require.NoError(t, repo.Add(ctx, a))
		require.NoError(t, repo.Add(ctx, b))

		productsA, err := repo.FindAllForTenant(ctx, tenantA, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, productsA, 1)
		assert.Equal(t, tenantA, productsA[0].TenantID)

		// The unscoped listing sees both tenants' rows.
		all, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("survives deletion of its supplier party", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormProductRepository(db)
		supplierRepo := NewGormSupplierRepository(db)
		tenantID := uuid.New()

		supplier, err := party.NewSupplier(tenantID, "PRV001", "Suministros Centro SA", "A11223344")
		require.NoError(t, err)
		require.NoError(t, supplierRepo.Add(ctx, supplier))

		product, err := catalog.NewProduct(tenantID, "ART-001", "Tornillo M6")
		require.NoError(t, err)
		require.NoError(t, product.AssignSupplier(supplier.PartyID(), "SC-8841"))
		require.NoError(t, repo.Add(ctx, product))

		// supplier_id is a weak reference: dropping the party must not
		// drag the product along.
		require.NoError(t, supplierRepo.Delete(ctx, supplier.PartyID()))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "ART-001", found.Code)
	})
}

func TestInvoiceRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	issueDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	newPersistedInvoice := func(t *testing.T, repo *GormInvoiceRepository, tenantID uuid.UUID, number string) *billing.Invoice {
		t.Helper()
		invoice, err := billing.NewInvoice(tenantID, billing.InvoiceKindSale, number, issueDate, uuid.New())
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, invoice))
		return invoice
	}

	t.Run("save with lines keeps header and lines in step", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		lineRepo := NewGormInvoiceLineRepository(db)
		tenantID := uuid.New()

		invoice := newPersistedInvoice(t, repo, tenantID, "F-2026-00001")

		lines := []billing.InvoiceLine{
			*mustNewLine(t, invoice.ID, "Tornillo M6", 2, 10, 0),
			*mustNewLine(t, invoice.ID, "Tuerca M6", 1, 50, 20),
			*mustNewLine(t, invoice.ID, "Arandela", 5, 4, 0),
		}
		totals, err := billing.CalculateTotals(lines, decimal.NewFromFloat(0.21))
		require.NoError(t, err)
		require.NoError(t, invoice.ApplyTotals(totals))

		require.NoError(t, repo.SaveWithLines(ctx, invoice, lines))

		reloaded, err := repo.FindByID(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, "96.80", reloaded.GrandTotal.StringFixed(2))

		storedLines, err := lineRepo.FindAllByInvoice(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Len(t, storedLines, 3)
	})

	t.Run("save with lines replaces the previous line set", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		lineRepo := NewGormInvoiceLineRepository(db)
		tenantID := uuid.New()

		invoice := newPersistedInvoice(t, repo, tenantID, "F-2026-00001")
		first := []billing.InvoiceLine{*mustNewLine(t, invoice.ID, "Inicial", 1, 100, 0)}
		require.NoError(t, repo.SaveWithLines(ctx, invoice, first))

		second := []billing.InvoiceLine{
			*mustNewLine(t, invoice.ID, "Reemplazo A", 1, 10, 0),
			*mustNewLine(t, invoice.ID, "Reemplazo B", 1, 20, 0),
		}
		require.NoError(t, repo.SaveWithLines(ctx, invoice, second))

		storedLines, err := lineRepo.FindAllByInvoice(ctx, invoice.ID)
		require.NoError(t, err)
		require.Len(t, storedLines, 2)
		assert.Equal(t, "Reemplazo A", storedLines[0].Description)
	})

	t.Run("number sequence walks per tenant and kind", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		tenantID := uuid.New()

		number, err := repo.NextNumber(ctx, tenantID, billing.InvoiceKindSale, 2026)
		require.NoError(t, err)
		assert.Equal(t, "F-2026-00001", number)

		newPersistedInvoice(t, repo, tenantID, number)

		number, err = repo.NextNumber(ctx, tenantID, billing.InvoiceKindSale, 2026)
		require.NoError(t, err)
		assert.Equal(t, "F-2026-00002", number)

		// Purchases and other tenants do not advance this sequence.
		purchase, err := repo.NextNumber(ctx, tenantID, billing.InvoiceKindPurchase, 2026)
		require.NoError(t, err)
		assert.Equal(t, "R-2026-00001", purchase)

		other, err := repo.NextNumber(ctx, uuid.New(), billing.InvoiceKindSale, 2026)
		require.NoError(t, err)
		assert.Equal(t, "F-2026-00001", other)
	})

	t.Run("voided invoices keep their number out of circulation", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		tenantID := uuid.New()

		invoice := newPersistedInvoice(t, repo, tenantID, "F-2026-00001")
		require.NoError(t, invoice.Void())
		require.NoError(t, repo.Update(ctx, invoice))

		number, err := repo.NextNumber(ctx, tenantID, billing.InvoiceKindSale, 2026)
		require.NoError(t, err)
		assert.Equal(t, "F-2026-00002", number)
	})

	t.Run("duplicate number for the same tenant and kind is rejected", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		tenantID := uuid.New()

		newPersistedInvoice(t, repo, tenantID, "F-2026-00001")

		duplicate, err := billing.NewInvoice(tenantID, billing.InvoiceKindSale, "F-2026-00001", issueDate, uuid.New())
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Add(ctx, duplicate), shared.ErrAlreadyExists)
	})

	t.Run("same number is legal across tenants", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		tenantA := uuid.New()
		tenantB := uuid.New()

		newPersistedInvoice(t, repo, tenantA, "F-2026-00001")
		newPersistedInvoice(t, repo, tenantB, "F-2026-00001")

		invoicesA, err := repo.FindAllForTenant(ctx, tenantA, billing.InvoiceKindSale, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, invoicesA, 1)
		assert.Equal(t, tenantA, invoicesA[0].TenantID)
	})

	t.Run("sequence keeps counting past its zero padding", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		tenantID := uuid.New()

		newPersistedInvoice(t, repo, tenantID, "F-2026-99999")
		newPersistedInvoice(t, repo, tenantID, "F-2026-100000")

		number, err := repo.NextNumber(ctx, tenantID, billing.InvoiceKindSale, 2026)
		require.NoError(t, err)
		assert.Equal(t, "F-2026-100001", number)
	})

	t.Run("survives deletion of the party it is addressed to", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		clientRepo := NewGormClientRepository(db)
		tenantID := uuid.New()

		client, err := party.NewClient(tenantID, "CLI001", "Comercial Norte SL", "B98765432")
		require.NoError(t, err)
		require.NoError(t, clientRepo.Add(ctx, client))

		invoice, err := billing.NewInvoice(tenantID, billing.InvoiceKindSale, "F-2026-00001", issueDate, client.PartyID())
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, invoice))

		require.NoError(t, clientRepo.Delete(ctx, client.PartyID()))

		found, err := repo.FindByID(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, client.PartyID(), found.PartyID)
	})

	t.Run("delete removes header and lines together", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := NewGormInvoiceRepository(db)
		lineRepo := NewGormInvoiceLineRepository(db)
		tenantID := uuid.New()

		invoice := newPersistedInvoice(t, repo, tenantID, "F-2026-00001")
		lines := []billing.InvoiceLine{*mustNewLine(t, invoice.ID, "Única", 1, 10, 0)}
		require.NoError(t, repo.SaveWithLines(ctx, invoice, lines))

		require.NoError(t, repo.Delete(ctx, invoice.ID))

		_, err := repo.FindByID(ctx, invoice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		remaining, err := lineRepo.FindAllByInvoice(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}

func mustNewLine(t *testing.T, invoiceID uuid.UUID, description string, qty, unitPrice, discount float64) *billing.InvoiceLine {
	t.Helper()
	line, err := billing.NewInvoiceLine(
		invoiceID,
		description,
		decimal.NewFromFloat(qty),
		valueobject.NewMoneyEURFromFloat(unitPrice),
		decimal.NewFromFloat(discount),
	)
	require.NoError(t, err)
	return line
}
