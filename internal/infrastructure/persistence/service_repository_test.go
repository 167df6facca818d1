package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTestDB(t *testing.T) *GormServiceRepository {
	t.Helper()

	db, err := NewSQLiteDatabase(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.DB.AutoMigrate(&catalog.Service{}))

	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewGormServiceRepository(db.DB)
}

func newStoredService(t *testing.T, repo *GormServiceRepository, vendorID uuid.UUID, name string, createdAt time.Time) *catalog.Service {
	t.Helper()

	svc, err := catalog.NewService(vendorID, name, decimal.NewFromInt(50), 60)
	require.NoError(t, err)
	svc.CreatedAt = createdAt
	require.NoError(t, repo.Save(context.Background(), svc))
	return svc
}

func TestGormServiceRepository_FindByIDForVendor(t *testing.T) {
	repo := setupServiceTestDB(t)
	vendorID := uuid.New()

	svc := newStoredService(t, repo, vendorID, "Express Delivery Setup", time.Now())

	t.Run("should find service for its vendor", func(t *testing.T) {
		found, err := repo.FindByIDForVendor(context.Background(), vendorID, svc.ID)
		require.NoError(t, err)
		assert.Equal(t, svc.ID, found.ID)
		assert.Equal(t, "Express Delivery Setup", found.Name)
	})

	t.Run("should not find service for another vendor", func(t *testing.T) {
		_, err := repo.FindByIDForVendor(context.Background(), uuid.New(), svc.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should report not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByIDForVendor(context.Background(), vendorID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormServiceRepository_FindAllForVendor(t *testing.T) {
	repo := setupServiceTestDB(t)
	vendorID := uuid.New()
	base := time.Now().Add(-time.Hour)

	older := newStoredService(t, repo, vendorID, "Tailoring", base)
	newer := newStoredService(t, repo, vendorID, "Phone Repair", base.Add(30*time.Minute))
	newStoredService(t, repo, uuid.New(), "Other Vendor Service", base)

	t.Run("should return only the vendor's services newest first", func(t *testing.T) {
		services, err := repo.FindAllForVendor(context.Background(), vendorID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, services, 2)
		assert.Equal(t, newer.ID, services[0].ID)
		assert.Equal(t, older.ID, services[1].ID)
	})

	t.Run("should respect pagination", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.PageSize = 1
		filter.Page = 2

		services, err := repo.FindAllForVendor(context.Background(), vendorID, filter)
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, older.ID, services[0].ID)
	})

	t.Run("should ignore unsortable order columns", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "status; DROP TABLE services"

		services, err := repo.FindAllForVendor(context.Background(), vendorID, filter)
		require.NoError(t, err)
		assert.Len(t, services, 2)
	})
}

func TestGormServiceRepository_Save(t *testing.T) {
	repo := setupServiceTestDB(t)
	vendorID := uuid.New()

	svc := newStoredService(t, repo, vendorID, "Catering", time.Now())

	svc.Name = "Event Catering"
	require.NoError(t, repo.Save(context.Background(), svc))

	found, err := repo.FindByIDForVendor(context.Background(), vendorID, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Event Catering", found.Name)
}

func TestGormServiceRepository_DeleteForVendor(t *testing.T) {
	repo := setupServiceTestDB(t)
	vendorID := uuid.New()

	svc := newStoredService(t, repo, vendorID, "Cleaning", time.Now())

	t.Run("should not delete across vendors", func(t *testing.T) {
		err := repo.DeleteForVendor(context.Background(), uuid.New(), svc.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should delete for the owning vendor", func(t *testing.T) {
		require.NoError(t, repo.DeleteForVendor(context.Background(), vendorID, svc.ID))

		_, err := repo.FindByIDForVendor(context.Background(), vendorID, svc.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
