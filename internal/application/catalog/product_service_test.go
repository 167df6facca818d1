package catalog

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CountForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	args := m.Called(ctx, vendorID, id)
	return args.Error(0)
}

// stubStorage records uploads without touching a real blob store
type stubStorage struct {
	uploadedKey string
	uploadErr   error
}

func (s *stubStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploadedKey = key
	return "https://cdn.example.com/" + key, nil
}

func (s *stubStorage) Delete(ctx context.Context, key string) error {
	return nil
}

func TestProductService_Create(t *testing.T) {
	vendorID := uuid.New()

	t.Run("successful creation generates sequential SKU", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, &stubStorage{})

		repo.On("CountForVendor", mock.Anything, vendorID).Return(int64(4), nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(context.Background(), vendorID, CreateProductRequest{
			Name:  "Jollof Rice Mix",
			Price: decimal.NewFromFloat(25.50),
			Stock: 100,
		})

		require.NoError(t, err)
		assert.Equal(t, "SKU-0005", resp.SKU)
		assert.Equal(t, 100, resp.Stock)
		assert.Equal(t, 100, resp.InitialStock)
		assert.Equal(t, catalog.StockLevelActive, resp.StockLevel)
		repo.AssertExpectations(t)
	})

	t.Run("invalid product never reaches the repository", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, &stubStorage{})

		repo.On("CountForVendor", mock.Anything, vendorID).Return(int64(0), nil)

		_, err := service.Create(context.Background(), vendorID, CreateProductRequest{
			Name:  "",
			Price: decimal.NewFromInt(10),
			Stock: 5,
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_GetByID(t *testing.T) {
	vendorID := uuid.New()

	t.Run("missing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, &stubStorage{})

		id := uuid.New()
		repo.On("FindByIDForVendor", mock.Anything, vendorID, id).Return(nil, shared.ErrNotFound)

		_, err := service.GetByID(context.Background(), vendorID, id)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("response carries derived stock level", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, &stubStorage{})

		product, err := catalog.NewProduct(vendorID, "Shea Butter", decimal.NewFromInt(15), 100, "SKU-0001")
		require.NoError(t, err)
		require.NoError(t, product.AdjustStock(30))

		repo.On("FindByIDForVendor", mock.Anything, vendorID, product.ID).Return(product, nil)

		resp, err := service.GetByID(context.Background(), vendorID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, catalog.StockLevelLow, resp.StockLevel)
		assert.InDelta(t, 30.0, resp.StockRemainingPercent, 0.001)
	})
}

func TestProductService_AdjustStock(t *testing.T) {
	vendorID := uuid.New()
	repo := new(MockProductRepository)
	service := NewProductService(repo, &stubStorage{})

	product, err := catalog.NewProduct(vendorID, "Kente Scarf", decimal.NewFromInt(45), 50, "SKU-0002")
	require.NoError(t, err)

	repo.On("FindByIDForVendor", mock.Anything, vendorID, product.ID).Return(product, nil)
	repo.On("Save", mock.Anything, product).Return(nil)

	resp, err := service.AdjustStock(context.Background(), vendorID, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, catalog.StockLevelOutOfStock, resp.StockLevel)
	repo.AssertExpectations(t)
}

func TestProductService_UploadImage(t *testing.T) {
	vendorID := uuid.New()
	repo := new(MockProductRepository)
	storage := &stubStorage{}
	service := NewProductService(repo, storage)

	product, err := catalog.NewProduct(vendorID, "Ankara Fabric", decimal.NewFromInt(30), 20, "SKU-0003")
	require.NoError(t, err)

	repo.On("FindByIDForVendor", mock.Anything, vendorID, product.ID).Return(product, nil)
	repo.On("Save", mock.Anything, product).Return(nil)

	resp, err := service.UploadImage(context.Background(), vendorID, product.ID, "fabric.png", "image/png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)
	assert.Contains(t, resp.ImageURL, product.ID.String())
	assert.Contains(t, storage.uploadedKey, "products/"+vendorID.String())
	repo.AssertExpectations(t)
}
