package catalog

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product management operations for a vendor's
// storefront.
type ProductService struct {
	productRepo catalog.ProductRepository
	storage     ObjectStorageService
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, storage ObjectStorageService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		storage:     storage,
	}
}

// Create creates a new product. The SKU is generated sequentially from
// the vendor's current catalog size, and the initial stock baseline is
// recorded for stock-level classification.
func (s *ProductService) Create(ctx context.Context, vendorID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	count, err := s.productRepo.CountForVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(vendorID, req.Name, req.Price, req.Stock, shared.NewSKU(count+1))
	if err != nil {
		return nil, err
	}
	if req.Description != "" || req.Category != "" {
		if err := product.Update(req.Name, req.Description, req.Category, req.Price); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product owned by the vendor
func (s *ProductService) GetByID(ctx context.Context, vendorID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves the vendor's products, newest first
func (s *ProductService) List(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]ProductResponse, error) {
	if filter.OrderBy == "" {
		filter = shared.DefaultFilter()
	}
	products, err := s.productRepo.FindAllForVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update updates a product's details
func (s *ProductService) Update(ctx context.Context, vendorID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	category := product.Category
	if req.Category != nil {
		category = *req.Category
	}
	price := product.Price
	if req.Price != nil {
		price = *req.Price
	}

	if err := product.Update(name, description, category, price); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// AdjustStock sets the product's current stock quantity
func (s *ProductService) AdjustStock(ctx context.Context, vendorID, productID uuid.UUID, quantity int) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.AdjustStock(quantity); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// UploadImage stores the product image in the blob store under a
// generated object key and saves the returned public URL on the
// product record.
func (s *ProductService) UploadImage(ctx context.Context, vendorID, productID uuid.UUID, filename, contentType string, body io.Reader) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/%s%s", vendorID, productID, path.Ext(filename))
	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	product.SetImageURL(url)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product from the vendor's catalog
func (s *ProductService) Delete(ctx context.Context, vendorID, productID uuid.UUID) error {
	return s.productRepo.DeleteForVendor(ctx, vendorID, productID)
}
