package handler

import (
	catalogapp "github.com/africommerce/backend/internal/application/catalog"
	"github.com/africommerce/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles product catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"max=1000"`
	Category    string  `json:"category" binding:"max=100"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

// AdjustStockRequest represents a request to set a product's stock level
type AdjustStockRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}

// Create handles POST /catalog/products
func (h *ProductHandler) Create(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), vendorID, catalogapp.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       toDecimal(req.Price),
		Stock:       req.Stock,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// GetByID handles GET /catalog/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), vendorID, productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// List handles GET /catalog/products
func (h *ProductHandler) List(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.productService.List(c.Request.Context(), vendorID, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, products)
}

// Update handles PUT /catalog/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := catalogapp.UpdateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Price != nil {
		appReq.Price = toDecimalPtr(*req.Price)
	}

	product, err := h.productService.Update(c.Request.Context(), vendorID, productID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// AdjustStock handles PATCH /catalog/products/:id/stock
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), vendorID, productID, req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// UploadImage handles POST /catalog/products/:id/image
func (h *ProductHandler) UploadImage(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read image file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	product, err := h.productService.UploadImage(c.Request.Context(), vendorID, productID, fileHeader.Filename, contentType, file)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete handles DELETE /catalog/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), vendorID, productID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
