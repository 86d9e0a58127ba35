package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sachinkumar2222/Productr/domain"
	"github.com/sachinkumar2222/Productr/internal/http/middleware"
)

// ProductHandlers handles the catalog HTTP requests.
type ProductHandlers struct {
	productSvc domain.ProductService
}

// NewProductHandlers creates new product handlers.
func NewProductHandlers(productSvc domain.ProductService) *ProductHandlers {
	return &ProductHandlers{productSvc: productSvc}
}

// CreateProductRequest mirrors the client payload. Images are either
// data-URL encoded uploads or previously returned https references.
type CreateProductRequest struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Stock        int      `json:"stock"`
	MRP          float64  `json:"mrp"`
	SellingPrice float64  `json:"sellingPrice"`
	Brand        string   `json:"brand"`
	Images       []string `json:"images"`
	Eligibility  string   `json:"eligibility"`
}

// UpdateProductRequest carries a partial update. A nil Images field means
// "leave the stored list alone"; an empty non-nil one clears it.
type UpdateProductRequest struct {
	Name         *string   `json:"name"`
	Type         *string   `json:"type"`
	Stock        *int      `json:"stock"`
	MRP          *float64  `json:"mrp"`
	SellingPrice *float64  `json:"sellingPrice"`
	Brand        *string   `json:"brand"`
	Images       *[]string `json:"images"`
	Eligibility  *string   `json:"eligibility"`
}

// Create handles product creation.
func (h *ProductHandlers) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	images, err := parseImageEntries(req.Images)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := domain.ProductInput{
		Name:         req.Name,
		Type:         req.Type,
		Stock:        req.Stock,
		MRP:          req.MRP,
		SellingPrice: req.SellingPrice,
		Brand:        req.Brand,
		Images:       images,
		Eligibility:  req.Eligibility == "Yes",
	}

	product, err := h.productSvc.Create(c.Request.Context(), callerID(c), input)
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": productJSON(product),
	})
}

// List handles owner-scoped listing with an optional publish filter.
func (h *ProductHandlers) List(c *gin.Context) {
	var published *bool
	if raw, ok := c.GetQuery("isPublished"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid isPublished filter"})
			return
		}
		published = &v
	}

	products, err := h.productSvc.List(c.Request.Context(), callerID(c), published)
	if err != nil {
		respondProductError(c, err)
		return
	}

	out := make([]gin.H, 0, len(products))
	for i := range products {
		out = append(out, productJSON(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles fetching a single product.
func (h *ProductHandlers) Get(c *gin.Context) {
	product, err := h.productSvc.Get(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, productJSON(product))
}

// Update handles a partial product update.
func (h *ProductHandlers) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := domain.ProductUpdate{
		Name:         req.Name,
		Type:         req.Type,
		Stock:        req.Stock,
		MRP:          req.MRP,
		SellingPrice: req.SellingPrice,
		Brand:        req.Brand,
	}
	if req.Eligibility != nil {
		v := *req.Eligibility == "Yes"
		upd.Eligibility = &v
	}
	if req.Images != nil {
		images, err := parseImageEntries(*req.Images)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		upd.Images = &images
	}

	product, err := h.productSvc.Update(c.Request.Context(), callerID(c), c.Param("id"), upd)
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": productJSON(product),
	})
}

// Delete handles product deletion.
func (h *ProductHandlers) Delete(c *gin.Context) {
	if err := h.productSvc.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// TogglePublish flips the publish flag.
func (h *ProductHandlers) TogglePublish(c *gin.Context) {
	published, err := h.productSvc.TogglePublish(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		respondProductError(c, err)
		return
	}

	state := "unpublished"
	if published {
		state = "published"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Product %s successfully", state),
		"isPublished": published,
	})
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.IdentityIDKey)
}

// parseImageEntries classifies each incoming list element exactly once:
// data URLs become inline uploads, https URLs stay references.
func parseImageEntries(raw []string) ([]domain.ImageEntry, error) {
	entries := make([]domain.ImageEntry, 0, len(raw))
	for _, s := range raw {
		switch {
		case strings.HasPrefix(s, "data:image"):
			idx := strings.Index(s, "base64,")
			if idx < 0 {
				return nil, fmt.Errorf("%w: image data must be base64 encoded", domain.ErrValidation)
			}
			data, err := base64.StdEncoding.DecodeString(s[idx+len("base64,"):])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid image encoding", domain.ErrValidation)
			}
			entries = append(entries, domain.InlineImage(data))
		case strings.HasPrefix(s, "http"):
			entries = append(entries, domain.ImageRef(s))
		default:
			return nil, fmt.Errorf("%w: unrecognized image entry", domain.ErrValidation)
		}
	}
	return entries, nil
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, domain.ErrAssetUploadFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image upload failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

func productJSON(p *domain.Product) gin.H {
	eligibility := "No"
	if p.Eligibility {
		eligibility = "Yes"
	}
	return gin.H{
		"_id":          p.ID,
		"userId":       p.OwnerID,
		"name":         p.Name,
		"type":         p.Type,
		"stock":        p.Stock,
		"mrp":          p.MRP,
		"sellingPrice": p.SellingPrice,
		"brand":        p.Brand,
		"images":       p.Images,
		"eligibility":  eligibility,
		"isPublished":  p.IsPublished,
		"createdAt":    p.CreatedAt,
	}
}
