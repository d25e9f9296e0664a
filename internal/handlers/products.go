package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmstand/internal/media"
	"farmstand/internal/models"
)

type ProductStore interface {
	List(ctx context.Context, marketID string) ([]models.Product, error)
	ByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
}

type VendorStore interface {
	ByUserPhone(ctx context.Context, phone string) (*models.Vendor, error)
}

type ProductHandler struct {
	products ProductStore
	vendors  VendorStore
	uploader media.Uploader
	logger   *zap.Logger
}

func NewProductHandler(products ProductStore, vendors VendorStore, uploader media.Uploader, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, vendors: vendors, uploader: uploader, logger: logger}
}

// productForm is the multipart payload shared by create and update.
// Image arrives as a base64 data URI string, not a file part.
type productForm struct {
	Name        string
	Description string
	Tag         models.Tag
	Image       string
}

// bindProductForm extracts and validates the form. Image presence is
// checked before the text fields; the error messages are part of the
// API contract.
func bindProductForm(c *gin.Context, imageRequired bool) (productForm, bool) {
	f := productForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Tag:         models.NormalizeTag(c.PostForm("tag")),
		Image:       strings.TrimSpace(c.PostForm("image")),
	}
	if imageRequired && f.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return f, false
	}
	if f.Name == "" || f.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and description are required"})
		return f, false
	}
	return f, true
}

func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.products.List(c.Request.Context(), c.Query("marketId"))
	if err != nil {
		h.logger.Error("listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.products.ByID(c.Request.Context(), c.Param("productId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error("loading product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	f, ok := bindProductForm(c, true)
	if !ok {
		return
	}

	vendor, err := h.vendors.ByUserPhone(ctx, sessionPhone(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor account not found"})
			return
		}
		h.logger.Error("resolving vendor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	imageURL, err := h.uploader.Upload(ctx, f.Image)
	if err != nil {
		h.logger.Error("uploading image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	p := models.Product{
		Name:        f.Name,
		Description: f.Description,
		Tags:        pq.StringArray{string(f.Tag)},
		Image:       imageURL,
		VendorID:    vendor.ID,
	}
	if err := h.products.Create(ctx, &p); err != nil {
		// the uploaded media is orphaned at this point; log the URL so
		// an operator can reap it
		h.logger.Error("creating product", zap.Error(err), zap.String("orphaned_image", imageURL))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.products.ByID(ctx, c.Param("productId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error("loading product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	f, ok := bindProductForm(c, false)
	if !ok {
		return
	}

	if _, err := h.vendors.ByUserPhone(ctx, sessionPhone(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor account not found"})
			return
		}
		h.logger.Error("resolving vendor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	// the edit form sends either the stored URL back or a fresh data
	// URI; only the latter needs a new upload
	if strings.HasPrefix(f.Image, "data:") {
		imageURL, err := h.uploader.Upload(ctx, f.Image)
		if err != nil {
			h.logger.Error("uploading image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		p.Image = imageURL
	}

	p.Name = f.Name
	p.Description = f.Description
	p.Tags = pq.StringArray{string(f.Tag)}

	if err := h.products.Update(ctx, p); err != nil {
		h.logger.Error("updating product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, p)
}
