package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sachinkumar2222/Productr/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM.
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// DBProduct represents the database model for Product. Images are stored as
// a JSON array so insertion order survives round trips.
type DBProduct struct {
	ID           string `gorm:"primaryKey;size:36"`
	OwnerID      string `gorm:"index;size:36"`
	Name         string `gorm:"size:255"`
	Type         string `gorm:"size:64"`
	Stock        int
	MRP          float64 `gorm:"column:mrp"`
	SellingPrice float64
	Brand        string    `gorm:"size:255"`
	Images       string    `gorm:"type:jsonb"`
	Eligibility  bool
	IsPublished  bool      `gorm:"index"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM.
func (DBProduct) TableName() string {
	return "products"
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) *ProductRepositoryImpl {
	return &ProductRepositoryImpl{db: db}
}

// Create implements domain.ProductRepository.
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	dbProduct, err := r.domainToDB(product)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(dbProduct).Error
}

// FindByID implements domain.ProductRepository.
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProduct)
}

// ListByOwner implements domain.ProductRepository, newest first.
func (r *ProductRepositoryImpl) ListByOwner(ctx context.Context, ownerID string, published *bool) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if published != nil {
		q = q.Where("is_published = ?", *published)
	}

	var dbProducts []DBProduct
	if err := q.Order("created_at DESC").Find(&dbProducts).Error; err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		p, err := r.dbToDomain(&dbProducts[i])
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

// Update implements domain.ProductRepository.
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	dbProduct, err := r.domainToDB(product)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(dbProduct).Error
}

// Delete implements domain.ProductRepository.
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DBProduct{}, "id = ?", id).Error
}

// SetPublished implements domain.ProductRepository, touching only the flag.
func (r *ProductRepositoryImpl) SetPublished(ctx context.Context, id string, published bool) error {
	return r.db.WithContext(ctx).Model(&DBProduct{}).Where("id = ?", id).Update("is_published", published).Error
}

// domainToDB converts a domain product to a database product.
func (r *ProductRepositoryImpl) domainToDB(product *domain.Product) (*DBProduct, error) {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image list: %w", err)
	}

	return &DBProduct{
		ID:           product.ID,
		OwnerID:      product.OwnerID,
		Name:         product.Name,
		Type:         product.Type,
		Stock:        product.Stock,
		MRP:          product.MRP,
		SellingPrice: product.SellingPrice,
		Brand:        product.Brand,
		Images:       string(data),
		Eligibility:  product.Eligibility,
		IsPublished:  product.IsPublished,
		CreatedAt:    product.CreatedAt,
	}, nil
}

// dbToDomain converts a database product to a domain product.
func (r *ProductRepositoryImpl) dbToDomain(dbProduct *DBProduct) (*domain.Product, error) {
	var images []string
	if dbProduct.Images != "" {
		if err := json.Unmarshal([]byte(dbProduct.Images), &images); err != nil {
			return nil, fmt.Errorf("failed to decode image list: %w", err)
		}
	}
	if images == nil {
		images = []string{}
	}

	return &domain.Product{
		ID:           dbProduct.ID,
		OwnerID:      dbProduct.OwnerID,
		Name:         dbProduct.Name,
		Type:         dbProduct.Type,
		Stock:        dbProduct.Stock,
		MRP:          dbProduct.MRP,
		SellingPrice: dbProduct.SellingPrice,
		Brand:        dbProduct.Brand,
		Images:       images,
		Eligibility:  dbProduct.Eligibility,
		IsPublished:  dbProduct.IsPublished,
		CreatedAt:    dbProduct.CreatedAt,
		UpdatedAt:    dbProduct.UpdatedAt,
	}, nil
}

var _ domain.ProductRepository = (*ProductRepositoryImpl)(nil)
