package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sachinkumar2222/Productr/domain"
)

// ProductServiceImpl implements domain.ProductService.
type ProductServiceImpl struct {
	productRepo domain.ProductRepository
	assets      domain.AssetResolver
}

// NewProductService creates a new product service.
func NewProductService(productRepo domain.ProductRepository, assets domain.AssetResolver) *ProductServiceImpl {
	return &ProductServiceImpl{
		productRepo: productRepo,
		assets:      assets,
	}
}

// Create implements domain.ProductService.
func (s *ProductServiceImpl) Create(ctx context.Context, callerID string, input domain.ProductInput) (*domain.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	images, err := s.assets.Reconcile(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:           uuid.NewString(),
		OwnerID:      callerID,
		Name:         input.Name,
		Type:         input.Type,
		Stock:        input.Stock,
		MRP:          input.MRP,
		SellingPrice: input.SellingPrice,
		Brand:        input.Brand,
		Images:       images,
		Eligibility:  input.Eligibility,
		IsPublished:  false,
		CreatedAt:    time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// List implements domain.ProductService. Results are scoped to the caller
// and optionally filtered on the publish flag.
func (s *ProductServiceImpl) List(ctx context.Context, callerID string, published *bool) ([]domain.Product, error) {
	return s.productRepo.ListByOwner(ctx, callerID, published)
}

// Get implements domain.ProductService.
func (s *ProductServiceImpl) Get(ctx context.Context, callerID, id string) (*domain.Product, error) {
	return s.ownedProduct(ctx, callerID, id)
}

// Update implements domain.ProductService. When the update carries no image
// field the stored list is left untouched; a present list, even an empty
// one, fully replaces it after reconciliation.
func (s *ProductServiceImpl) Update(ctx context.Context, callerID, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	product, err := s.ownedProduct(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: name", domain.ErrValidation)
		}
		product.Name = *upd.Name
	}
	if upd.Type != nil {
		if !domain.IsValidProductType(*upd.Type) {
			return nil, fmt.Errorf("%w: unknown product type %q", domain.ErrValidation, *upd.Type)
		}
		product.Type = *upd.Type
	}
	if upd.Stock != nil {
		if *upd.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
		}
		product.Stock = *upd.Stock
	}
	if upd.MRP != nil {
		if *upd.MRP <= 0 {
			return nil, fmt.Errorf("%w: mrp must be positive", domain.ErrValidation)
		}
		product.MRP = *upd.MRP
	}
	if upd.SellingPrice != nil {
		if *upd.SellingPrice <= 0 {
			return nil, fmt.Errorf("%w: sellingPrice must be positive", domain.ErrValidation)
		}
		product.SellingPrice = *upd.SellingPrice
	}
	if upd.Brand != nil {
		if *upd.Brand == "" {
			return nil, fmt.Errorf("%w: brand", domain.ErrValidation)
		}
		product.Brand = *upd.Brand
	}
	if upd.Eligibility != nil {
		product.Eligibility = *upd.Eligibility
	}
	if upd.Images != nil {
		images, err := s.assets.Reconcile(ctx, *upd.Images)
		if err != nil {
			return nil, err
		}
		product.Images = images
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete implements domain.ProductService.
func (s *ProductServiceImpl) Delete(ctx context.Context, callerID, id string) error {
	product, err := s.ownedProduct(ctx, callerID, id)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// TogglePublish implements domain.ProductService. It flips the flag without
// touching any other field; two retries toggle twice.
func (s *ProductServiceImpl) TogglePublish(ctx context.Context, callerID, id string) (bool, error) {
	product, err := s.ownedProduct(ctx, callerID, id)
	if err != nil {
		return false, err
	}

	next := !product.IsPublished
	if err := s.productRepo.SetPublished(ctx, product.ID, next); err != nil {
		return false, fmt.Errorf("failed to update publish status: %w", err)
	}
	return next, nil
}

// ownedProduct loads a product and enforces the ownership invariant.
func (s *ProductServiceImpl) ownedProduct(ctx context.Context, callerID, id string) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

// validateInput checks create-time required fields, reporting the first
// missing one.
func validateInput(input domain.ProductInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name", domain.ErrValidation)
	}
	if input.Type == "" {
		return fmt.Errorf("%w: type", domain.ErrValidation)
	}
	if !domain.IsValidProductType(input.Type) {
		return fmt.Errorf("%w: unknown product type %q", domain.ErrValidation, input.Type)
	}
	if input.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	if input.MRP <= 0 {
		return fmt.Errorf("%w: mrp", domain.ErrValidation)
	}
	if input.SellingPrice <= 0 {
		return fmt.Errorf("%w: sellingPrice", domain.ErrValidation)
	}
	if input.Brand == "" {
		return fmt.Errorf("%w: brand", domain.ErrValidation)
	}
	return nil
}
