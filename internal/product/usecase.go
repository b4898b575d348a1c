package product

import (
	"context"

	"marketplace-backend/internal/model"
	"marketplace-backend/internal/product/dto"
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreateProductInput, owner *model.User, files []model.UploadedFile) (*dto.ProductDetail, error)
	FindAll(ctx context.Context) ([]dto.ProductDetail, error)
	// FindOne accepts an id or a slug.
	FindOne(ctx context.Context, identifier string) (*dto.ProductDetail, error)
	Update(ctx context.Context, id, requestingUserID string, input *dto.UpdateProductInput, files []model.UploadedFile) (*dto.ProductDetail, error)
	Remove(ctx context.Context, id, requestingUserID string) error

	AvailablePaymentMethods() []model.PaymentMethod
}

// Cache is the best-effort read accelerator consumed by the usecase.
// Implementations must swallow backend failures: reads degrade to a
// miss, writes and invalidations to a no-op.
type Cache interface {
	GetAll(ctx context.Context) ([]model.Product, bool)
	SetAll(ctx context.Context, products []model.Product)
	GetByID(ctx context.Context, id string) (*model.Product, bool)
	SetByID(ctx context.Context, p *model.Product)
	InvalidateAll(ctx context.Context)
	InvalidateByID(ctx context.Context, id string)
}

// SellerCounter is the slice of the user service the product usecase
// needs: bumping the seller's sales counter after a successful create.
type SellerCounter interface {
	IncrementSalesCount(ctx context.Context, id string) (bool, error)
}
