package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"marketplace-backend/internal/errs"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/payment"
	"marketplace-backend/internal/product"
	"marketplace-backend/internal/product/dto"
	"marketplace-backend/internal/slug"
)

// Options tune usecase behavior from config.
type Options struct {
	// UploadBaseURL prefixes stored filenames when synthesizing image URLs.
	UploadBaseURL string
	// StrictPaymentMethods rejects unknown payment-method ids on write.
	// When false they are accepted and silently dropped at read time.
	StrictPaymentMethods bool
}

type productUseCase struct {
	repo    product.Repository
	cache   product.Cache
	sellers product.SellerCounter
	opts    Options
	logger  *zap.Logger
}

func NewProductUseCase(repo product.Repository, cache product.Cache, sellers product.SellerCounter, opts Options, logger *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:    repo,
		cache:   cache,
		sellers: sellers,
		opts:    opts,
		logger:  logger,
	}
}

func (uc *productUseCase) Create(ctx context.Context, input *dto.CreateProductInput, owner *model.User, files []model.UploadedFile) (*dto.ProductDetail, error) {
	baseSlug := input.Slug
	if baseSlug == "" {
		baseSlug = slug.Make(input.Title)
	}

	images, mainImage, err := uc.resolveImages(files, input.Images, input.MainImage)
	if err != nil {
		return nil, err
	}

	warranty, err := resolveWarranty(input.Warranty)
	if err != nil {
		return nil, err
	}

	if err := uc.validatePaymentMethods(input.EnabledPaymentMethods); err != nil {
		return nil, err
	}

	p := &model.Product{
		Title:                 input.Title,
		Slug:                  baseSlug,
		Description:           input.Description,
		Price:                 input.Price,
		Images:                images,
		MainImage:             mainImage,
		Stock:                 input.Stock,
		Condition:             input.Condition,
		Category:              input.Category,
		Brand:                 input.Brand,
		Model:                 input.Model,
		Seller:                owner.SellerSnapshot(),
		Rating:                input.Rating,
		TotalReviews:          input.TotalReviews,
		EnabledPaymentMethods: input.EnabledPaymentMethods,
		FreeShipping:          input.FreeShipping,
		Warranty:              warranty,
		Features:              input.Features,
		AvailableColors:       colorsFromInput(input.AvailableColors),
	}

	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateAll(ctx)

	// Best effort: the product of record is already persisted, a failed
	// counter bump must not fail the create.
	if ok, err := uc.sellers.IncrementSalesCount(ctx, owner.ID); err != nil || !ok {
		uc.logger.Warn("failed to increment seller sales count",
			zap.String("seller_id", owner.ID), zap.Error(err))
	}

	return enrich(created), nil
}

func (uc *productUseCase) FindAll(ctx context.Context) ([]dto.ProductDetail, error) {
	if cached, ok := uc.cache.GetAll(ctx); ok {
		return enrichAll(cached), nil
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.SetAll(ctx, products)
	return enrichAll(products), nil
}

func (uc *productUseCase) FindOne(ctx context.Context, identifier string) (*dto.ProductDetail, error) {
	isID := model.LooksLikeProductID(identifier)
	if isID {
		if cached, ok := uc.cache.GetByID(ctx, identifier); ok {
			return enrich(cached), nil
		}
	}

	p, err := uc.repo.FindByIDOrSlug(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product with id or slug %q", errs.ErrNotFound, identifier)
	}

	if isID {
		uc.cache.SetByID(ctx, p)
	}
	return enrich(p), nil
}

func (uc *productUseCase) Update(ctx context.Context, id, requestingUserID string, input *dto.UpdateProductInput, files []model.UploadedFile) (*dto.ProductDetail, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: product with id %q", errs.ErrNotFound, id)
	}
	if existing.Seller.ID != requestingUserID {
		return nil, fmt.Errorf("%w: only the seller may update this product", errs.ErrForbidden)
	}

	updates := map[string]any{}

	setString := func(key string, val *string) {
		if val != nil {
			updates[key] = *val
		}
	}
	setString("title", input.Title)
	setString("description", input.Description)
	setString("condition", input.Condition)
	setString("category", input.Category)
	setString("brand", input.Brand)
	setString("model", input.Model)
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.TotalReviews != nil {
		updates["totalReviews"] = *input.TotalReviews
	}
	if input.FreeShipping != nil {
		updates["freeShipping"] = *input.FreeShipping
	}

	// Slug is regenerated only when the title changes without an explicit
	// slug, or when an explicit slug differs from the current one. The
	// repository disambiguates collisions.
	if input.Title != nil && *input.Title != existing.Title && input.Slug == nil {
		updates["slug"] = slug.Make(*input.Title)
	} else if input.Slug != nil && *input.Slug != existing.Slug {
		updates["slug"] = *input.Slug
	}

	// Image fields are replaced wholesale only when new files or URLs
	// arrive; otherwise the stored images stay untouched.
	if len(files) > 0 || len(input.Images) > 0 {
		var mainOverride string
		if input.MainImage != nil {
			mainOverride = *input.MainImage
		}
		images, mainImage, err := uc.resolveImages(files, input.Images, mainOverride)
		if err != nil {
			return nil, err
		}
		updates["images"] = images
		updates["mainImage"] = mainImage
	}

	if input.Warranty != nil {
		warranty, err := resolveWarranty(input.Warranty)
		if err != nil {
			return nil, err
		}
		updates["warranty"] = warranty
	}
	if input.EnabledPaymentMethods != nil {
		if err := uc.validatePaymentMethods(input.EnabledPaymentMethods); err != nil {
			return nil, err
		}
		updates["enabledPaymentMethods"] = input.EnabledPaymentMethods
	}
	if input.Features != nil {
		updates["features"] = input.Features
	}
	if input.AvailableColors != nil {
		updates["availableColors"] = colorsFromInput(input.AvailableColors)
	}

	updated, err := uc.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateByID(ctx, id)
	uc.cache.InvalidateAll(ctx)

	return enrich(updated), nil
}

func (uc *productUseCase) Remove(ctx context.Context, id, requestingUserID string) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: product with id %q", errs.ErrNotFound, id)
	}
	if existing.Seller.ID != requestingUserID {
		return fmt.Errorf("%w: only the seller may delete this product", errs.ErrForbidden)
	}

	if _, err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.InvalidateByID(ctx, id)
	uc.cache.InvalidateAll(ctx)
	return nil
}

func (uc *productUseCase) AvailablePaymentMethods() []model.PaymentMethod {
	return payment.Methods()
}

// resolveImages picks the image set: uploaded files win over URL lists.
// With neither, creation is invalid.
func (uc *productUseCase) resolveImages(files []model.UploadedFile, urls []string, mainImage string) ([]string, string, error) {
	if len(files) > 0 {
		images := make([]string, 0, len(files))
		base := strings.TrimRight(uc.opts.UploadBaseURL, "/")
		for _, f := range files {
			images = append(images, fmt.Sprintf("%s/uploads/%s", base, f.Filename))
		}
		return images, images[0], nil
	}

	if len(urls) > 0 {
		main := urls[0]
		if mainImage != "" {
			for _, u := range urls {
				if u == mainImage {
					main = mainImage
					break
				}
			}
		}
		return urls, main, nil
	}

	return nil, "", fmt.Errorf("%w: at least one image is required, either uploaded files or URLs", errs.ErrValidation)
}

func resolveWarranty(input *dto.WarrantyInput) (*model.Warranty, error) {
	if input == nil {
		return nil, nil
	}
	if input.Status == nil || input.Value == nil {
		return nil, fmt.Errorf("%w: warranty requires both status and value", errs.ErrValidation)
	}
	return &model.Warranty{Status: *input.Status, Value: *input.Value}, nil
}

func (uc *productUseCase) validatePaymentMethods(ids []string) error {
	if !uc.opts.StrictPaymentMethods {
		return nil
	}
	for _, id := range ids {
		if !payment.IsKnown(id) {
			return fmt.Errorf("%w: unknown payment method %q", errs.ErrValidation, id)
		}
	}
	return nil
}

func colorsFromInput(colors []dto.ColorInput) []model.ColorOption {
	if colors == nil {
		return nil
	}
	out := make([]model.ColorOption, 0, len(colors))
	for _, c := range colors {
		out = append(out, model.ColorOption{Name: c.Name, Image: c.Image})
	}
	return out
}

// enrich resolves the enabled payment-method ids against the static
// catalog; the embedded seller snapshot is already public-safe.
func enrich(p *model.Product) *dto.ProductDetail {
	return &dto.ProductDetail{
		Product:        *p,
		PaymentMethods: payment.Resolve(p.EnabledPaymentMethods),
	}
}

func enrichAll(products []model.Product) []dto.ProductDetail {
	out := make([]dto.ProductDetail, 0, len(products))
	for i := range products {
		out = append(out, *enrich(&products[i]))
	}
	return out
}
