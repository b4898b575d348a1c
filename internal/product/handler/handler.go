// Package handler exposes the product REST endpoints.
package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketplace-backend/config"
	"marketplace-backend/internal/auth"
	"marketplace-backend/internal/errs"
	"marketplace-backend/internal/httputil"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/product"
	"marketplace-backend/internal/product/dto"
	"marketplace-backend/internal/user"
)

// allowedImageMimes mirrors the upload policy: images only.
var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type ProductHandler struct {
	uc     product.UseCase
	users  user.UseCase
	upload config.UploadConfig
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, users user.UseCase, upload config.UploadConfig, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, users: users, upload: upload, logger: logger}
}

// RegisterRoutes mounts the product endpoints; mutating routes sit
// behind the auth middleware.
func (h *ProductHandler) RegisterRoutes(api *gin.RouterGroup, authMW gin.HandlerFunc) {
	products := api.Group("/products")
	{
		products.GET("", h.FindAll)
		products.GET("/payment-methods", h.PaymentMethods)
		products.GET("/:term", h.FindOne)

		protected := products.Group("", authMW)
		{
			protected.POST("", h.Create)
			protected.PATCH("/:id", h.Update)
			protected.DELETE("/:id", h.Delete)
		}
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	owner, ok := h.currentUser(c)
	if !ok {
		return
	}

	var input dto.CreateProductInput
	if err := c.ShouldBind(&input); err != nil {
		httputil.Error(c, h.logger, fmt.Errorf("%w: %v", errs.ErrValidation, err))
		return
	}

	files, err := h.storeUploadedImages(c)
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}

	detail, err := h.uc.Create(c.Request.Context(), &input, owner, files)
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *ProductHandler) FindAll(c *gin.Context) {
	details, err := h.uc.FindAll(c.Request.Context())
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *ProductHandler) FindOne(c *gin.Context) {
	detail, err := h.uc.FindOne(c.Request.Context(), c.Param("term"))
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ProductHandler) Update(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		httputil.Error(c, h.logger, errs.ErrUnauthorized)
		return
	}

	var input dto.UpdateProductInput
	if err := c.ShouldBind(&input); err != nil {
		httputil.Error(c, h.logger, fmt.Errorf("%w: %v", errs.ErrValidation, err))
		return
	}

	files, err := h.storeUploadedImages(c)
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}

	detail, err := h.uc.Update(c.Request.Context(), c.Param("id"), userID, &input, files)
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		httputil.Error(c, h.logger, errs.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	if err := h.uc.Remove(c.Request.Context(), id, userID); err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Product with ID %s has been deleted", id)})
}

func (h *ProductHandler) PaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.AvailablePaymentMethods())
}

func (h *ProductHandler) currentUser(c *gin.Context) (*model.User, bool) {
	userID, ok := auth.UserID(c)
	if !ok {
		httputil.Error(c, h.logger, errs.ErrUnauthorized)
		return nil, false
	}
	u, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil || u == nil {
		httputil.Error(c, h.logger, errs.ErrUnauthorized)
		return nil, false
	}
	return u, true
}

// storeUploadedImages validates and persists multipart "images" files,
// returning their stored descriptors. A JSON request yields no files.
func (h *ProductHandler) storeUploadedImages(c *gin.Context) ([]model.UploadedFile, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("%w: reading multipart form: %v", errs.ErrValidation, err)
	}
	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		return nil, nil
	}
	if len(fileHeaders) > h.upload.MaxFiles {
		return nil, fmt.Errorf("%w: at most %d images allowed", errs.ErrValidation, h.upload.MaxFiles)
	}

	if err := os.MkdirAll(h.upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating upload dir: %v", errs.ErrInternal, err)
	}

	files := make([]model.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if err := h.validateImage(fh); err != nil {
			return nil, err
		}
		stored := uuid.New().String() + filepath.Ext(fh.Filename)
		if err := c.SaveUploadedFile(fh, filepath.Join(h.upload.Dir, stored)); err != nil {
			return nil, fmt.Errorf("%w: saving upload: %v", errs.ErrInternal, err)
		}
		files = append(files, model.UploadedFile{
			Filename:     stored,
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
		})
	}
	return files, nil
}

func (h *ProductHandler) validateImage(fh *multipart.FileHeader) error {
	if fh.Size > h.upload.MaxFileSize {
		return fmt.Errorf("%w: file %s exceeds %d bytes", errs.ErrValidation, fh.Filename, h.upload.MaxFileSize)
	}
	mime := fh.Header.Get("Content-Type")
	if !allowedImageMimes[mime] {
		return fmt.Errorf("%w: invalid file type %q, only images are allowed", errs.ErrValidation, mime)
	}
	return nil
}
