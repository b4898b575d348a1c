// Package handler exposes the auth and user REST endpoints.
package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/internal/errs"
	"marketplace-backend/internal/httputil"
	"marketplace-backend/internal/user"
	"marketplace-backend/internal/user/dto"
)

type UserHandler struct {
	uc     user.UseCase
	logger *zap.Logger
}

func NewUserHandler(uc user.UseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	users := api.Group("/users")
	{
		users.GET("", h.FindAllActive)
		users.GET("/:id", h.GetSellerInfo)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, h.logger, fmt.Errorf("%w: %v", errs.ErrValidation, err))
		return
	}

	res, err := h.uc.Register(c.Request.Context(), &input)
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, h.logger, fmt.Errorf("%w: %v", errs.ErrValidation, err))
		return
	}

	res, err := h.uc.Login(c.Request.Context(), &input)
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *UserHandler) GetSellerInfo(c *gin.Context) {
	info, err := h.uc.GetSellerInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *UserHandler) FindAllActive(c *gin.Context) {
	users, err := h.uc.FindAllActive(c.Request.Context())
	if err != nil {
		httputil.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
