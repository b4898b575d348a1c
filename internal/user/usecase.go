package user

import (
	"context"

	"marketplace-backend/internal/model"
	"marketplace-backend/internal/user/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthResult, error)
	Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error)

	FindByID(ctx context.Context, id string) (*model.User, error)
	GetSellerInfo(ctx context.Context, id string) (*dto.SellerInfo, error)
	FindAllActive(ctx context.Context) ([]dto.PublicUser, error)
	IncrementSalesCount(ctx context.Context, id string) (bool, error)
}
