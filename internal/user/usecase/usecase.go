package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"marketplace-backend/internal/auth"
	"marketplace-backend/internal/errs"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/user"
	"marketplace-backend/internal/user/dto"
)

type userUseCase struct {
	repo   user.Repository
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, tokens *auth.TokenManager, logger *zap.Logger) user.UseCase {
	return &userUseCase{repo: repo, tokens: tokens, logger: logger}
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthResult, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", errs.ErrInternal, err)
	}

	u := &model.User{
		Email:    input.Email,
		Password: string(hashed),
		Name:     input.Name,
		// New sellers start with a random reputation between 1.0 and 5.0,
		// one decimal.
		Reputation: float64(int((rand.Float64()*4+1)*10)) / 10,
		Location:   input.Location,
		JoinDate:   time.Now().UTC(),
		IsVerified: input.IsVerified,
	}

	created, err := uc.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return uc.authResult(created)
}

func (uc *userUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error) {
	u, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	// Wrong email and wrong password report the same error; account
	// existence is not leaked.
	if u == nil {
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
	}
	return uc.authResult(u)
}

func (uc *userUseCase) authResult(u *model.User) (*dto.AuthResult, error) {
	token, _, err := uc.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: signing token: %v", errs.ErrInternal, err)
	}
	return &dto.AuthResult{User: dto.PublicUserFrom(u), AccessToken: token}, nil
}

func (uc *userUseCase) FindByID(ctx context.Context, id string) (*model.User, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *userUseCase) GetSellerInfo(ctx context.Context, id string) (*dto.SellerInfo, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user with id %q", errs.ErrNotFound, id)
	}
	info := dto.SellerInfoFrom(u)
	return &info, nil
}

func (uc *userUseCase) FindAllActive(ctx context.Context) ([]dto.PublicUser, error) {
	users, err := uc.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, dto.PublicUserFrom(&users[i]))
	}
	return out, nil
}

func (uc *userUseCase) IncrementSalesCount(ctx context.Context, id string) (bool, error) {
	return uc.repo.IncrementSalesCount(ctx, id)
}
