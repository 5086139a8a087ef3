package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/internal/infrastructure/auth"
	"barterhub/pkg/errors"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtManager *auth.JWTManager
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtManager *auth.JWTManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Active:       true,
		FullName:     input.FullName,
		Phone:        input.Phone,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

type LoginInput struct {
	Identifier string // username or email
	Password   string
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := uc.userRepo.GetByUsername(ctx, input.Identifier)
	if err != nil {
		user, err = uc.userRepo.GetByEmail(ctx, input.Identifier)
	}
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	if !user.Active {
		return nil, errors.Forbidden("Account is deactivated", nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
