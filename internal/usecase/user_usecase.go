package usecase

import (
	"context"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
}

func NewUserUseCase(userRepo repository.UserRepository, reviewRepo repository.ReviewRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

type ProfileResponse struct {
	*entity.User
	Rating *entity.UserRating `json:"rating"`
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	rating, err := uc.reviewRepo.AggregateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{User: user, Rating: rating}, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID int64, patch entity.UserPatch) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, search string, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, search, limit, offset)
}
