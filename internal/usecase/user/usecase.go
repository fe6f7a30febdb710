package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "user-management-api/internal/domain/user"
	"user-management-api/pkg/logger"
)

// Repository defines the interface for user data access operations.
// Implementations must make every call atomic with respect to the others.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)  // Store a new user under a fresh id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)   // Retrieve user by ID
	Update(ctx context.Context, u *domain.User) (*domain.User, error)  // Replace name and email
	Delete(ctx context.Context, id uuid.UUID) error                    // Delete user by ID
	List(ctx context.Context, page domain.Page) ([]domain.User, error) // List users in insertion order
}

// UserUsecase implements the business logic for user management operations.
// It sits between the HTTP transport and the store.
type UserUsecase struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new instance of UserUsecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *UserUsecase {
	return &UserUsecase{repo: r, log: log}
}

// CreateUser validates the request and stores a new user.
func (uc *UserUsecase) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	log := logger.WithContext(ctx, uc.log)
	log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := ValidateUser(in.Name, in.Email); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	u, err := uc.repo.Create(ctx, &domain.User{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return toDTO(u), nil
}

// UpdateUser looks the user up, then validates and applies the new name and email.
// An unknown id is reported before any validation failure.
func (uc *UserUsecase) UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error) {
	log := logger.WithContext(ctx, uc.log)
	log.Info("updating user", zap.Stringer("id", in.ID), zap.String("name", in.Name), zap.String("email", in.Email))

	if _, err := uc.repo.GetByID(ctx, in.ID); err != nil {
		log.Warn("user to update not found", zap.Stringer("id", in.ID), zap.Error(err))
		return nil, err
	}

	if err := ValidateUser(in.Name, in.Email); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	u, err := uc.repo.Update(ctx, &domain.User{
		ID:    in.ID,
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		log.Error("failed to update user", zap.Stringer("id", in.ID), zap.Error(err))
		return nil, err
	}
	return toDTO(u), nil
}

// DeleteUser removes a user by ID.
func (uc *UserUsecase) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	log := logger.WithContext(ctx, uc.log)
	log.Info("deleting user", zap.Stringer("id", in.ID))

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		log.Warn("failed to delete user", zap.Stringer("id", in.ID), zap.Error(err))
		return err
	}
	return nil
}

// GetUser retrieves a user by ID.
func (uc *UserUsecase) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	u, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		logger.WithContext(ctx, uc.log).Debug("failed to get user", zap.Stringer("id", in.ID), zap.Error(err))
		return nil, err
	}
	return toDTO(u), nil
}

// ListUsers retrieves one page of users. Page size has no upper bound and
// out-of-range pages produce an empty list.
func (uc *UserUsecase) ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error) {
	page := domain.NewPage(in.Page, in.PageSize)

	log := logger.WithContext(ctx, uc.log)
	log.Info("listing users", zap.Int("page", page.Number), zap.Int("page_size", page.Size))

	domainUsers, err := uc.repo.List(ctx, page)
	if err != nil {
		log.Error("failed to list users", zap.Int("page", page.Number), zap.Int("page_size", page.Size), zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i := range domainUsers {
		users[i] = *toDTO(&domainUsers[i])
	}

	return &ListUsersResponse{
		Users: users,
	}, nil
}

func toDTO(u *domain.User) *User {
	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
