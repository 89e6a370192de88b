package service

import (
	"context"
	"fmt"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/logger"
	"finance-tracker/pkg/utils"
)

type UserService interface {
	Create(ctx context.Context, req dto.UserRequest) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, req dto.UserRequest) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	log      *logger.Logger
	userRepo repository.UserRepository
	uow      repository.UnitOfWork
}

func NewUserService(log *logger.Logger, userRepo repository.UserRepository, uow repository.UnitOfWork) UserService {
	return &userService{
		log:      log,
		userRepo: userRepo,
		uow:      uow,
	}
}

// Create inserts a new user. There is no pre-check on the username; two
// concurrent creates race to the unique constraint and the loser gets
// ErrConflict after rollback.
func (s *userService) Create(ctx context.Context, req dto.UserRequest) (*model.User, error) {
	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
	}

	err := s.uow.Run(func(opts ...utils.DBOption) error {
		if err := s.userRepo.Create(ctx, user, opts...); err != nil {
			if repository.IsUniqueViolation(err) {
				return fmt.Errorf("username %q already exists: %w", req.Username, ErrConflict)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user created", logger.IntField("id", int(user.ID)))
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, nil
}

// Update replaces both mutable fields wholesale. On a username collision the
// transaction is rolled back and the persisted row keeps its original values;
// the conflicting in-memory state never leaves this method.
func (s *userService) Update(ctx context.Context, id uint, req dto.UserRequest) (*model.User, error) {
	var updated *model.User

	err := s.uow.Run(func(opts ...utils.DBOption) error {
		user, err := s.userRepo.GetByID(ctx, id, opts...)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if user == nil {
			return fmt.Errorf("user %d: %w", id, ErrNotFound)
		}

		user.Username = req.Username
		user.Email = req.Email

		if err := s.userRepo.Update(ctx, user, opts...); err != nil {
			if repository.IsUniqueViolation(err) {
				return fmt.Errorf("username %q already exists: %w", req.Username, ErrConflict)
			}
			return fmt.Errorf("failed to update user: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the user and, through the schema's cascade, every stock and
// chat history row owned by it, in one transaction.
func (s *userService) Delete(ctx context.Context, id uint) error {
	err := s.uow.Run(func(opts ...utils.DBOption) error {
		user, err := s.userRepo.GetByID(ctx, id, opts...)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if user == nil {
			return fmt.Errorf("user %d: %w", id, ErrNotFound)
		}

		if err := s.userRepo.Delete(ctx, id, opts...); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user deleted", logger.IntField("id", int(id)))
	return nil
}
