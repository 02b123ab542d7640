package user

import (
	"context"
	"errors"
)

var ErrEmailExists = errors.New("email already exists")

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int, req UpdateUserRequest) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	return s.repo.Create(ctx, req.Email, req.FirstName, req.LastName, req.Phone)
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int, req UpdateUserRequest) (*User, error) {
	if req.Email != nil {
		exists, err := s.repo.EmailExists(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			current, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if current.Email != *req.Email {
				return nil, ErrEmailExists
			}
		}
	}

	return s.repo.Update(ctx, id, req)
}
