package user

import "context"

type Repository interface {
	Create(ctx context.Context, email, firstName, lastName string, phone *string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int, req UpdateUserRequest) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
