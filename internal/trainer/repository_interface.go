package trainer

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateTrainerRequest) (*Trainer, error)
	FindByID(ctx context.Context, id int) (*Trainer, error)
	List(ctx context.Context, onlyAvailable bool) ([]Trainer, error)
}
