package person

import (
	"context"
)

// PersonRepository - interface for the staff / trainees tables
type PersonRepository interface {
	Create(ctx context.Context, p Person) (Person, error)
	GetByID(ctx context.Context, t Type, id string) (Person, error)
	GetByPNO(ctx context.Context, t Type, pno string) (Person, error)
	List(ctx context.Context, t Type, filter PersonFilter) ([]Person, int64, error)
	Update(ctx context.Context, t Type, req UpdatePersonRequest) error
	Delete(ctx context.Context, t Type, id string) error
	PNOExists(ctx context.Context, t Type, pno string, excludeID string) (bool, error)
}
