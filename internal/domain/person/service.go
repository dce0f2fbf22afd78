package person

import (
	"context"
)

type PersonService interface {
	List(ctx context.Context, t Type, filter PersonFilter) (ListPersonsResponse, error)
	Get(ctx context.Context, t Type, id string) (PersonResponse, error)
	GetByPNO(ctx context.Context, t Type, pno string) (PersonResponse, error)
	Create(ctx context.Context, t Type, req CreatePersonRequest) (PersonResponse, error)
	Update(ctx context.Context, t Type, req UpdatePersonRequest) error

	// Delete removes the person and every dependent attendance and leave
	// row in one transaction.
	Delete(ctx context.Context, t Type, id string) error
}
