package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound covers both records that do not exist and records owned by a
// different user, so foreign records are indistinguishable from absent ones.
var ErrNotFound = errors.New("patient not found")

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*Patient, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Patient, int, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
