package mapping

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("mapping not found")
	// ErrInvalidReference is returned when patient_id or doctor_id does not
	// reference an existing record.
	ErrInvalidReference = errors.New("patient or doctor does not exist")
)

type MappingRepository interface {
	Create(ctx context.Context, m *Mapping) error
	GetByID(ctx context.Context, id uuid.UUID) (*Mapping, error)
	List(ctx context.Context, limit, offset int) ([]*Mapping, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Mapping, error)
	Update(ctx context.Context, m *Mapping) error
	Delete(ctx context.Context, id uuid.UUID) error
}
