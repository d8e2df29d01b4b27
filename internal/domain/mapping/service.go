package mapping

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo MappingRepository
}

func NewService(repo MappingRepository) *Service {
	return &Service{repo: repo}
}

// CreateMapping assigns a doctor to a patient. Both references must exist;
// the store's foreign keys are the source of truth, so a dangling id fails
// with ErrInvalidReference and no row is written. Duplicate assignments are
// allowed.
func (s *Service) CreateMapping(ctx context.Context, m *Mapping) error {
	if m.PatientID == uuid.Nil {
		return fmt.Errorf("patient is required")
	}
	if m.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor is required")
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return err
	}
	// Re-read to pick up the denormalized names.
	created, err := s.repo.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *created
	return nil
}

func (s *Service) GetMapping(ctx context.Context, id uuid.UUID) (*Mapping, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListMappings(ctx context.Context, limit, offset int) ([]*Mapping, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// GetDoctorsByPatient returns every assignment for the given patient, with
// names attached. A patient with no assignments yields an empty list.
func (s *Service) GetDoctorsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Mapping, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) UpdateMapping(ctx context.Context, m *Mapping) error {
	if m.PatientID == uuid.Nil {
		return fmt.Errorf("patient is required")
	}
	if m.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor is required")
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) DeleteMapping(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
