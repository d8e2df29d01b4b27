package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo PatientRepository
}

func NewService(repo PatientRepository) *Service {
	return &Service{repo: repo}
}

// CreatePatient stores a new patient owned by ownerID. The owner is taken
// from the authenticated identity, never from the request body.
func (s *Service) CreatePatient(ctx context.Context, ownerID uuid.UUID, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	p.CreatedBy = ownerID
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id, ownerID uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id, ownerID)
}

func (s *Service) ListPatients(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, ownerID, limit, offset)
}

// UpdatePatient overwrites the mutable fields of an owned patient.
// created_by and created_at are immutable.
func (s *Service) UpdatePatient(ctx context.Context, ownerID uuid.UUID, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	p.CreatedBy = ownerID
	return s.repo.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.repo.Delete(ctx, id, ownerID)
}

func validate(p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	return nil
}
