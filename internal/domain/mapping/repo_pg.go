package mapping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type mappingRepoPG struct{ pool *pgxpool.Pool }

func NewMappingRepoPG(pool *pgxpool.Pool) MappingRepository {
	return &mappingRepoPG{pool: pool}
}

// Reads join in patient and doctor names so every representation carries
// the denormalized display fields.
const mappingSelect = `
	SELECT m.id, m.patient_id, p.name, m.doctor_id, d.name, m.assigned_at
	FROM patient_doctor_mappings m
	JOIN patients p ON p.id = m.patient_id
	JOIN doctors d ON d.id = m.doctor_id`

func (r *mappingRepoPG) scanRow(row pgx.Row) (*Mapping, error) {
	var m Mapping
	err := row.Scan(&m.ID, &m.PatientID, &m.PatientName, &m.DoctorID, &m.DoctorName, &m.AssignedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &m, err
}

func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func (r *mappingRepoPG) Create(ctx context.Context, m *Mapping) error {
	m.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patient_doctor_mappings (id, patient_id, doctor_id)
		VALUES ($1,$2,$3)
		RETURNING assigned_at`,
		m.ID, m.PatientID, m.DoctorID).Scan(&m.AssignedAt)
	if foreignKeyViolation(err) {
		return ErrInvalidReference
	}
	return err
}

func (r *mappingRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Mapping, error) {
	return r.scanRow(r.pool.QueryRow(ctx, mappingSelect+` WHERE m.id = $1`, id))
}

func (r *mappingRepoPG) List(ctx context.Context, limit, offset int) ([]*Mapping, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient_doctor_mappings`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		mappingSelect+` ORDER BY m.assigned_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Mapping
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, nil
}

func (r *mappingRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Mapping, error) {
	rows, err := r.pool.Query(ctx,
		mappingSelect+` WHERE m.patient_id = $1 ORDER BY m.assigned_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Mapping
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, nil
}

func (r *mappingRepoPG) Update(ctx context.Context, m *Mapping) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patient_doctor_mappings SET patient_id=$2, doctor_id=$3
		WHERE id = $1`,
		m.ID, m.PatientID, m.DoctorID)
	if err != nil {
		if foreignKeyViolation(err) {
			return ErrInvalidReference
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mappingRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patient_doctor_mappings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
