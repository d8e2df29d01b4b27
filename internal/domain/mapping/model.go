package mapping

import (
	"time"

	"github.com/google/uuid"
)

// Mapping maps to the patient_doctor_mappings table: one assignment edge
// between a patient and a doctor. PatientName and DoctorName are denormalized
// display values joined in on every read; they are never written directly.
// Duplicate (patient, doctor) pairs are permitted.
type Mapping struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient"`
	PatientName string    `db:"patient_name" json:"patient_name,omitempty"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctor"`
	DoctorName  string    `db:"doctor_name" json:"doctor_name,omitempty"`
	AssignedAt  time.Time `db:"assigned_at" json:"assigned_at"`
}
