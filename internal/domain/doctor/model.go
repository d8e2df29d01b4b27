package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table. Doctors carry no ownership: any
// authenticated user may read or modify any record.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Specialization string    `db:"specialization" json:"specialization"`
	Contact        string    `db:"contact" json:"contact"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
