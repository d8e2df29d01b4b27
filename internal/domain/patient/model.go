package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. CreatedBy is the owning user and never
// changes after creation; every query is scoped to it.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Address   string    `db:"address" json:"address"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
