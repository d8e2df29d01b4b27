package user

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the users table. PasswordHash never leaves the service: only
// the bcrypt digest is stored and the field is excluded from JSON.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Public is the representation returned by the registration endpoint.
type Public struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func (u *User) ToPublic() Public {
	return Public{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
