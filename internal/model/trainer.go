package model

import (
	"time"

	"github.com/google/uuid"
)

type Trainer struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Avatar      string    `db:"avatar" json:"avatar"`
	Name        string    `db:"name" json:"name"`
	Role        string    `db:"role" json:"role"`
	Subject     string    `db:"subject" json:"subject"`
	Email       *string   `db:"email" json:"email,omitempty"`
	Description string    `db:"description" json:"description"`
	Gender      string    `db:"gender" json:"gender"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
