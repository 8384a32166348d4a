package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Class is a scheduled gym class. TrainerID is a weak reference: the
// trainer row may be deleted independently, so reads must tolerate a
// dangling id. BookedTrainees holds user ids as a uuid[] column; it is
// scanned through pq.StringArray so sqlx struct mapping works against
// the pgx stdlib driver.
type Class struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Time           string         `db:"time" json:"time"`
	Day            string         `db:"day" json:"day"`
	Img            string         `db:"img" json:"img"`
	TrainerID      uuid.UUID      `db:"trainer_id" json:"trainer_id"`
	BookedTrainees pq.StringArray `db:"booked_trainees" json:"bookedTrainees"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// TrainerSummary is the display projection attached to classes in the
// by-day view. A dangling trainer reference resolves to the zero value
// rather than dropping the class.
type TrainerSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Avatar  string    `json:"avatar"`
}

// ClassView replaces the raw trainer id with a resolved summary.
type ClassView struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Time           string         `json:"time"`
	Day            string         `json:"day"`
	Img            string         `json:"img"`
	Trainer        TrainerSummary `json:"trainer"`
	BookedTrainees pq.StringArray `json:"bookedTrainees"`
}

// ClassWithTrainees resolves every roster entry to the full user record.
type ClassWithTrainees struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"name"`
	Time           string       `json:"time"`
	Day            string       `json:"day"`
	Img            string       `json:"img"`
	TrainerID      uuid.UUID    `json:"trainer_id"`
	BookedTrainees []PublicUser `json:"bookedTrainees"`
}

// TrainerContact carries the enrichment for a user's booked classes.
// Unresolvable trainers surface the literal sentinels instead of nulls.
type TrainerContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookedClassView struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Time           string         `json:"time"`
	Day            string         `json:"day"`
	Img            string         `json:"img"`
	Trainer        TrainerContact `json:"trainer"`
	BookedTrainees pq.StringArray `json:"bookedTrainees"`
}
