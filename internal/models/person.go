package models

import "time"

// Person is the DB row shape for the persons table.
type Person struct {
	PersonID  int64     `db:"person_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at"`
}
