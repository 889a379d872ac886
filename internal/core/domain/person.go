package domain

import "time"

// Person is the owner of zero or more accounts.
// Persons are immutable after creation; there is no update endpoint.
type Person struct {
	PersonID  int64
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// DisplayName renders the name the way transaction histories show it.
func (p Person) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
