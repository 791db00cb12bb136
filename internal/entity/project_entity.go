package entity

import "time"

// Project is a tracked unit of work owned by one client. Created only by
// the admin create command; status mutated only by the admin status
// update; never deleted.
type Project struct {
	Id          string
	ClientId    int64
	ServiceType string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
