package entity

import "time"

// Notification is an in-app message shown to the user, e.g. after a large
// document finishes summarizing or a scheduled report is generated.
type Notification struct {
	ID        int64
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
