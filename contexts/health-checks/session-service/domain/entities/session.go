package entities

import "time"

// Session is a time-boxed voting period.
type Session struct {
	SessionID   string
	Name        string
	Date        time.Time
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

// HealthCheckCard is a named category users vote on. Cards are reference
// data; deactivating one hides it from voting forms without losing history.
type HealthCheckCard struct {
	CardID      string
	Name        string
	Description string
	Icon        string
	Order       int
	Active      bool
}
