package session

import "time"

// Record is the persisted state of a simulated portal login.
type Record struct {
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	ConnectedAt time.Time `json:"connectedAt"`
	IsActive    bool      `json:"isActive"`
}

// NewRecord returns an active record connected at now.
func NewRecord(username, password string, now time.Time) *Record {
	return &Record{
		Username:    username,
		Password:    password,
		ConnectedAt: now.UTC(),
		IsActive:    true,
	}
}
