package models

import "time"

// User is an owner of habits. Names are unique across users.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
