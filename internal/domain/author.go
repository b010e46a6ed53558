package domain

import "time"

// Author is the display projection of the account that writes posts.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
