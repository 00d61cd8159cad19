package models

import "time"

// Message is a note left by a client for the rental desk staff.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
