package models

import "time"

// User is an account on the remote store. Password only travels inbound on
// register and login; the store keeps PasswordHash.
type User struct {
	UserID       int64     `json:"-"`
	Login        string    `json:"login"`
	Password     string    `json:"password,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
