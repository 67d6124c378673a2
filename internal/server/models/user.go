// Package models defines the persistent record types shared by repositories
// and services on the server side.
package models

import "time"

// User is an identity record. Password holds the bcrypt hash and is never
// serialized; Sanitize strips it before a record is handed back to callers.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Sanitize returns a copy of the user with the password hash removed.
func (u *User) Sanitize() *User {
	c := *u
	c.Password = ""
	return &c
}
