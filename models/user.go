package models

import "time"

// TaskRef is the compact task projection embedded in users.
type TaskRef struct {
	ID    TaskID `json:"id"`
	Title string `json:"title"`
}

// User mirrors the fields requested by the users query.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	CreatedAt     string    `json:"createdAt"`
	AssignedTasks []TaskRef `json:"assignedTasks"`
}

// Created parses CreatedAt.
func (u User) Created() (time.Time, bool) {
	return parseTimestamp(u.CreatedAt)
}
