package dto

import "time"

// AddInput carries raw form values. A zero Date means today.
type AddInput struct {
	Subject string
	Minutes int
	Topics  string
	Date    time.Time
}

type UpdateInput struct {
	ID      string
	Subject string
	Minutes int
	Topics  string
	Date    time.Time
}

type SessionOutput struct {
	ID        string
	Subject   string
	Minutes   int
	Topics    string
	TopicList []string
	Date      time.Time
	CreatedAt time.Time
}
