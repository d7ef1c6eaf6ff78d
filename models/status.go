package models

import "github.com/google/uuid"

type StatusCheck struct {
	ID         string  `json:"id" bson:"id"`
	ClientName string  `json:"client_name" bson:"client_name"`
	Timestamp  ISOTime `json:"timestamp" bson:"timestamp"`
}

// StatusCheckCreate defines the expected JSON structure for a liveness ping
type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

func NewStatusCheck(input StatusCheckCreate) StatusCheck {
	return StatusCheck{
		ID:         uuid.NewString(),
		ClientName: input.ClientName,
		Timestamp:  Now(),
	}
}
