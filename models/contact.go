package models

import "github.com/google/uuid"

type ContactMessage struct {
	ID        string  `json:"id" bson:"id"`
	Name      string  `json:"name" bson:"name"`
	Email     string  `json:"email" bson:"email"`
	Phone     *string `json:"phone" bson:"phone"`
	Message   string  `json:"message" bson:"message"`
	CreatedAt ISOTime `json:"created_at" bson:"created_at"`
}

// ContactMessageCreate defines the expected JSON structure for a contact
// form submission. Phone is optional and stored as-is.
type ContactMessageCreate struct {
	Name    string  `json:"name" binding:"required,min=2,max=100"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" binding:"required,min=10,max=2000"`
}

type ContactMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func NewContactMessage(input ContactMessageCreate) ContactMessage {
	return ContactMessage{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		CreatedAt: Now(),
	}
}
