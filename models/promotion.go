package models

import "github.com/google/uuid"

type Promotion struct {
	ID              string  `json:"id" bson:"id"`
	Title           string  `json:"title" bson:"title"`
	Description     string  `json:"description" bson:"description"`
	DiscountPercent *int    `json:"discount_percent" bson:"discount_percent,omitempty"`
	ValidUntil      *string `json:"valid_until" bson:"valid_until,omitempty"`
	Active          bool    `json:"active" bson:"active"`
	CreatedAt       ISOTime `json:"created_at" bson:"created_at"`
}

// PromotionCreate defines the expected JSON structure for creating or
// updating a promotion. Active defaults to true when omitted. ValidUntil
// is a display date in "2024.12.31" form.
type PromotionCreate struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	DiscountPercent *int    `json:"discount_percent"`
	ValidUntil      *string `json:"valid_until"`
	Active          *bool   `json:"active"`
}

func (input PromotionCreate) active() bool {
	if input.Active == nil {
		return true
	}
	return *input.Active
}

func NewPromotion(input PromotionCreate) Promotion {
	return Promotion{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		ValidUntil:      input.ValidUntil,
		Active:          input.active(),
		CreatedAt:       Now(),
	}
}

// Patch returns the field set applied when the promotion is updated in
// place. The id and created_at stay untouched.
func (input PromotionCreate) Patch() map[string]any {
	return map[string]any{
		"title":            input.Title,
		"description":      input.Description,
		"discount_percent": input.DiscountPercent,
		"valid_until":      input.ValidUntil,
		"active":           input.active(),
	}
}
