package models

import "github.com/google/uuid"

type GalleryImage struct {
	ID        string  `json:"id" bson:"id"`
	Title     string  `json:"title" bson:"title"`
	Category  string  `json:"category" bson:"category"`
	ImageURL  string  `json:"image_url" bson:"image_url"`
	CreatedAt ISOTime `json:"created_at" bson:"created_at"`
}

// GalleryImageCreate defines the expected JSON structure for adding an image
type GalleryImageCreate struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
}

func NewGalleryImage(input GalleryImageCreate) GalleryImage {
	return GalleryImage{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Category:  input.Category,
		ImageURL:  input.ImageURL,
		CreatedAt: Now(),
	}
}
