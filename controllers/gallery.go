package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anita-beauty-backend/config"
	"anita-beauty-backend/models"
	"anita-beauty-backend/store"
	"anita-beauty-backend/utils"
)

// GetGalleryImages returns all gallery images
func (ctl *Controller) GetGalleryImages(c *gin.Context) {
	images := []models.GalleryImage{}
	if err := ctl.Store.FindAll(c.Request.Context(), store.GalleryImages, nil, store.DefaultListCap, &images); err != nil {
		config.Log.WithError(err).Error("failed to retrieve gallery images")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve gallery images")
		return
	}

	c.JSON(http.StatusOK, images)
}

// CreateGalleryImage adds a new image (admin)
func (ctl *Controller) CreateGalleryImage(c *gin.Context) {
	var input models.GalleryImageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	image := models.NewGalleryImage(input)
	if err := ctl.Store.Insert(c.Request.Context(), store.GalleryImages, image); err != nil {
		config.Log.WithError(err).Error("failed to insert gallery image")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add gallery image")
		return
	}

	c.JSON(http.StatusOK, image)
}

// DeleteGalleryImage removes an image by id (admin)
func (ctl *Controller) DeleteGalleryImage(c *gin.Context) {
	id := c.Param("id")

	deleted, err := ctl.Store.DeleteOne(c.Request.Context(), store.GalleryImages, map[string]any{"id": id})
	if err != nil {
		config.Log.WithError(err).WithField("id", id).Error("failed to delete gallery image")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete gallery image")
		return
	}
	if deleted == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "A kép nem található")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Kép törölve"})
}
