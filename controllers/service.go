package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anita-beauty-backend/config"
	"anita-beauty-backend/models"
	"anita-beauty-backend/store"
	"anita-beauty-backend/utils"
)

// GetServices returns the price list. The built-in catalog is served until
// the database holds an edited one.
func (ctl *Controller) GetServices(c *gin.Context) {
	categories := []models.ServiceCategory{}
	if err := ctl.Store.FindAll(c.Request.Context(), store.Services, nil, store.ShortListCap, &categories); err != nil {
		config.Log.WithError(err).Error("failed to retrieve service categories")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	if len(categories) == 0 {
		c.JSON(http.StatusOK, gin.H{"source": "default", "data": models.DefaultServiceCategories()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"source": "database", "data": categories})
}

// UpsertServiceCategory replaces a category keyed by its URL key, creating
// it when absent. Last writer wins.
func (ctl *Controller) UpsertServiceCategory(c *gin.Context) {
	key := c.Param("key")

	var input models.ServiceCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	patch := map[string]any{
		"key":   key,
		"title": input.Title,
		"image": input.Image,
		"items": input.Items,
	}
	if _, err := ctl.Store.UpdateOne(c.Request.Context(), store.Services, map[string]any{"key": key}, patch, true); err != nil {
		config.Log.WithError(err).WithField("key", key).Error("failed to upsert service category")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Szolgáltatások frissítve"})
}
