package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anita-beauty-backend/config"
	"anita-beauty-backend/models"
	"anita-beauty-backend/store"
	"anita-beauty-backend/utils"
)

// GetPromotions returns the publicly visible promotions (active only)
func (ctl *Controller) GetPromotions(c *gin.Context) {
	promos := []models.Promotion{}
	filter := map[string]any{"active": true}
	if err := ctl.Store.FindAll(c.Request.Context(), store.Promotions, filter, store.ShortListCap, &promos); err != nil {
		config.Log.WithError(err).Error("failed to retrieve promotions")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve promotions")
		return
	}

	c.JSON(http.StatusOK, promos)
}

// GetAllPromotions returns every promotion regardless of visibility (admin)
func (ctl *Controller) GetAllPromotions(c *gin.Context) {
	promos := []models.Promotion{}
	if err := ctl.Store.FindAll(c.Request.Context(), store.Promotions, nil, store.ShortListCap, &promos); err != nil {
		config.Log.WithError(err).Error("failed to retrieve promotions")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve promotions")
		return
	}

	c.JSON(http.StatusOK, promos)
}

// CreatePromotion adds a new promotion (admin)
func (ctl *Controller) CreatePromotion(c *gin.Context) {
	var input models.PromotionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	promo := models.NewPromotion(input)
	if err := ctl.Store.Insert(c.Request.Context(), store.Promotions, promo); err != nil {
		config.Log.WithError(err).Error("failed to insert promotion")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add promotion")
		return
	}

	c.JSON(http.StatusOK, promo)
}

// UpdatePromotion replaces the editable fields of a promotion (admin)
func (ctl *Controller) UpdatePromotion(c *gin.Context) {
	id := c.Param("id")

	var input models.PromotionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	matched, err := ctl.Store.UpdateOne(c.Request.Context(), store.Promotions, map[string]any{"id": id}, input.Patch(), false)
	if err != nil {
		config.Log.WithError(err).WithField("id", id).Error("failed to update promotion")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update promotion")
		return
	}
	if matched == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Az akció nem található")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Akció frissítve"})
}

// DeletePromotion removes a promotion by id (admin)
func (ctl *Controller) DeletePromotion(c *gin.Context) {
	id := c.Param("id")

	deleted, err := ctl.Store.DeleteOne(c.Request.Context(), store.Promotions, map[string]any{"id": id})
	if err != nil {
		config.Log.WithError(err).WithField("id", id).Error("failed to delete promotion")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete promotion")
		return
	}
	if deleted == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Az akció nem található")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Akció törölve"})
}
