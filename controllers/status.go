package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anita-beauty-backend/config"
	"anita-beauty-backend/models"
	"anita-beauty-backend/store"
	"anita-beauty-backend/utils"
)

// CreateStatusCheck appends a liveness ping to the status log
func (ctl *Controller) CreateStatusCheck(c *gin.Context) {
	var input models.StatusCheckCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	check := models.NewStatusCheck(input)
	if err := ctl.Store.Insert(c.Request.Context(), store.StatusChecks, check); err != nil {
		config.Log.WithError(err).Error("failed to insert status check")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create status check")
		return
	}

	c.JSON(http.StatusOK, check)
}

// GetStatusChecks returns the status log, newest capped at 1000
func (ctl *Controller) GetStatusChecks(c *gin.Context) {
	checks := []models.StatusCheck{}
	if err := ctl.Store.FindAll(c.Request.Context(), store.StatusChecks, nil, store.DefaultListCap, &checks); err != nil {
		config.Log.WithError(err).Error("failed to retrieve status checks")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve status checks")
		return
	}

	c.JSON(http.StatusOK, checks)
}
