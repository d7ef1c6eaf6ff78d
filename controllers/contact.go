package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"anita-beauty-backend/config"
	"anita-beauty-backend/models"
	"anita-beauty-backend/store"
	"anita-beauty-backend/utils"
)

const notifyTimeout = 10 * time.Second

// CreateContactMessage stores a contact form submission and notifies the
// owner. The message is durable before any notification is attempted; a
// failed send only changes the response copy, never the outcome.
func (ctl *Controller) CreateContactMessage(c *gin.Context) {
	var input models.ContactMessageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	msg := models.NewContactMessage(input)
	if err := ctl.Store.Insert(c.Request.Context(), store.ContactMessages, msg); err != nil {
		config.Log.WithError(err).Error("failed to save contact message")
		utils.RespondWithError(c, http.StatusInternalServerError, "Hiba történt az üzenet küldése során.")
		return
	}

	response := models.ContactMessageResponse{
		Success: true,
		Message: "Köszönjük üzenetét! Hamarosan felvesszük Önnel a kapcsolatot.",
		ID:      msg.ID,
	}

	if ctl.Notifier != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), notifyTimeout)
		defer cancel()
		if err := ctl.Notifier.NotifyContact(ctx, msg); err != nil {
			config.Log.WithError(err).WithField("id", msg.ID).Warn("contact notification failed")
			response.Message = "Üzenetét megkaptuk."
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetContactMessages returns all submissions (admin)
func (ctl *Controller) GetContactMessages(c *gin.Context) {
	messages := []models.ContactMessage{}
	if err := ctl.Store.FindAll(c.Request.Context(), store.ContactMessages, nil, store.DefaultListCap, &messages); err != nil {
		config.Log.WithError(err).Error("failed to retrieve contact messages")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contact messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}
