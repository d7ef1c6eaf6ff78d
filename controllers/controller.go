package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anita-beauty-backend/config"
	"anita-beauty-backend/services"
	"anita-beauty-backend/store"
)

// Controller holds the dependencies every handler needs. The store and
// notifier are injected so tests can swap in doubles.
type Controller struct {
	Store    store.Store
	Notifier services.ContactNotifier
	Cfg      *config.Config
}

func New(st store.Store, notifier services.ContactNotifier, cfg *config.Config) *Controller {
	return &Controller{Store: st, Notifier: notifier, Cfg: cfg}
}

func (ctl *Controller) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ANITA Art of Beauty API"})
}
