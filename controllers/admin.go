package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anita-beauty-backend/models"
	"anita-beauty-backend/utils"
)

// AdminLogin verifies the shared admin password
func (ctl *Controller) AdminLogin(c *gin.Context) {
	var input models.AdminLogin
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	if !utils.CheckAdminPassword(input.Password, ctl.Cfg.AdminPassword) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Hibás jelszó")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sikeres bejelentkezés"})
}
