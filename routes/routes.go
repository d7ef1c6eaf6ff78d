package routes

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"anita-beauty-backend/config"
	"anita-beauty-backend/controllers"
	"anita-beauty-backend/utils"
)

func SetupRouter(ctl *controllers.Controller, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.PerformanceLogger())
	r.Use(cors.New(corsConfig(cfg)))

	api := r.Group("/api")
	{
		api.GET("/", ctl.Root)

		api.POST("/status", ctl.CreateStatusCheck)
		api.GET("/status", ctl.GetStatusChecks)

		api.POST("/contact", ctl.CreateContactMessage)

		api.POST("/admin/login", ctl.AdminLogin)

		api.GET("/gallery", ctl.GetGalleryImages)
		api.GET("/services", ctl.GetServices)
		api.GET("/promotions", ctl.GetPromotions)

		// Administrative surface, behind the shared-password gate
		admin := api.Group("")
		admin.Use(utils.AdminGate(cfg))
		{
			admin.GET("/contact", ctl.GetContactMessages)

			admin.POST("/gallery", ctl.CreateGalleryImage)
			admin.DELETE("/gallery/:id", ctl.DeleteGalleryImage)

			admin.PUT("/services/:key", ctl.UpsertServiceCategory)

			admin.GET("/promotions/all", ctl.GetAllPromotions)
			admin.POST("/promotions", ctl.CreatePromotion)
			admin.PUT("/promotions/:id", ctl.UpdatePromotion)
			admin.DELETE("/promotions/:id", ctl.DeletePromotion)
		}
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}

	origins := []string{}
	allowAll := false
	for _, origin := range strings.Split(cfg.CORSOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAll = true
		} else if origin != "" {
			origins = append(origins, origin)
		}
	}

	if allowAll || len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}

	return corsCfg
}
