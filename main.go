package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"anita-beauty-backend/config"
	"anita-beauty-backend/controllers"
	"anita-beauty-backend/routes"
	"anita-beauty-backend/services"
	"anita-beauty-backend/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.InitLogger()
	cfg := config.Load()

	client, db, err := config.ConnectDB(cfg)
	if err != nil {
		config.Log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			config.Log.WithError(err).Error("failed to close MongoDB client")
		}
	}()

	st := store.NewMongo(db)
	notifier := services.NewNotifier(cfg)

	expiry := services.NewPromoExpiryService(st)
	expiry.Start()
	defer expiry.Stop()

	ctl := controllers.New(st, notifier, cfg)
	r := routes.SetupRouter(ctl, cfg)
	printRoutes(r)

	config.Log.WithField("addr", cfg.Addr()).Info("server listening")
	if err := r.Run(cfg.Addr()); err != nil {
		config.Log.WithError(err).Error("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
