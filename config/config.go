package config

import (
	"fmt"
	"os"
)

// Config holds every environment-sourced setting the server needs.
type Config struct {
	MongoURL    string
	DBName      string
	ServerPort  string
	CORSOrigins string

	SMTPHost    string
	SMTPPort    string
	SMTPAPIKey  string
	SenderEmail string
	NotifyEmail string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	NotifyPhone      string

	AdminPassword string
}

func Load() *Config {
	return &Config{
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "anita_beauty"),
		ServerPort:  getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SMTPHost:    getEnv("SMTP_HOST", "smtp.sendgrid.net"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		SMTPAPIKey:  os.Getenv("SMTP_API_KEY"),
		SenderEmail: getEnv("SENDER_EMAIL", "noreply@anita-beauty.hu"),
		NotifyEmail: getEnv("NOTIFY_EMAIL", "anita@anita-beauty.hu"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_FROM"),
		NotifyPhone:      os.Getenv("NOTIFY_PHONE"),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
