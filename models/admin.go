package models

// AdminLogin carries the shared admin secret. It is never persisted.
type AdminLogin struct {
	Password string `json:"password" binding:"required"`
}
