package repo

import "github.com/sahyadri-sports/backoffice/internal/models"

// UserRepository defines the interface for dashboard user accounts.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
}
