package appcontext

import (
	"github.com/almrmi/serramenti/internal/auth"
	"github.com/almrmi/serramenti/internal/config"
	"github.com/almrmi/serramenti/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface
}
