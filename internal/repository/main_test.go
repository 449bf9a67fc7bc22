package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/almrmi/serramenti/internal/auth"
	"github.com/almrmi/serramenti/internal/config"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRepository opens a per-test in-memory database and migrates the
// full schema. A single connection keeps sqlite writes serialized the same
// way a test run expects.
func setupTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.Client{},
		&model.Project{},
		&model.Frame{},
		&model.FramePreset{},
	))

	zlog := zap.NewNop().Sugar()
	jwtService := auth.NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, zlog)

	return NewRepository(db, zlog, jwtService)
}

func createTestUser(t *testing.T, repo *Repository) *model.User {
	t.Helper()

	user, err := repo.User.Create(context.Background(), nil, &model.User{
		Email:        fmt.Sprintf("%s@example.com", t.Name()),
		PasswordHash: "not-a-real-hash",
		FirstName:    "Mario",
		LastName:     "Rossi",
	})
	require.NoError(t, err)
	return user
}

func createTestProject(t *testing.T, repo *Repository, userID string) *model.Project {
	t.Helper()

	project, err := repo.Project.Create(context.Background(), nil, &model.Project{
		Name:   "Casa Rossi",
		UserID: userID,
	})
	require.NoError(t, err)
	return project
}
