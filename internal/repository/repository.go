package repository

import (
	"github.com/almrmi/serramenti/internal/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db         *gorm.DB
	logger     *zap.SugaredLogger
	jwtService auth.JWTInterface
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB          *gorm.DB
	User        *UserRepository
	JWT         *JWTRepository
	Client      *ClientRepository
	Project     *ProjectRepository
	Frame       *FrameRepository
	FramePreset *FramePresetRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface) *baseRepository {
	return &baseRepository{db: db, logger: logger, jwtService: jwtService}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface) *Repository {
	br := newBaseRepository(db, logger, jwtService)
	_userRepo := &UserRepository{baseRepository: br}

	return &Repository{
		DB:          db,
		User:        _userRepo,
		JWT:         &JWTRepository{baseRepository: br, user: _userRepo},
		Client:      &ClientRepository{baseRepository: br},
		Project:     &ProjectRepository{baseRepository: br},
		Frame:       newFrameRepository(br),
		FramePreset: &FramePresetRepository{baseRepository: br},
	}
}

// withTx runs fn inside a transaction, rolling back on error.
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Debugf("withTx transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
