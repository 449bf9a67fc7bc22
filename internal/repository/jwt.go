package repository

import (
	"context"

	"github.com/almrmi/serramenti/internal/auth"
	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"gorm.io/gorm"
)

type JWTRepository struct {
	*baseRepository
	user *UserRepository
}

func (jr JWTRepository) GenRefreshAndAccessToken(ctx context.Context, tx *gorm.DB, user model.User) (*string, *string, error) {
	jr.logger.Debugf("Generate refresh and access token for userId: %s", user.ID)

	refreshToken, accessToken, err := jr.jwtService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	if err != nil {
		return nil, nil, err
	}

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Token{}).Create(&model.Token{
		RefreshToken: *refreshToken,
		AccessToken:  *accessToken,
		CanAccess:    true,
		CanRefresh:   true,
		UserID:       user.ID,
	}).Error; err != nil {
		return nil, nil, err
	}

	return refreshToken, accessToken, nil
}

func (jr JWTRepository) GetTokenByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*model.Token, error) {
	jr.logger.Debug("Get token by refresh token")

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var token model.Token
	if err := db.WithContext(ctx).Model(&model.Token{}).Where(model.Token{
		RefreshToken: refreshToken,
	}).First(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

// RefreshToken rotates a refresh token: the old row is removed and a fresh
// refresh/access pair is issued for the same user.
func (jr JWTRepository) RefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*string, *string, error) {
	jr.logger.Debug("Refresh token rotation")

	token, err := jr.GetTokenByRefreshToken(ctx, tx, refreshToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := jr.user.GetByID(ctx, tx, token.UserID)
	if err != nil {
		return nil, nil, err
	}

	var newRefreshToken, newAccessToken *string
	err = jr.withTx(jr.getDB(tx), func(tx *gorm.DB) error {
		qctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx.WithContext(qctx).Delete(&model.Token{}, "id = ?", token.ID).Error; err != nil {
			return err
		}

		newRefreshToken, newAccessToken, err = jr.GenRefreshAndAccessToken(ctx, tx, *user)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return newRefreshToken, newAccessToken, nil
}
