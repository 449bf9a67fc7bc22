package repository

import (
	"context"

	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/almrmi/serramenti/internal/util"
	"gorm.io/gorm"
)

type ClientRepository struct {
	*baseRepository
}

// ClientResponse is a client row extended with its derived fields and the
// number of projects linked to it.
type ClientResponse struct {
	model.Client
	DisplayName   string `json:"displayName"`
	FullAddress   string `json:"fullAddress"`
	ProjectsCount int64  `json:"projectsCount"`
}

func toClientResponse(client model.Client, projectsCount int64) ClientResponse {
	return ClientResponse{
		Client:        client,
		DisplayName:   client.DisplayName(),
		FullAddress:   client.FullAddress(),
		ProjectsCount: projectsCount,
	}
}

func (cr ClientRepository) Create(ctx context.Context, tx *gorm.DB, client *model.Client) (*model.Client, error) {
	cr.logger.Debugf("Create client for userId: %s", client.UserID)

	if client.Code == "" {
		code, err := util.GenerateNChar(10)
		if err != nil {
			return nil, err
		}
		client.Code = code
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Client{}).Create(client).Error; err != nil {
		return nil, err
	}

	return client, nil
}

func (cr ClientRepository) GetByIDForUser(ctx context.Context, tx *gorm.DB, clientID, userID string) (*model.Client, error) {
	cr.logger.Debugf("Get client %s for userId: %s", clientID, userID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var client model.Client
	if err := db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// GetForUser lists the user's clients, newest first, with project counts.
func (cr ClientRepository) GetForUser(ctx context.Context, tx *gorm.DB, userID string, page, pageSize uint) ([]ClientResponse, int64, error) {
	cr.logger.Debugf("Get clients for userId: %s", userID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}
	if page == 0 {
		page = 1
	}

	var clients []model.Client
	if err := db.WithContext(ctx).Model(&model.Client{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.WithContext(ctx).Model(&model.Client{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		var projectsCount int64
		if err := db.WithContext(ctx).Model(&model.Project{}).
			Where("client_id = ?", client.ID).
			Count(&projectsCount).Error; err != nil {
			return nil, 0, err
		}
		responses = append(responses, toClientResponse(client, projectsCount))
	}

	return responses, total, nil
}

// GetAllForUser returns the full client list for selection dropdowns, sorted
// the way the project form shows them.
func (cr ClientRepository) GetAllForUser(ctx context.Context, tx *gorm.DB, userID string) ([]model.Client, error) {
	cr.logger.Debugf("Get all clients for userId: %s", userID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var clients []model.Client
	if err := db.WithContext(ctx).Model(&model.Client{}).
		Where("user_id = ?", userID).
		Order("ragione_sociale, cognome, nome").
		Find(&clients).Error; err != nil {
		return nil, err
	}

	return clients, nil
}

func (cr ClientRepository) Update(ctx context.Context, tx *gorm.DB, client *model.Client) error {
	cr.logger.Debugf("Update client %s", client.ID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ?", client.ID).
		Select("Nome", "Cognome", "RagioneSociale", "IndirizzoVia", "IndirizzoCitta",
			"IndirizzoCap", "IndirizzoProvincia", "Telefono", "Cellulare", "Email",
			"Pec", "CodiceFiscale", "PartitaIva", "Note").
		Updates(client).Error
}

// Delete soft-deletes the client and detaches it from its projects. Projects
// survive a client deletion; only the link is cleared.
func (cr ClientRepository) Delete(ctx context.Context, tx *gorm.DB, clientID string) error {
	cr.logger.Debugf("Soft delete client %s", clientID)

	return cr.withTx(cr.getDB(tx), func(tx *gorm.DB) error {
		qctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx.WithContext(qctx).Model(&model.Project{}).
			Where("client_id = ?", clientID).
			Update("client_id", nil).Error; err != nil {
			return err
		}

		return tx.WithContext(qctx).Delete(&model.Client{}, "id = ?", clientID).Error
	})
}
