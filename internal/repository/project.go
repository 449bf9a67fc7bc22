package repository

import (
	"context"

	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

// ProjectResponse is a project row extended with its frame count for list
// views; the builder payload carries the frames themselves instead.
type ProjectResponse struct {
	model.Project
	FramesCount int64 `json:"framesCount"`
}

func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project for userId: %s", project.UserID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// GetByIDForUser loads a project only when it belongs to the given user.
// Callers rely on gorm.ErrRecordNotFound to distinguish missing from foreign.
func (pr ProjectRepository) GetByIDForUser(ctx context.Context, tx *gorm.DB, projectID, userID string) (*model.Project, error) {
	pr.logger.Debugf("Get project %s for userId: %s", projectID, userID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND user_id = ?", projectID, userID).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetWithFrames loads the project with its frame collection ordered by
// position, the eager shape the builder view consumes.
func (pr ProjectRepository) GetWithFrames(ctx context.Context, tx *gorm.DB, projectID, userID string) (*model.Project, error) {
	pr.logger.Debugf("Get project %s with frames for userId: %s", projectID, userID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND user_id = ?", projectID, userID).
		Preload("Client").
		Preload("Frames", func(db *gorm.DB) *gorm.DB {
			return db.Order("frames.position_order ASC")
		}).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetForUser lists the user's projects, newest first, with client preloaded
// and frame counts attached.
func (pr ProjectRepository) GetForUser(ctx context.Context, tx *gorm.DB, userID string, page, pageSize uint) ([]ProjectResponse, int64, error) {
	pr.logger.Debugf("Get projects for userId: %s", userID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}
	if page == 0 {
		page = 1
	}

	var projects []model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("user_id = ?", userID).
		Preload("Client").
		Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		var framesCount int64
		if err := db.WithContext(ctx).Model(&model.Frame{}).
			Where("project_id = ?", project.ID).
			Count(&framesCount).Error; err != nil {
			return nil, 0, err
		}
		responses = append(responses, ProjectResponse{Project: project, FramesCount: framesCount})
	}

	return responses, total, nil
}

func (pr ProjectRepository) Update(ctx context.Context, tx *gorm.DB, project *model.Project) error {
	pr.logger.Debugf("Update project %s", project.ID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", project.ID).
		Select("Name", "Description", "Status", "ClientID").
		Updates(project).Error
}

// Delete removes the project and all of its frames. The frames are deleted
// inside the same transaction rather than left to the foreign key so the
// cascade holds on engines where FK enforcement is off.
func (pr ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, projectID string) error {
	pr.logger.Debugf("Delete project %s", projectID)

	return pr.withTx(pr.getDB(tx), func(tx *gorm.DB) error {
		qctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx.WithContext(qctx).Delete(&model.Frame{}, "project_id = ?", projectID).Error; err != nil {
			return err
		}

		return tx.WithContext(qctx).Delete(&model.Project{}, "id = ?", projectID).Error
	})
}
