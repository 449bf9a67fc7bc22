package repository

import (
	"context"

	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FramePresetRepository struct {
	*baseRepository
}

// ListActive returns the active presets grouped by category, ordered by
// sort_order within each group. This is the payload behind the preset
// selection UI and the source of validation bounds.
func (fpr FramePresetRepository) ListActive(ctx context.Context, tx *gorm.DB) (map[constant.PresetCategory][]model.FramePreset, error) {
	fpr.logger.Debug("List active frame presets")

	db := fpr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var presets []model.FramePreset
	if err := db.WithContext(ctx).Model(&model.FramePreset{}).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&presets).Error; err != nil {
		return nil, err
	}

	grouped := make(map[constant.PresetCategory][]model.FramePreset)
	for _, preset := range presets {
		grouped[preset.Category] = append(grouped[preset.Category], preset)
	}

	return grouped, nil
}

func (fpr FramePresetRepository) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*model.FramePreset, error) {
	fpr.logger.Debugf("Get frame preset by code: %s", code)

	db := fpr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var preset model.FramePreset
	if err := db.WithContext(ctx).Model(&model.FramePreset{}).
		Where("code = ?", code).
		First(&preset).Error; err != nil {
		return nil, err
	}

	return &preset, nil
}

// Upsert inserts the preset or overwrites all fields of the existing row with
// the same code. Safe to re-run; provisioning calls it for every seed row.
func (fpr FramePresetRepository) Upsert(ctx context.Context, tx *gorm.DB, preset *model.FramePreset) error {
	fpr.logger.Debugf("Upsert frame preset: %s", preset.Code)

	db := fpr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "icon_path", "category",
			"default_config", "is_active", "sort_order", "updated_at",
		}),
	}).Create(preset).Error
}
