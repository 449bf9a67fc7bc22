package repository

import (
	"context"
	"testing"

	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedPreset(t *testing.T, repo *Repository, code, defaultConfig string) {
	t.Helper()

	require.NoError(t, repo.FramePreset.Upsert(context.Background(), nil, &model.FramePreset{
		Code:          code,
		Name:          code,
		Category:      constant.PresetCategoryImposte,
		DefaultConfig: datatypes.JSON([]byte(defaultConfig)),
		IsActive:      true,
	}))
}

func TestFramePresetUpsertIsIdempotent(t *testing.T) {
	repo := setupTestRepository(t)

	preset := func() *model.FramePreset {
		return &model.FramePreset{
			Code:          "1_anta",
			Name:          "1 Anta",
			Description:   "Finestra ad anta singola",
			Category:      constant.PresetCategoryImposte,
			DefaultConfig: datatypes.JSON([]byte(`{"num_panels":1}`)),
			IsActive:      true,
			SortOrder:     1,
		}
	}

	require.NoError(t, repo.FramePreset.Upsert(context.Background(), nil, preset()))
	require.NoError(t, repo.FramePreset.Upsert(context.Background(), nil, preset()))

	var count int64
	require.NoError(t, repo.DB.Model(&model.FramePreset{}).Where("code = ?", "1_anta").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := repo.FramePreset.GetByCode(context.Background(), nil, "1_anta")
	require.NoError(t, err)
	assert.Equal(t, "1 Anta", got.Name)
	assert.Equal(t, 1, got.SortOrder)
}

func TestFramePresetUpsertOverwritesFields(t *testing.T) {
	repo := setupTestRepository(t)

	require.NoError(t, repo.FramePreset.Upsert(context.Background(), nil, &model.FramePreset{
		Code: "2_ante", Name: "Old name", Category: constant.PresetCategoryImposte, IsActive: true, SortOrder: 2,
	}))
	require.NoError(t, repo.FramePreset.Upsert(context.Background(), nil, &model.FramePreset{
		Code: "2_ante", Name: "2 Ante", Category: constant.PresetCategoryImposte, IsActive: false, SortOrder: 5,
	}))

	got, err := repo.FramePreset.GetByCode(context.Background(), nil, "2_ante")
	require.NoError(t, err)
	assert.Equal(t, "2 Ante", got.Name)
	assert.False(t, got.IsActive)
	assert.Equal(t, 5, got.SortOrder)
}

func TestFramePresetListActive(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	for _, p := range []*model.FramePreset{
		{Code: "2_ante", Name: "2 Ante", Category: constant.PresetCategoryImposte, IsActive: true, SortOrder: 2},
		{Code: "1_anta", Name: "1 Anta", Category: constant.PresetCategoryImposte, IsActive: true, SortOrder: 1},
		{Code: "battente", Name: "Battente", Category: constant.PresetCategoryApertura, IsActive: true, SortOrder: 2},
		{Code: "scorrevole", Name: "Scorrevole", Category: constant.PresetCategoryApertura, IsActive: true, SortOrder: 1},
		{Code: "vasistas", Name: "Vasistas", Category: constant.PresetCategoryApertura, IsActive: false, SortOrder: 3},
	} {
		require.NoError(t, repo.FramePreset.Upsert(ctx, nil, p))
	}

	grouped, err := repo.FramePreset.ListActive(ctx, nil)
	require.NoError(t, err)

	require.Len(t, grouped[constant.PresetCategoryImposte], 2)
	assert.Equal(t, "1_anta", grouped[constant.PresetCategoryImposte][0].Code)
	assert.Equal(t, "2_ante", grouped[constant.PresetCategoryImposte][1].Code)

	require.Len(t, grouped[constant.PresetCategoryApertura], 2)
	assert.Equal(t, "scorrevole", grouped[constant.PresetCategoryApertura][0].Code)

	for _, presets := range grouped {
		for _, p := range presets {
			assert.True(t, p.IsActive)
		}
	}
}

func TestFramePresetGetByCodeNotFound(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.FramePreset.GetByCode(context.Background(), nil, "no_such_code")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
