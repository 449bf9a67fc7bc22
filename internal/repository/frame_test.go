package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/almrmi/serramenti/internal/model"
	"github.com/almrmi/serramenti/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func createTestFrame(t *testing.T, repo *Repository, projectID, frameType string) *model.Frame {
	t.Helper()

	f, err := repo.Frame.Create(context.Background(), nil, &model.Frame{
		ProjectID: projectID,
		FrameType: frameType,
		Width:     intPtr(1200),
		Height:    intPtr(1500),
	})
	require.NoError(t, err)
	return f
}

func positionsByID(t *testing.T, repo *Repository, projectID string) map[string]int {
	t.Helper()

	var frames []model.Frame
	require.NoError(t, repo.DB.Where("project_id = ?", projectID).Find(&frames).Error)

	positions := make(map[string]int, len(frames))
	for _, f := range frames {
		positions[f.ID] = f.PositionOrder
	}
	return positions
}

func TestFrameCreateAssignsSequentialPositions(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	for want := 0; want < 4; want++ {
		f := createTestFrame(t, repo, project.ID, "1_anta")
		assert.Equal(t, want, f.PositionOrder)
	}
}

func TestFrameCreateComputesSurfaceArea(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	f, err := repo.Frame.Create(context.Background(), nil, &model.Frame{
		ProjectID: project.ID,
		FrameType: "1_anta",
		Width:     intPtr(1200),
		Height:    intPtr(1500),
	})
	require.NoError(t, err)
	require.NotNil(t, f.SurfaceArea)
	assert.Equal(t, "1.8", f.SurfaceArea.String())
}

func TestFrameCreateWithoutDimensionsHasNilSurfaceArea(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	f, err := repo.Frame.Create(context.Background(), nil, &model.Frame{
		ProjectID: project.ID,
		FrameType: "2_ante",
	})
	require.NoError(t, err)
	assert.Nil(t, f.SurfaceArea)
	assert.Equal(t, 0, f.PositionOrder)
}

func TestFrameCreateRejectsOutOfBoundsDimensions(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	seedPreset(t, repo, "1_anta", `{
		"num_panels": 1,
		"min_width": 400, "max_width": 2000,
		"min_height": 600, "max_height": 2500
	}`)

	_, err := repo.Frame.Create(context.Background(), nil, &model.Frame{
		ProjectID: project.ID,
		FrameType: "1_anta",
		Width:     intPtr(3000),
		Height:    intPtr(1500),
	})

	var ve *frame.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "width", ve.Field)
	assert.Equal(t, 2000, ve.Max)

	// Nothing was appended.
	assert.Empty(t, positionsByID(t, repo, project.ID))
}

func TestFrameCreateUnknownTypeUsesGenericBounds(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	_, err := repo.Frame.Create(context.Background(), nil, &model.Frame{
		ProjectID: project.ID,
		FrameType: "battente",
		Width:     intPtr(50),
		Height:    intPtr(1500),
	})

	var ve *frame.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, frame.GenericMinDimension, ve.Min)
}

func TestFrameUpdateRecomputesSurfaceArea(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)
	f := createTestFrame(t, repo, project.ID, "1_anta")

	updated, err := repo.Frame.Update(context.Background(), nil, project.ID, f.ID, FrameUpdate{
		Width:  intPtr(2000),
		Height: intPtr(2200),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.SurfaceArea)
	assert.Equal(t, "4.4", updated.SurfaceArea.String())
}

func TestFrameUpdateWithoutDimensionsKeepsSurfaceArea(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)
	f := createTestFrame(t, repo, project.ID, "1_anta")

	opening := "battente"
	updated, err := repo.Frame.Update(context.Background(), nil, project.ID, f.ID, FrameUpdate{
		OpeningType: &opening,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.SurfaceArea)
	assert.Equal(t, "1.8", updated.SurfaceArea.String())
	require.NotNil(t, updated.OpeningType)
	assert.Equal(t, "battente", *updated.OpeningType)
}

func TestFrameUpdateRejectsForeignProject(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)
	other := createTestProject(t, repo, user.ID)
	f := createTestFrame(t, repo, project.ID, "1_anta")

	_, err := repo.Frame.Update(context.Background(), nil, other.ID, f.ID, FrameUpdate{
		Width: intPtr(1000),
	})
	assert.ErrorIs(t, err, ErrFrameNotInProject)
}

func TestFrameUpdateMovesPosition(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	f0 := createTestFrame(t, repo, project.ID, "1_anta")
	f1 := createTestFrame(t, repo, project.ID, "2_ante")
	f2 := createTestFrame(t, repo, project.ID, "3_ante")

	// Move the last frame to the front.
	_, err := repo.Frame.Update(context.Background(), nil, project.ID, f2.ID, FrameUpdate{
		PositionOrder: intPtr(0),
	})
	require.NoError(t, err)

	positions := positionsByID(t, repo, project.ID)
	assert.Equal(t, 0, positions[f2.ID])
	assert.Equal(t, 1, positions[f0.ID])
	assert.Equal(t, 2, positions[f1.ID])
}

func TestFrameDeleteRenumbersRemaining(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	frames := make([]*model.Frame, 4)
	for i := range frames {
		frames[i] = createTestFrame(t, repo, project.ID, "1_anta")
	}

	// Delete position 1; old positions 0,2,3 must become 0,1,2.
	require.NoError(t, repo.Frame.Delete(context.Background(), nil, project.ID, frames[1].ID))

	positions := positionsByID(t, repo, project.ID)
	assert.Len(t, positions, 3)
	assert.Equal(t, 0, positions[frames[0].ID])
	assert.Equal(t, 1, positions[frames[2].ID])
	assert.Equal(t, 2, positions[frames[3].ID])
}

func TestFrameDeleteTwiceInterleavedStaysDense(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	frames := make([]*model.Frame, 5)
	for i := range frames {
		frames[i] = createTestFrame(t, repo, project.ID, "1_anta")
	}

	require.NoError(t, repo.Frame.Delete(context.Background(), nil, project.ID, frames[3].ID))
	require.NoError(t, repo.Frame.Delete(context.Background(), nil, project.ID, frames[0].ID))

	positions := positionsByID(t, repo, project.ID)
	assert.Len(t, positions, 3)
	assert.Equal(t, 0, positions[frames[1].ID])
	assert.Equal(t, 1, positions[frames[2].ID])
	assert.Equal(t, 2, positions[frames[4].ID])
}

func TestFrameReorder(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	f0 := createTestFrame(t, repo, project.ID, "1_anta")
	f1 := createTestFrame(t, repo, project.ID, "2_ante")
	f2 := createTestFrame(t, repo, project.ID, "3_ante")

	require.NoError(t, repo.Frame.Reorder(context.Background(), nil, project.ID, []string{f2.ID, f0.ID, f1.ID}))

	positions := positionsByID(t, repo, project.ID)
	assert.Equal(t, 0, positions[f2.ID])
	assert.Equal(t, 1, positions[f0.ID])
	assert.Equal(t, 2, positions[f1.ID])
}

func TestFrameReorderRejectsMismatchedSets(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)
	foreign := createTestProject(t, repo, user.ID)

	f0 := createTestFrame(t, repo, project.ID, "1_anta")
	f1 := createTestFrame(t, repo, project.ID, "2_ante")
	foreignFrame := createTestFrame(t, repo, foreign.ID, "1_anta")

	before := positionsByID(t, repo, project.ID)

	tests := []struct {
		name string
		ids  []string
	}{
		{"missing frame", []string{f0.ID}},
		{"foreign frame", []string{f0.ID, foreignFrame.ID}},
		{"duplicate frame", []string{f0.ID, f0.ID}},
		{"too many frames", []string{f0.ID, f1.ID, foreignFrame.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Frame.Reorder(context.Background(), nil, project.ID, tt.ids)
			assert.ErrorIs(t, err, ErrReorderSetMismatch)

			// The failed reorder must not leave any position changed.
			assert.Equal(t, before, positionsByID(t, repo, project.ID))
		})
	}
}

func TestFrameConcurrentAppends(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Frame.Create(context.Background(), nil, &model.Frame{
				ProjectID: project.ID,
				FrameType: "1_anta",
				Width:     intPtr(1200),
				Height:    intPtr(1500),
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "append %d failed", i)
	}

	positions := positionsByID(t, repo, project.ID)
	require.Len(t, positions, workers)

	seen := make(map[int]bool, workers)
	for _, pos := range positions {
		assert.False(t, seen[pos], "duplicate position %d", pos)
		assert.GreaterOrEqual(t, pos, 0)
		assert.Less(t, pos, workers)
		seen[pos] = true
	}
}

func TestFrameGetByIDInProjectDistinguishesNotFound(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	_, err := repo.Frame.GetByIDInProject(context.Background(), nil, "no-such-frame", project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	other := createTestProject(t, repo, user.ID)
	f := createTestFrame(t, repo, other.ID, "1_anta")

	_, err = repo.Frame.GetByIDInProject(context.Background(), nil, f.ID, project.ID)
	assert.ErrorIs(t, err, ErrFrameNotInProject)
}
