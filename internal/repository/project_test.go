package repository

import (
	"context"
	"testing"

	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectCreateDefaultsToDraft(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)

	project := createTestProject(t, repo, user.ID)

	got, err := repo.Project.GetByIDForUser(context.Background(), nil, project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.ProjectStatusDraft, got.Status)
}

func TestProjectGetByIDForUserScopesOwnership(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	other, err := repo.User.Create(ctx, nil, &model.User{
		Email: "other@example.com", PasswordHash: "x", FirstName: "Luigi", LastName: "Verdi",
	})
	require.NoError(t, err)

	_, err = repo.Project.GetByIDForUser(ctx, nil, project.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectDeleteCascadesFrames(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	for i := 0; i < 3; i++ {
		createTestFrame(t, repo, project.ID, "1_anta")
	}

	require.NoError(t, repo.Project.Delete(ctx, nil, project.ID))

	var frameCount int64
	require.NoError(t, repo.DB.Model(&model.Frame{}).
		Where("project_id = ?", project.ID).Count(&frameCount).Error)
	assert.EqualValues(t, 0, frameCount)
}

func TestProjectGetWithFramesOrdersByPosition(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	f0 := createTestFrame(t, repo, project.ID, "1_anta")
	f1 := createTestFrame(t, repo, project.ID, "2_ante")
	f2 := createTestFrame(t, repo, project.ID, "3_ante")

	require.NoError(t, repo.Frame.Reorder(ctx, nil, project.ID, []string{f1.ID, f2.ID, f0.ID}))

	got, err := repo.Project.GetWithFrames(ctx, nil, project.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Frames, 3)
	assert.Equal(t, f1.ID, got.Frames[0].ID)
	assert.Equal(t, f2.ID, got.Frames[1].ID)
	assert.Equal(t, f0.ID, got.Frames[2].ID)
}

func TestProjectUpdateChangesStatusAndClient(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	user := createTestUser(t, repo)
	project := createTestProject(t, repo, user.ID)

	client, err := repo.Client.Create(ctx, nil, &model.Client{Nome: "Mario", UserID: user.ID})
	require.NoError(t, err)

	project.Status = constant.ProjectStatusInProgress
	project.ClientID = &client.ID
	require.NoError(t, repo.Project.Update(ctx, nil, project))

	got, err := repo.Project.GetByIDForUser(ctx, nil, project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.ProjectStatusInProgress, got.Status)
	require.NotNil(t, got.ClientID)
	assert.Equal(t, client.ID, *got.ClientID)
}
