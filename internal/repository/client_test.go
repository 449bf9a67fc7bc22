package repository

import (
	"context"
	"testing"

	"github.com/almrmi/serramenti/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateAssignsCode(t *testing.T) {
	repo := setupTestRepository(t)
	user := createTestUser(t, repo)

	client, err := repo.Client.Create(context.Background(), nil, &model.Client{
		Nome:    "Mario",
		Cognome: "Rossi",
		UserID:  user.ID,
	})
	require.NoError(t, err)
	assert.Len(t, client.Code, 10)
}

func TestClientDeleteIsSoftAndDetachesProjects(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	user := createTestUser(t, repo)

	client, err := repo.Client.Create(ctx, nil, &model.Client{
		RagioneSociale: "Rossi S.r.l.",
		UserID:         user.ID,
	})
	require.NoError(t, err)

	project, err := repo.Project.Create(ctx, nil, &model.Project{
		Name:     "Villa Bianchi",
		UserID:   user.ID,
		ClientID: &client.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Client.Delete(ctx, nil, client.ID))

	// The client is hidden from normal queries but its row survives.
	_, err = repo.Client.GetByIDForUser(ctx, nil, client.ID, user.ID)
	assert.Error(t, err)

	var retained int64
	require.NoError(t, repo.DB.Unscoped().Model(&model.Client{}).
		Where("id = ?", client.ID).Count(&retained).Error)
	assert.EqualValues(t, 1, retained)

	// The project survives with its client link cleared.
	got, err := repo.Project.GetByIDForUser(ctx, nil, project.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ClientID)
}

func TestClientGetForUserCountsProjects(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	user := createTestUser(t, repo)

	client, err := repo.Client.Create(ctx, nil, &model.Client{
		Nome: "Mario", Cognome: "Rossi", UserID: user.ID,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := repo.Project.Create(ctx, nil, &model.Project{
			Name: "Progetto", UserID: user.ID, ClientID: &client.ID,
		})
		require.NoError(t, err)
	}

	clients, total, err := repo.Client.GetForUser(ctx, nil, user.ID, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, clients, 1)
	assert.EqualValues(t, 2, clients[0].ProjectsCount)
	assert.Equal(t, "Mario Rossi", clients[0].DisplayName)
}

func TestClientGetForUserExcludesOtherUsers(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	user := createTestUser(t, repo)

	other, err := repo.User.Create(ctx, nil, &model.User{
		Email: "other@example.com", PasswordHash: "x", FirstName: "Luigi", LastName: "Verdi",
	})
	require.NoError(t, err)

	_, err = repo.Client.Create(ctx, nil, &model.Client{Nome: "Mario", UserID: user.ID})
	require.NoError(t, err)
	_, err = repo.Client.Create(ctx, nil, &model.Client{Nome: "Luigi", UserID: other.ID})
	require.NoError(t, err)

	clients, total, err := repo.Client.GetForUser(ctx, nil, user.ID, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, clients, 1)
	assert.Equal(t, "Mario", clients[0].Nome)
}
