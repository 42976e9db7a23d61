package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

func TestLabRepositoryCRUD(t *testing.T) {
	db := setupTestDB(t, &models.Lab{})
	repo := NewLabRepository(db)

	lab := models.Lab{Name: "Molecular Ecology Lab", LeadName: "Dr. Chen", Email: "chen@example.com"}
	require.NoError(t, repo.Create(context.Background(), &lab))

	labs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, labs, 1)

	require.NoError(t, repo.Update(context.Background(), lab.ID, map[string]interface{}{
		"lead_name": "Dr. Wong",
		"id":        9999,
	}))

	stored, err := repo.GetByID(context.Background(), lab.ID)
	require.NoError(t, err)
	require.Equal(t, "Dr. Wong", stored.LeadName)
	require.Equal(t, "Molecular Ecology Lab", stored.Name)

	require.NoError(t, repo.Delete(context.Background(), lab.ID))
	labs, err = repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, labs)
}
