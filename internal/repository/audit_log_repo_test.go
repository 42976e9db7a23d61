package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

func TestAuditLogRepositoryListNewestFirst(t *testing.T) {
	db := setupTestDB(t, &models.AuditLog{})
	repo := NewAuditLogRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		entry := models.AuditLog{
			AdminUsername: "alice",
			Action:        models.AuditActionCreate,
			EntityType:    "article",
			EntityID:      fmt.Sprintf("%d", i),
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), &entry))
	}

	entries, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "2", entries[0].EntityID, "newest entry should come first")
	require.Equal(t, "0", entries[2].EntityID)
}

func TestAuditLogRepositoryListHonoursLimit(t *testing.T) {
	db := setupTestDB(t, &models.AuditLog{})
	repo := NewAuditLogRepository(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(context.Background(), &models.AuditLog{
			AdminUsername: "alice",
			Action:        models.AuditActionUpdate,
			EntityType:    "setting",
		}))
	}

	entries, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestAuditLogRepositoryRoundTripsDetails(t *testing.T) {
	db := setupTestDB(t, &models.AuditLog{})
	repo := NewAuditLogRepository(db)

	entry := models.AuditLog{
		AdminUsername: "alice",
		Action:        models.AuditActionApprove,
		EntityType:    "bio_buddy",
		EntityID:      "7",
		Details:       datatypes.JSONMap{"name": "Bob Tan", "topic": "Polymers"},
	}
	require.NoError(t, repo.Create(context.Background(), &entry))

	entries, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Bob Tan", entries[0].Details["name"])
}
