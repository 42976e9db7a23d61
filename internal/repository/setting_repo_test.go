package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

func TestSettingRepositoryUpsertInsertsThenRewrites(t *testing.T) {
	db := setupTestDB(t, &models.SystemSetting{})
	repo := NewSettingRepository(db)

	require.NoError(t, repo.Upsert(context.Background(), models.SettingRegistrationEnabled, "true", "root"))

	setting, err := repo.Get(context.Background(), models.SettingRegistrationEnabled)
	require.NoError(t, err)
	require.Equal(t, "true", setting.Value)
	require.Equal(t, "root", setting.UpdatedBy)

	require.NoError(t, repo.Upsert(context.Background(), models.SettingRegistrationEnabled, "false", "alice"))

	setting, err = repo.Get(context.Background(), models.SettingRegistrationEnabled)
	require.NoError(t, err)
	require.Equal(t, "false", setting.Value)
	require.Equal(t, "alice", setting.UpdatedBy)

	settings, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 1, "upsert must not duplicate the key")
}

func TestSettingRepositoryGetMissingKey(t *testing.T) {
	db := setupTestDB(t, &models.SystemSetting{})
	repo := NewSettingRepository(db)

	_, err := repo.Get(context.Background(), "absent")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
