package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

func TestSettingServiceUpsertAndGet(t *testing.T) {
	db := setupServiceTestDB(t, &models.SystemSetting{}, &models.AuditLog{})
	audit, auditRepo := newTestAudit(t, db)
	svc := NewSettingService(repository.NewSettingRepository(db), audit, testLogger())

	_, err := svc.Get(context.Background(), models.SettingRegistrationEnabled)
	require.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, svc.Upsert(context.Background(), "root", models.SettingRegistrationEnabled, "true"))

	setting, err := svc.Get(context.Background(), models.SettingRegistrationEnabled)
	require.NoError(t, err)
	require.Equal(t, "true", setting.Value)
	require.Equal(t, "root", setting.UpdatedBy)

	entries, err := auditRepo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.AuditActionUpdate, entries[0].Action)
	require.Equal(t, "setting", entries[0].EntityType)
	require.Equal(t, models.SettingRegistrationEnabled, entries[0].EntityID)
	require.Equal(t, "true", entries[0].Details["value"])
}
