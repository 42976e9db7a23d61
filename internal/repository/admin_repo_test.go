package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

func setupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func TestAdminRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t, &models.Admin{})
	repo := NewAdminRepository(db)

	admin := models.Admin{ID: "id-1", Username: "alice", PasswordHash: "$argon2id$hash", Role: models.RoleSuperadmin, Email: "alice@example.com"}
	require.NoError(t, repo.Create(context.Background(), &admin))

	byUsername, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "id-1", byUsername.ID)
	require.Equal(t, models.RoleSuperadmin, byUsername.Role)

	byID, err := repo.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	_, err = repo.GetByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdminRepositoryCountAndList(t *testing.T) {
	db := setupTestDB(t, &models.Admin{})
	repo := NewAdminRepository(db)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)

	require.NoError(t, repo.Create(context.Background(), &models.Admin{ID: "id-b", Username: "bob", PasswordHash: "h"}))
	require.NoError(t, repo.Create(context.Background(), &models.Admin{ID: "id-a", Username: "alice", PasswordHash: "h"}))

	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	admins, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)
	require.Equal(t, "alice", admins[0].Username, "list should be ordered by username")
	require.Equal(t, "bob", admins[1].Username)
}

func TestAdminRepositoryUpdateIgnoresUnknownColumns(t *testing.T) {
	db := setupTestDB(t, &models.Admin{})
	repo := NewAdminRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.Admin{ID: "id-1", Username: "alice", PasswordHash: "h", Role: models.RoleAdmin}))

	err := repo.Update(context.Background(), "id-1", map[string]interface{}{
		"role":            models.RoleSuperadmin,
		"id":              "hijacked",
		"created_at":      "2001-01-01",
		"unknown_column":  "x",
		"hashed_password": "new-hash",
	})
	require.NoError(t, err)

	admin, err := repo.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	require.Equal(t, models.RoleSuperadmin, admin.Role)
	require.Equal(t, "new-hash", admin.PasswordHash)
}

func TestAdminRepositoryUpdateEmptyFieldsIsNoOp(t *testing.T) {
	db := setupTestDB(t, &models.Admin{})
	repo := NewAdminRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.Admin{ID: "id-1", Username: "alice", PasswordHash: "h"}))
	require.NoError(t, repo.Update(context.Background(), "id-1", map[string]interface{}{"not_allowed": "x"}))

	admin, err := repo.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	require.Equal(t, "alice", admin.Username)
}

func TestAdminRepositoryDelete(t *testing.T) {
	db := setupTestDB(t, &models.Admin{})
	repo := NewAdminRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.Admin{ID: "id-1", Username: "alice", PasswordHash: "h"}))
	require.NoError(t, repo.Delete(context.Background(), "id-1"))

	_, err := repo.GetByID(context.Background(), "id-1")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdminRepositoryListEmailsSkipsEmpty(t *testing.T) {
	db := setupTestDB(t, &models.Admin{})
	repo := NewAdminRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.Admin{ID: "id-1", Username: "alice", PasswordHash: "h", Email: "alice@example.com"}))
	require.NoError(t, repo.Create(context.Background(), &models.Admin{ID: "id-2", Username: "bob", PasswordHash: "h"}))

	emails, err := repo.ListEmails(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"alice@example.com"}, emails)
}
