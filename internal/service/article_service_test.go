package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

func newTestArticleService(t *testing.T) (ArticleService, repository.AuditLogRepository) {
	t.Helper()
	db := setupServiceTestDB(t, &models.Article{}, &models.AuditLog{})
	audit, auditRepo := newTestAudit(t, db)
	svc := NewArticleService(repository.NewArticleRepository(db), audit, validator.New(validator.WithRequiredStructEnabled()), testLogger())
	return svc, auditRepo
}

func TestArticleServiceCreateAudits(t *testing.T) {
	svc, auditRepo := newTestArticleService(t)

	article, err := svc.Create(context.Background(), "alice", dto.ArticleCreateRequest{
		Category: "research",
		Title:    "  CRISPR milestones  ",
		Author:   "Dr. Chen",
	})
	require.NoError(t, err)
	require.Equal(t, "CRISPR milestones", article.Title)

	entries, err := auditRepo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.AuditActionCreate, entries[0].Action)
	require.Equal(t, "CRISPR milestones", entries[0].Details["title"])
	require.Equal(t, "research", entries[0].Details["category"])
}

func TestArticleServiceCreateRequiresCategoryAndTitle(t *testing.T) {
	svc, _ := newTestArticleService(t)

	_, err := svc.Create(context.Background(), "alice", dto.ArticleCreateRequest{Title: "No category"})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), "alice", dto.ArticleCreateRequest{Category: "news"})
	require.Error(t, err)
}

func TestArticleServiceUpdatePartial(t *testing.T) {
	svc, auditRepo := newTestArticleService(t)

	article, err := svc.Create(context.Background(), "alice", dto.ArticleCreateRequest{Category: "news", Title: "Original"})
	require.NoError(t, err)

	// Empty change sets succeed without touching the audit trail.
	require.NoError(t, svc.Update(context.Background(), "alice", article.ID, dto.ArticleUpdateRequest{}))
	entries, err := auditRepo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	title := "Updated"
	require.NoError(t, svc.Update(context.Background(), "alice", article.ID, dto.ArticleUpdateRequest{Title: &title}))

	updated, err := svc.Get(context.Background(), article.ID)
	require.NoError(t, err)
	require.Equal(t, "Updated", updated.Title)
	require.Equal(t, "news", updated.Category)

	entries, err = auditRepo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.AuditActionUpdate, entries[0].Action)
	require.Equal(t, "Updated", entries[0].Details["title"])
}

func TestArticleServiceUpdateMissing(t *testing.T) {
	svc, _ := newTestArticleService(t)
	title := "x"
	require.ErrorIs(t, svc.Update(context.Background(), "alice", 42, dto.ArticleUpdateRequest{Title: &title}), ErrArticleNotFound)
}

func TestArticleServiceGetMissing(t *testing.T) {
	svc, _ := newTestArticleService(t)
	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleServiceDeleteIsIdempotent(t *testing.T) {
	svc, auditRepo := newTestArticleService(t)

	article, err := svc.Create(context.Background(), "alice", dto.ArticleCreateRequest{Category: "news", Title: "Gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "alice", article.ID))
	require.NoError(t, svc.Delete(context.Background(), "alice", article.ID))

	entries, err := auditRepo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2, "create plus one effective delete")
	require.Equal(t, models.AuditActionDelete, entries[0].Action)
}
