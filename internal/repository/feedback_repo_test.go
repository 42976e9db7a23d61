package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

func TestFeedbackRepositoryListNewestFirst(t *testing.T) {
	db := setupTestDB(t, &models.Feedback{})
	repo := NewFeedbackRepository(db)

	old := models.Feedback{SenderName: "Alice", Email: "a@example.com", Subject: "Old", Message: "m", CreatedAt: time.Now().Add(-time.Hour)}
	recent := models.Feedback{SenderName: "Bob", Email: "b@example.com", Subject: "Recent", Message: "m", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(context.Background(), &old))
	require.NoError(t, repo.Create(context.Background(), &recent))

	feedbacks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, feedbacks, 2)
	require.Equal(t, "Recent", feedbacks[0].Subject)
}

func TestFeedbackRepositoryMarkRead(t *testing.T) {
	db := setupTestDB(t, &models.Feedback{})
	repo := NewFeedbackRepository(db)

	feedback := models.Feedback{SenderName: "Alice", Email: "a@example.com", Subject: "Hi", Message: "m"}
	require.NoError(t, repo.Create(context.Background(), &feedback))
	require.False(t, feedback.IsRead)

	require.NoError(t, repo.MarkRead(context.Background(), feedback.ID))

	feedbacks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.True(t, feedbacks[0].IsRead)
}
