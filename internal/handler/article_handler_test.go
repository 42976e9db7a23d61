package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/handler"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/service"
)

type mockArticleService struct {
	lastCategory string
	article      models.Article
	getErr       error
	updateErr    error
	updatedID    uint
	updateFields dto.ArticleUpdateRequest
}

func (m *mockArticleService) List(_ context.Context, category string) ([]models.Article, error) {
	m.lastCategory = category
	return []models.Article{m.article}, nil
}

func (m *mockArticleService) Get(_ context.Context, id uint) (models.Article, error) {
	if m.getErr != nil {
		return models.Article{}, m.getErr
	}
	return m.article, nil
}

func (m *mockArticleService) Create(_ context.Context, actor string, req dto.ArticleCreateRequest) (models.Article, error) {
	return models.Article{ID: 1, Category: req.Category, Title: req.Title}, nil
}

func (m *mockArticleService) Update(_ context.Context, actor string, id uint, req dto.ArticleUpdateRequest) error {
	m.updatedID = id
	m.updateFields = req
	return m.updateErr
}

func (m *mockArticleService) Delete(_ context.Context, actor string, id uint) error {
	return nil
}

func newArticleTestApp(svc service.ArticleService) *fiber.App {
	app := fiber.New()
	handler.NewArticleHandler(svc, testLogger()).Register(app.Group("/api/articles"))
	admin := app.Group("/api/admin/articles", passthroughIdentity("alice", "admin"))
	handler.NewAdminArticleHandler(svc, testLogger()).Register(admin)
	return app
}

func TestArticleHandlerListForwardsCategory(t *testing.T) {
	svc := &mockArticleService{article: models.Article{ID: 1, Title: "CRISPR milestones"}}
	app := newArticleTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/articles?category=research", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "research", svc.lastCategory)
}

func TestArticleHandlerGetMissing(t *testing.T) {
	svc := &mockArticleService{getErr: service.ErrArticleNotFound}
	app := newArticleTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/articles/42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminArticleHandlerCreate(t *testing.T) {
	svc := &mockArticleService{}
	app := newArticleTestApp(svc)

	body, err := json.Marshal(dto.ArticleCreateRequest{Category: "news", Title: "Opening"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/articles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestAdminArticleHandlerPartialUpdate(t *testing.T) {
	svc := &mockArticleService{}
	app := newArticleTestApp(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/articles/5", bytes.NewReader([]byte(`{"title":"Updated"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(5), svc.updatedID)
	require.NotNil(t, svc.updateFields.Title)
	require.Equal(t, "Updated", *svc.updateFields.Title)
	require.Nil(t, svc.updateFields.Category, "absent fields stay nil")
}

func TestAdminArticleHandlerUpdateMissing(t *testing.T) {
	svc := &mockArticleService{updateErr: service.ErrArticleNotFound}
	app := newArticleTestApp(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/articles/5", bytes.NewReader([]byte(`{"title":"x"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
