package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

// FeedbackNotifier delivers a notification about a new feedback submission.
// Implementations are best-effort: errors are logged by the caller and never
// surface to the submitter.
type FeedbackNotifier interface {
	Notify(ctx context.Context, feedback models.Feedback) error
}

// FeedbackService covers the public feedback form and admin moderation.
type FeedbackService interface {
	Submit(ctx context.Context, req dto.FeedbackCreateRequest) (models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
	MarkRead(ctx context.Context, id uint) error
}

type feedbackService struct {
	repo      repository.FeedbackRepository
	notifier  FeedbackNotifier
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewFeedbackService constructs the feedback service. notifier may be nil when
// no notification transport is available.
func NewFeedbackService(repo repository.FeedbackRepository, notifier FeedbackNotifier, validate *validator.Validate, logger zerolog.Logger) FeedbackService {
	return &feedbackService{
		repo:      repo,
		notifier:  notifier,
		validator: validate,
		logger:    logger.With().Str("component", "feedback_service").Logger(),
		tracer:    otel.Tracer("github.com/bioscizone/bioscizone-api/internal/service/feedback"),
	}
}

// Submit persists the feedback and reports success as soon as the write
// commits. Notification delivery runs detached and unordered relative to the
// response; its outcome never affects the submitter.
func (s *feedbackService) Submit(ctx context.Context, req dto.FeedbackCreateRequest) (models.Feedback, error) {
	ctx, span := s.tracer.Start(ctx, "feedback.submit")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return models.Feedback{}, err
	}

	feedback := models.Feedback{
		SenderName: strings.TrimSpace(req.SenderName),
		Email:      strings.TrimSpace(req.Email),
		StudentID:  strings.TrimSpace(req.StudentID),
		Subject:    strings.TrimSpace(req.Subject),
		Message:    strings.TrimSpace(req.Message),
	}
	if err := s.repo.Create(ctx, &feedback); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return models.Feedback{}, err
	}

	s.dispatchNotification(feedback)

	span.SetStatus(codes.Ok, "stored")
	return feedback, nil
}

func (s *feedbackService) dispatchNotification(feedback models.Feedback) {
	if s.notifier == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error().Interface("panic", r).Msg("feedback notification panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.notifier.Notify(ctx, feedback); err != nil {
			s.logger.Warn().Err(err).Uint("feedback_id", feedback.ID).Msg("feedback notification failed")
		}
	}()
}

func (s *feedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.repo.List(ctx)
}

func (s *feedbackService) MarkRead(ctx context.Context, id uint) error {
	return s.repo.MarkRead(ctx, id)
}
