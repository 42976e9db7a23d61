package mailer

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMailerConfigured(t *testing.T) {
	logger := zerolog.New(io.Discard)

	require.False(t, New(Config{}, logger).Configured())
	require.False(t, New(Config{Host: "smtp.example.com"}, logger).Configured())
	require.True(t, New(Config{Host: "smtp.example.com", Username: "bot", Password: "pw"}, logger).Configured())
}

func TestMailerSendUnconfigured(t *testing.T) {
	m := New(Config{}, zerolog.New(io.Discard))

	err := m.Send(context.Background(), []string{"admin@example.com"}, "subject", "<p>hi</p>", "hi")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestMailerSendRequiresRecipients(t *testing.T) {
	m := New(Config{Host: "smtp.example.com", Username: "bot", Password: "pw"}, zerolog.New(io.Discard))

	err := m.Send(context.Background(), nil, "subject", "<p>hi</p>", "hi")
	require.Error(t, err)
}
