package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("unknown user without context values", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "unknown", l.Data["user"])
		_, hasRequestID := l.Data["request_id"]
		assert.False(t, hasRequestID)
	})

	t.Run("user and request id from context", func(t *testing.T) {
		ctx := ContextWithUser(context.Background(), "alice@example.com")
		ctx = ContextWithRequestID(ctx, "req-123")

		l := WithContext(ctx)
		assert.Equal(t, "alice@example.com", l.Data["user"])
		assert.Equal(t, "req-123", l.Data["request_id"])
		assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	})

	t.Run("fields are additive", func(t *testing.T) {
		l := New().WithField("team_id", "t1").WithFields(map[string]interface{}{"request_id": "r1"})
		assert.Equal(t, "t1", l.Data["team_id"])
		assert.Equal(t, "r1", l.Data["request_id"])
	})
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
