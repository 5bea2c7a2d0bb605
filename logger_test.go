package checked

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelDebug))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NoopLogger())
}

func TestLogHelpersDoNotPanic(t *testing.T) {
	ctx := context.Background()
	l := NoopLogger()

	l.LogParse(ctx, "64KB", "datasize", nil)
	l.LogParse(ctx, "64XB", "datasize", errors.New("boom"))
	l.LogRead(ctx, 4, nil)
	l.LogRead(ctx, 0, errors.New("boom"))
	l.LogFind(ctx, 3, true, nil)
	l.LogFind(ctx, 3, false, errors.New("boom"))
}
