package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHandlerLogsWithoutWindow(t *testing.T) {
	logger := newTestLogger(t)
	handler := NewErrorHandler(logger, nil)

	context := NewErrorContext("Main", OperationOpenGame)
	context.Severity = SeverityWarning
	handler.ShowStandardError(errors.New("common.err.notagame: story.txt"), context)

	assert.Contains(t, readLog(t, logger), "[WARNING] Main/OpenGame: common.err.notagame: story.txt")
	assert.True(t, context.Recoverable)
}

func TestErrorHandlerIgnoresNilError(t *testing.T) {
	logger := newTestLogger(t)
	handler := NewErrorHandler(logger, nil)

	handler.ShowStandardError(nil, nil)
	handler.ShowError(nil)
	handler.ShowInitializationErrorDialog(nil)

	assert.Empty(t, readLog(t, logger))
}

func TestErrorHandlerPanicIsCritical(t *testing.T) {
	logger := newTestLogger(t)
	handler := NewErrorHandler(logger, nil)

	handler.ShowPanicError("index out of range", "goroutine 1 [running]:\nmain.main()")

	content := readLog(t, logger)
	assert.Contains(t, content, "[CRITICAL] TadsPlayer/Panic: index out of range")
	assert.Contains(t, content, "goroutine 1 [running]:")
}

func TestNewErrorHandlerRequiresLogger(t *testing.T) {
	assert.Panics(t, func() { NewErrorHandler(nil, nil) })
}
