// common/error_handler.go

package common

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TadsPlayer/locales"
)

// ErrorContext provides additional information about an error
type ErrorContext struct {
	Module      string
	Operation   string
	Error       error
	Severity    Severity
	Recoverable bool
	Timestamp   time.Time
	StackTrace  string
}

// NewErrorContext creates a new error context with defaults
func NewErrorContext(module, operation string) *ErrorContext {
	return &ErrorContext{
		Module:      module,
		Operation:   operation,
		Severity:    SeverityError,
		Recoverable: true,
		Timestamp:   time.Now(),
	}
}

// ErrorHandler logs application errors and shows them in dialogs when a window is available
type ErrorHandler struct {
	logger *Logger
	window fyne.Window
}

// NewErrorHandler creates a new error handler instance. window may be nil; dialogs are
// then skipped and errors are only logged.
func NewErrorHandler(logger *Logger, window fyne.Window) *ErrorHandler {
	if logger == nil {
		panic("ErrorHandler: logger cannot be nil")
	}
	return &ErrorHandler{
		logger: logger,
		window: window,
	}
}

// SetWindow sets the window for displaying error dialogs
func (h *ErrorHandler) SetWindow(window fyne.Window) {
	h.window = window
}

// GetLogger returns the logger instance
func (h *ErrorHandler) GetLogger() *Logger {
	return h.logger
}

// ShowError logs err and displays it in a plain error dialog
func (h *ErrorHandler) ShowError(err error) {
	if err == nil {
		return
	}
	h.logger.Error("%v", err)
	if h.window != nil {
		dialog.ShowError(err, h.window)
	}
}

// ShowStandardError logs err with its context and displays the standard error dialog
func (h *ErrorHandler) ShowStandardError(err error, context *ErrorContext) {
	if err == nil {
		return
	}
	if context == nil {
		context = NewErrorContext("", "")
	}
	context.Error = err
	h.log(context)

	if h.window != nil {
		ShowStandardError(h.window, err, context)
	}
}

// ShowPanicError logs a recovered panic and tells the user about it
func (h *ErrorHandler) ShowPanicError(recovered interface{}, stackTrace string) {
	context := &ErrorContext{
		Module:      AppName,
		Operation:   "Panic",
		Error:       fmt.Errorf("%v", recovered),
		Severity:    SeverityCritical,
		Recoverable: false,
		Timestamp:   time.Now(),
		StackTrace:  stackTrace,
	}
	h.log(context)

	if h.window != nil {
		h.showDetailsDialog(context)
	}
}

// ShowInitializationErrorDialog reports a failure that happened before the main window was shown
func (h *ErrorHandler) ShowInitializationErrorDialog(err error) {
	if err == nil {
		return
	}
	context := NewErrorContext(AppName, OperationLoadConfig)
	context.Severity = SeverityCritical
	context.Error = err
	h.log(context)

	if h.window != nil {
		h.showDetailsDialog(context)
	}
}

func (h *ErrorHandler) log(context *ErrorContext) {
	level := context.Severity
	if level == "" {
		level = SeverityError
	}
	h.logger.Log(level, "%s/%s: %v", context.Module, context.Operation, context.Error)
	if context.StackTrace != "" {
		h.logger.Log(level, "Stack trace:\n%s", context.StackTrace)
	}
}

// showDetailsDialog shows an error together with its module, operation and an optional stack trace
func (h *ErrorHandler) showDetailsDialog(context *ErrorContext) {
	message := widget.NewLabel(context.Error.Error())
	message.Wrapping = fyne.TextWrapWord

	detailsLabel := widget.NewLabel(fmt.Sprintf("Module: %s\nOperation: %s", context.Module, context.Operation))
	detailsLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		message,
		widget.NewSeparator(),
		detailsLabel,
	)

	if context.StackTrace != "" {
		stackTraceArea := widget.NewMultiLineEntry()
		stackTraceArea.SetText(context.StackTrace)
		stackTraceArea.Disable()

		shown := false
		var toggle *widget.Button
		toggle = widget.NewButtonWithIcon(locales.Translate("common.button.showdetails"), theme.InfoIcon(), func() {
			if shown {
				content.Remove(stackTraceArea)
				toggle.SetText(locales.Translate("common.button.showdetails"))
			} else {
				content.Add(stackTraceArea)
				toggle.SetText(locales.Translate("common.button.hidedetails"))
			}
			shown = !shown
		})
		content.Add(toggle)
	}

	customDialog := dialog.NewCustom(
		locales.Translate("common.dialog.criticalheader"),
		locales.Translate("common.button.ok"),
		content,
		h.window,
	)
	customDialog.Resize(fyne.NewSize(500, 250))
	customDialog.Show()
}
