// common/ui_helpers.go

package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	nativedialog "github.com/sqweek/dialog"

	"TadsPlayer/locales"
)

// CreateNativeFileOpenButton creates a button that opens the platform file picker.
// startDir provides the directory the picker starts in; it is read on every tap.
func CreateNativeFileOpenButton(title, buttonText, filterName string, extensions []string, startDir func() string, openHandler func(string)) *widget.Button {
	return widget.NewButtonWithIcon(buttonText, theme.FolderOpenIcon(), func() {
		picker := nativedialog.File().Title(title).Filter(filterName, extensions...)
		if startDir != nil {
			if dir := startDir(); DirectoryExists(dir) {
				picker = picker.SetStartDir(dir)
			}
		}
		filename, err := picker.Load()
		if err != nil {
			if !errors.Is(err, nativedialog.ErrCancelled) {
				CaptureEarlyLog(SeverityWarning, "File picker failed: %v", err)
			}
			return
		}
		if filename != "" && openHandler != nil {
			openHandler(filename)
		}
	})
}

// CreateActionButton creates a high importance button with an icon
func CreateActionButton(text string, icon fyne.Resource, onAction func()) *widget.Button {
	btn := widget.NewButtonWithIcon(text, icon, onAction)
	btn.Importance = widget.HighImportance
	return btn
}

// ShowStandardError displays a standardized error dialog with log viewer access.
// The part of the error text before the first ":" is treated as a translation key.
func ShowStandardError(window fyne.Window, err error, context *ErrorContext) *dialog.CustomDialog {
	header := locales.Translate("common.dialog.errorheader")
	if context != nil {
		switch context.Severity {
		case SeverityWarning:
			header = locales.Translate("common.dialog.warningheader")
		case SeverityCritical:
			header = locales.Translate("common.dialog.criticalheader")
		}
	}

	errorMsg := locales.Translate("common.err.unknown")
	if err != nil {
		errParts := strings.SplitN(err.Error(), ":", 2)
		errorMsg = locales.Translate(strings.TrimSpace(errParts[0]))
		if len(errParts) == 2 {
			errorMsg += ":" + errParts[1]
		}
	}

	messageLabel := widget.NewLabel(errorMsg)
	messageLabel.Wrapping = fyne.TextWrapWord

	openLogsBtn := widget.NewButtonWithIcon(
		locales.Translate("common.button.openlogs"),
		theme.FolderOpenIcon(),
		func() {
			ShowLogViewerWindow(GetLogFilePath())
		},
	)

	var dlg *dialog.CustomDialog
	okBtn := widget.NewButton(
		locales.Translate("common.button.ok"),
		func() {
			dlg.Hide()
		},
	)
	okBtn.Importance = widget.HighImportance

	content := container.NewVBox(
		messageLabel,
		container.NewHBox(layout.NewSpacer(), openLogsBtn),
		container.NewHBox(layout.NewSpacer(), okBtn, layout.NewSpacer()),
	)

	dlg = dialog.NewCustomWithoutButtons(header, content, window)
	dlg.Resize(fyne.NewSize(400, 200))
	dlg.Show()
	return dlg
}

var activeLogPath string

// SetLogFilePath records where the running logger writes, for the log viewer
func SetLogFilePath(path string) {
	activeLogPath = path
}

// GetLogFilePath returns the active log file, or the default location in the user config directory
func GetLogFilePath() string {
	if activeLogPath != "" {
		return activeLogPath
	}
	appDataDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(FolderNameLog, FileNameLog)
	}
	return filepath.Join(appDataDir, AppName, FolderNameLog, FileNameLog)
}

// ShowLogViewerWindow creates and displays a window with the log file content.
func ShowLogViewerWindow(logPath string) {
	logText := widget.NewEntry()
	logText.MultiLine = true
	logText.TextStyle = fyne.TextStyle{Monospace: true}
	logText.Wrapping = fyne.TextWrapBreak
	logText.Disable()

	scrollContainer := container.NewScroll(logText)

	logWindow := fyne.CurrentApp().NewWindow(locales.Translate("common.logviewer.header"))

	refreshBtn := widget.NewButtonWithIcon(
		locales.Translate("common.button.refresh"),
		theme.ViewRefreshIcon(),
		func() {
			loadLogContent(logPath, logText, scrollContainer)
		},
	)
	refreshBtn.Importance = widget.HighImportance
	closeBtn := widget.NewButtonWithIcon(
		locales.Translate("common.button.close"),
		theme.CancelIcon(),
		func() {
			logWindow.Close()
		},
	)

	buttonContainer := container.NewHBox(
		layout.NewSpacer(),
		refreshBtn,
		closeBtn,
	)

	logWindow.SetContent(container.NewBorder(nil, buttonContainer, nil, nil, scrollContainer))
	logWindow.Resize(fyne.NewSize(800, 600))
	logWindow.CenterOnScreen()

	loadLogContent(logPath, logText, scrollContainer)

	logWindow.Show()
}

// loadLogContent reads the log file into the entry and scrolls to its end
func loadLogContent(logPath string, logText *widget.Entry, scrollContainer *container.Scroll) {
	content, err := os.ReadFile(logPath)
	if err != nil {
		logText.SetText(fmt.Sprintf(locales.Translate("common.err.readlog"), err))
		return
	}

	logText.SetText(string(content))

	lineCount := strings.Count(string(content), "\n")
	if lineCount > 0 {
		logText.CursorRow = lineCount
		logText.Refresh()

		// Scroll after the new content has been laid out
		go func() {
			time.Sleep(100 * time.Millisecond)
			fyne.Do(scrollContainer.ScrollToBottom)
		}()
	}
}

// ShowPanicDialog shows a simple dialog with a title and message
func ShowPanicDialog(window fyne.Window, title, content string) {
	dismissText := locales.Translate("common.button.ok")
	panicDialog := dialog.NewCustom(title, dismissText, widget.NewLabel(content), window)
	panicDialog.Show()
}
