// main.go

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TadsPlayer/common"
	"TadsPlayer/gameinfo"
	"TadsPlayer/locales"
	"TadsPlayer/systimer"
	"TadsPlayer/theme"
	"TadsPlayer/ui"
)

const (
	logMaxSizeMB  = 10
	logMaxAgeDays = 7
)

// TadsPlayer is the main application structure.
type TadsPlayer struct {
	app             fyne.App
	mainWindow      fyne.Window
	configMgr       *common.ConfigManager
	logger          *common.Logger
	errorHandler    *common.ErrorHandler
	configInitError error

	timers       *systimer.Registry
	sessionTimer *systimer.Timer
	gameReader   *gameinfo.Reader

	gamePath       string
	gameLabel      *widget.Label
	sessionLabel   *widget.Label
	gameInfoButton *widget.Button
	status         *common.StatusMessagesContainer
}

// gameSession is the context handed to the session clock callback.
type gameSession struct {
	started time.Time
	label   *widget.Label
}

// NewTadsPlayer initializes logging, configuration, language, theme and the main window.
func NewTadsPlayer() *TadsPlayer {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		common.CaptureEarlyLog(common.SeverityWarning, "User config directory is not available: %v", err)
		userConfigDir = ""
	}

	logger, err := common.LocateLogger(userConfigDir, logMaxSizeMB, logMaxAgeDays)
	if err != nil {
		fmt.Printf("CRITICAL ERROR: Failed to initialize logger in any location: %v\n", err)
		os.Exit(1)
	}
	common.SetLogFilePath(logger.Path())
	common.FlushEarlyLogs(logger)

	fyneApp := app.NewWithID(common.AppID)
	fyneApp.SetIcon(theme.AppIcon())
	fyneApp.Settings().SetTheme(theme.NewCustomTheme())

	tp := &TadsPlayer{
		app:    fyneApp,
		logger: logger,
		timers: systimer.NewRegistry(func() systimer.HostTimer {
			return systimer.NewTickerHost()
		}),
		gameReader: gameinfo.NewReader(nil, logger),
	}

	tp.configMgr, tp.configInitError = common.LocateConfig(userConfigDir, logger)
	common.FlushEarlyLogs(logger)

	if tp.configMgr != nil {
		common.DetectAndSetLanguage(tp.configMgr, tp.logger)
	} else {
		tp.logger.Warning("ConfigManager is not available, using English")
		if err := locales.LoadTranslations("en"); err != nil {
			tp.logger.Error("Failed to load fallback translations: %v", err)
		}
	}

	tp.mainWindow = fyneApp.NewWindow(common.AppName)
	tp.mainWindow.Resize(fyne.NewSize(640, 260))
	tp.errorHandler = common.NewErrorHandler(tp.logger, tp.mainWindow)

	tp.logger.Info("%s %s started", common.AppName, common.AppVersion)
	return tp
}

// Run builds the GUI and runs the main event loop.
func (tp *TadsPlayer) Run() {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := string(debug.Stack())
			if tp.errorHandler != nil {
				tp.errorHandler.ShowPanicError(r, stackTrace)
			} else if tp.logger != nil {
				tp.logger.Error("PANIC RECOVERED (ErrorHandler not available): %v\n%s", r, stackTrace)
			}
		}
	}()

	tp.sessionTimer = tp.timers.Create(nil, nil)
	tp.mainWindow.SetContent(tp.createMainContent())
	tp.mainWindow.Show()

	if tp.configInitError != nil {
		tp.errorHandler.ShowInitializationErrorDialog(tp.configInitError)
	}

	tp.app.Run()

	tp.logger.Info("Stopping %d timers", tp.timers.Len())
	tp.timers.StopAll()
	tp.logger.Info("%s stopped", common.AppName)
	tp.logger.Close()
}

// createMainContent creates the button bar and the game status lines.
func (tp *TadsPlayer) createMainContent() fyne.CanvasObject {
	openButton := common.CreateNativeFileOpenButton(
		locales.Translate("main.dialog.opengame"),
		locales.Translate("main.button.open"),
		locales.Translate("main.filter.games"),
		common.GameFileExtensions,
		tp.lastGameDir,
		tp.openGame,
	)
	openButton.Importance = widget.HighImportance

	tp.gameInfoButton = widget.NewButtonWithIcon(locales.Translate("main.button.gameinfo"), fynetheme.InfoIcon(), func() {
		if tp.gamePath == "" {
			return
		}
		ui.ShowGameInfoDialog(tp.mainWindow, tp.gamePath, ui.GameInfoDeps{
			ConfigMgr: tp.configMgr,
			Logger:    tp.logger,
		})
	})
	tp.gameInfoButton.Disable()

	settingsButton := widget.NewButtonWithIcon(locales.Translate("main.button.settings"), fynetheme.SettingsIcon(), func() {
		if tp.configMgr == nil {
			tp.errorHandler.ShowInitializationErrorDialog(tp.configInitError)
			return
		}
		ui.ShowSettingsWindow(tp.mainWindow, tp.configMgr, tp.errorHandler)
	})
	aboutButton := widget.NewButtonWithIcon(locales.Translate("main.button.about"), fynetheme.HelpIcon(), func() {
		ui.ShowAboutWindow(tp.mainWindow)
	})
	logButton := widget.NewButtonWithIcon(locales.Translate("main.button.log"), fynetheme.DocumentIcon(), func() {
		common.ShowLogViewerWindow(tp.logger.Path())
	})

	tp.gameLabel = widget.NewLabel(locales.Translate("main.label.nogame"))
	tp.gameLabel.Truncation = fyne.TextTruncateEllipsis
	tp.sessionLabel = widget.NewLabel("")
	tp.status = common.NewStatusMessagesContainer(20)

	buttonBar := container.NewHBox(openButton, tp.gameInfoButton, layout.NewSpacer(), settingsButton, aboutButton, logButton)
	return container.NewVBox(
		buttonBar,
		widget.NewSeparator(),
		tp.gameLabel,
		tp.sessionLabel,
		widget.NewSeparator(),
		tp.status,
	)
}

func (tp *TadsPlayer) lastGameDir() string {
	if tp.configMgr == nil {
		return ""
	}
	return tp.configMgr.GetGlobalConfig().LastGameDir
}

// openGame makes path the current game and restarts the session clock.
func (tp *TadsPlayer) openGame(path string) {
	path = common.NormalizePath(path)
	if !common.FileExists(path) || !common.HasExtension(path, common.GameFileExtensions) {
		context := common.NewErrorContext("Main", common.OperationOpenGame)
		context.Severity = common.SeverityWarning
		tp.errorHandler.ShowStandardError(fmt.Errorf("common.err.notagame: %s", path), context)
		tp.status.AddWarningMessage(fmt.Sprintf(locales.Translate("main.status.notagame"), filepath.Base(path)))
		tp.closeGame()
		return
	}

	tp.gamePath = path
	tp.logger.Info("Opened game %s", path)
	tp.status.AddInfoMessage(fmt.Sprintf(locales.Translate("main.status.opened"), filepath.Base(path)))
	tp.gameLabel.SetText(fmt.Sprintf(locales.Translate("main.label.game"), filepath.Base(path)))

	if tp.gameReader.HasMetaInfo(path) {
		tp.gameInfoButton.Enable()
	} else {
		tp.logger.Info("Game %s has no metadata block", filepath.Base(path))
		tp.status.AddInfoMessage(fmt.Sprintf(locales.Translate("main.status.nometa"), filepath.Base(path)))
		tp.gameInfoButton.Disable()
	}

	tp.sessionTimer.Stop()
	tp.sessionTimer.Arm(updateSessionClock, &gameSession{started: time.Now(), label: tp.sessionLabel})
	tp.sessionTimer.Tick()
	tp.sessionTimer.Start(time.Second)

	if tp.configMgr != nil {
		cfg := tp.configMgr.GetGlobalConfig()
		cfg.LastGameDir = filepath.Dir(path)
		if err := tp.configMgr.SaveGlobalConfig(cfg); err != nil {
			tp.logger.Warning("Failed to remember game directory: %v", err)
			tp.status.AddWarningMessage(locales.Translate("common.err.savesettings"))
		}
	}
}

// closeGame forgets the current game and stops the session clock.
func (tp *TadsPlayer) closeGame() {
	tp.gamePath = ""
	tp.gameLabel.SetText(locales.Translate("main.label.nogame"))
	tp.gameInfoButton.Disable()
	tp.sessionTimer.Stop()
	tp.sessionTimer.Disarm()
	tp.sessionLabel.SetText("")
}

func updateSessionClock(ctx any) {
	session := ctx.(*gameSession)
	elapsed := time.Since(session.started).Truncate(time.Second)
	session.label.SetText(fmt.Sprintf(locales.Translate("main.label.session"), elapsed))
}

func main() {
	tp := NewTadsPlayer()
	tp.Run()
}
