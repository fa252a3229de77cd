package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TadsPlayer/common"
	"TadsPlayer/locales"
)

// settingsForm holds the editable widgets of the settings dialog.
type settingsForm struct {
	langItems      []common.LanguageItem
	languageSelect *widget.Select
	smoothCheck    *widget.Check
	saveButton     *widget.Button
}

// newSettingsForm creates the settings widgets filled from config.
// onChange runs whenever the user edits a value.
func newSettingsForm(config common.GlobalConfig, onChange func()) *settingsForm {
	form := &settingsForm{langItems: common.GetAvailableLanguages()}

	langOptions := make([]string, len(form.langItems))
	for i, lang := range form.langItems {
		langOptions[i] = lang.Name
	}
	form.languageSelect = widget.NewSelect(langOptions, nil)
	for _, lang := range form.langItems {
		if lang.Code == config.Language {
			form.languageSelect.SetSelected(lang.Name)
			break
		}
	}
	form.languageSelect.OnChanged = func(string) { onChange() }

	form.smoothCheck = widget.NewCheck(locales.Translate("settings.smoothscaling"), nil)
	form.smoothCheck.SetChecked(config.UseSmoothScaling)
	form.smoothCheck.OnChanged = func(bool) { onChange() }

	return form
}

// apply copies the widget values into config.
func (f *settingsForm) apply(config common.GlobalConfig) common.GlobalConfig {
	for _, lang := range f.langItems {
		if lang.Name == f.languageSelect.Selected {
			config.Language = lang.Code
			break
		}
	}
	config.UseSmoothScaling = f.smoothCheck.Checked
	return config
}

// ShowSettingsWindow creates and displays the settings dialog.
func ShowSettingsWindow(parent fyne.Window, configMgr *common.ConfigManager, errorHandler *common.ErrorHandler) {
	config := configMgr.GetGlobalConfig()

	var form *settingsForm
	form = newSettingsForm(config, func() {
		if form != nil && form.saveButton != nil {
			form.saveButton.SetIcon(nil)
			form.saveButton.SetText(locales.Translate("settings.button.save"))
		}
	})

	form.saveButton = common.CreateActionButton(
		locales.Translate("settings.button.save"),
		nil,
		func() {
			previous := configMgr.GetGlobalConfig()
			updated := form.apply(previous)
			if err := configMgr.SaveGlobalConfig(updated); err != nil {
				context := common.NewErrorContext("Settings", common.OperationSaveSettings)
				errorHandler.ShowStandardError(fmt.Errorf("common.err.savesettings: %w", err), context)
				return
			}
			errorHandler.GetLogger().Info("Settings saved (language %s, smooth scaling %t)", updated.Language, updated.UseSmoothScaling)
			form.saveButton.SetText(locales.Translate("settings.saved"))
			form.saveButton.SetIcon(theme.ConfirmIcon())
		},
	)

	restartNote := widget.NewLabel(locales.Translate("settings.restartnote"))
	restartNote.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(locales.Translate("settings.language"), form.languageSelect),
			widget.NewFormItem("", form.smoothCheck),
		),
		restartNote,
		container.NewHBox(layout.NewSpacer(), form.saveButton),
	)

	settingsDialog := dialog.NewCustom(
		locales.Translate("settings.title"),
		locales.Translate("common.button.close"),
		content,
		parent,
	)
	settingsDialog.Resize(fyne.NewSize(500, 260))
	settingsDialog.Show()
}
