// Package ui provides user interface components for the application
package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"TadsPlayer/common"
	"TadsPlayer/locales"
)

// ShowAboutWindow shows the application name and version.
func ShowAboutWindow(parent fyne.Window) {
	name := widget.NewLabelWithStyle(common.AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	version := widget.NewLabelWithStyle(fmt.Sprintf(locales.Translate("about.version"), common.AppVersion), fyne.TextAlignCenter, fyne.TextStyle{})
	description := widget.NewLabelWithStyle(locales.Translate("about.description"), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	description.Wrapping = fyne.TextWrapWord

	aboutDialog := dialog.NewCustom(
		locales.Translate("about.title"),
		locales.Translate("common.button.close"),
		container.NewVBox(name, version, description),
		parent,
	)
	aboutDialog.Resize(fyne.NewSize(360, 200))
	aboutDialog.Show()
}
