// Package theme provides the application's dark look, independent of system settings.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameErrorMessages is used for inline error text
const ColorNameErrorMessages fyne.ThemeColorName = "ErrorMessagesColor"

var (
	accent     = color.NRGBA{R: 0x2e, G: 0x8b, B: 0x7a, A: 0xff} // #2E8B7A
	background = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff} // #1E1E1E
	pressed    = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff} // #212121
	white      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type customTheme struct{}

// NewCustomTheme returns the dark application theme
func NewCustomTheme() fyne.Theme {
	return &customTheme{}
}

func (t *customTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameErrorMessages:
		return color.NRGBA{R: 0xff, A: 0xff}
	case theme.ColorNameBackground, theme.ColorNameButton:
		return background
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff} // #3A3A3A
	case theme.ColorNameDisabled:
		return color.NRGBA{R: 0x96, G: 0x96, B: 0x96, A: 0xff} // #969696
	case theme.ColorNameError:
		return color.NRGBA{R: 0xc2, G: 0x14, B: 0x3d, A: 0xff} // #C2143D
	case theme.ColorNameFocus, theme.ColorNamePrimary, theme.ColorNameSelection, theme.ColorNameHyperlink:
		return accent
	case theme.ColorNameForeground, theme.ColorNameForegroundOnError, theme.ColorNameForegroundOnPrimary:
		return white
	case theme.ColorNameHeaderBackground:
		return color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff} // #3A3A3A
	case theme.ColorNameHover:
		return color.NRGBA{R: 0x47, G: 0x47, B: 0x47, A: 0xff} // #474747
	case theme.ColorNameInputBackground, theme.ColorNameSeparator:
		return color.NRGBA{A: 0xff}
	case theme.ColorNameMenuBackground:
		return color.NRGBA{R: 0x29, G: 0x29, B: 0x2e, A: 0xff} // #29292E
	case theme.ColorNamePlaceHolder:
		return color.NRGBA{R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff} // #B3B3B3
	case theme.ColorNamePressed, theme.ColorNameInputBorder, theme.ColorNameOverlayBackground:
		return pressed
	case theme.ColorNameScrollBar:
		return color.NRGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xff} // #424242
	case theme.ColorNameShadow:
		return color.NRGBA{A: 0x42}
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 0x43, G: 0xf4, B: 0x36, A: 0xff} // #43F436
	case theme.ColorNameWarning:
		return color.NRGBA{R: 0xff, G: 0x98, A: 0xff} // #FF9800
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *customTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 1
	case theme.SizeNameInlineIcon:
		return 20
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameLineSpacing:
		return 6
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameScrollBar, theme.SizeNameScrollBarSmall:
		return 12
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 18
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius, theme.SizeNameScrollBarRadius:
		return 8
	default:
		return theme.DefaultTheme().Size(name)
	}
}

func (t *customTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *customTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// AppIcon returns the icon used for application windows
func AppIcon() fyne.Resource {
	return theme.DocumentIcon()
}
