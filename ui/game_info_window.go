package ui

import (
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"TadsPlayer/common"
	"TadsPlayer/coverart"
	"TadsPlayer/gameinfo"
	"TadsPlayer/locales"
	"TadsPlayer/presenter"
	"TadsPlayer/resfinder"
)

const (
	gameInfoWidth      = 520
	gameInfoBaseHeight = 420
	labelColumnWidth   = 160
)

// GameInfoDeps carries what the game information dialog reads from.
type GameInfoDeps struct {
	ConfigMgr *common.ConfigManager
	Logger    *common.Logger
	// FinderFor resolves a game's resources; nil uses resfinder.ForGame.
	FinderFor func(gamePath string) resfinder.Finder
}

func (d GameInfoDeps) finderFor() func(string) resfinder.Finder {
	if d.FinderFor != nil {
		return d.FinderFor
	}
	return resfinder.ForGame
}

// BuildGameInfo reads the metadata and cover art of the game at gamePath.
func BuildGameInfo(gamePath string, deps GameInfoDeps) presenter.Presentation {
	finderFor := deps.finderFor()
	meta, _ := gameinfo.NewReader(finderFor, deps.Logger).ReadFromFile(gamePath)

	smooth := common.DefaultGlobalConfig().UseSmoothScaling
	if deps.ConfigMgr != nil {
		smooth = deps.ConfigMgr.GetGlobalConfig().UseSmoothScaling
	}
	quality := coverart.QualityFromSetting(smooth)
	cover := coverart.Load(finderFor(gamePath), quality, deps.Logger)
	if cover != nil {
		deps.Logger.Info("Loaded cover art of %s (%s scaling, %dx%d)",
			filepath.Base(gamePath), quality, cover.Bounds().Dx(), cover.Bounds().Dy())
	}

	return presenter.Build(meta, cover)
}

// NewGameInfoContent renders a presentation. It returns the content and the height
// taken by the cover art.
func NewGameInfoContent(p presenter.Presentation, logger *common.Logger) (fyne.CanvasObject, float32) {
	content := container.NewVBox()

	var coverHeight float32
	if p.HasCover() {
		cover := canvas.NewImageFromImage(p.Cover)
		cover.FillMode = canvas.ImageFillOriginal
		cover.ScaleMode = canvas.ImageScaleSmooth
		content.Add(container.NewCenter(cover))
		coverHeight = float32(p.Cover.Bounds().Dy())
	}

	segments, err := HTMLToSegments(p.TitleHTML)
	if err != nil {
		logger.Warning("%v", err)
	}
	if len(segments) > 0 {
		title := widget.NewRichText(segments...)
		title.Wrapping = fyne.TextWrapWord
		content.Add(title)
	}

	if table := newDetailsTable(p); table != nil {
		content.Add(table)
	}

	if len(segments) == 0 && len(p.Rows) == 0 {
		noInfo := widget.NewLabel(locales.Translate("gameinfo.noinfo"))
		noInfo.Wrapping = fyne.TextWrapWord
		noInfo.Alignment = fyne.TextAlignCenter
		content.Add(noInfo)
	}

	return container.NewVScroll(content), coverHeight
}

// newDetailsTable returns a two column label/value table sized to its rows, or nil for no rows.
func newDetailsTable(p presenter.Presentation) fyne.CanvasObject {
	if len(p.Rows) == 0 {
		return nil
	}

	labels := make([]string, len(p.Rows))
	for i, row := range p.Rows {
		labels[i] = rowLabel(row)
	}

	table := widget.NewTable(
		func() (int, int) {
			return len(p.Rows), 2
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			label := cell.(*widget.Label)
			if id.Col == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(labels[id.Row])
				return
			}
			label.TextStyle = fyne.TextStyle{}
			label.SetText(p.Rows[id.Row].Value)
		},
	)
	table.SetColumnWidth(0, labelColumnWidth)
	table.SetColumnWidth(1, gameInfoWidth-labelColumnWidth-40)

	rowHeight := widget.NewLabel("").MinSize().Height
	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(gameInfoWidth-40, p.TableHeight(rowHeight)))

	return container.NewStack(sizer, table)
}

func rowLabel(row presenter.Row) string {
	key := "gameinfo.row." + string(row.Field)
	if locales.Has(key) {
		return locales.Translate(key)
	}
	return row.Label
}

// ShowGameInfoDialog shows the metadata and cover art of the game at gamePath.
// The content is rebuilt every time the dialog opens.
func ShowGameInfoDialog(parent fyne.Window, gamePath string, deps GameInfoDeps) dialog.Dialog {
	deps.Logger.Info("Showing game information for %s", gamePath)

	p := BuildGameInfo(gamePath, deps)
	content, coverHeight := NewGameInfoContent(p, deps.Logger)

	var dlg *dialog.CustomDialog
	closeButton := widget.NewButton(locales.Translate("gameinfo.button.close"), func() {
		dlg.Hide()
	})
	closeButton.Importance = widget.HighImportance

	body := container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), closeButton, layout.NewSpacer()), nil, nil, content)
	dlg = dialog.NewCustomWithoutButtons(locales.Translate("gameinfo.title"), body, parent)
	dlg.Resize(fyne.NewSize(gameInfoWidth, gameInfoBaseHeight+coverHeight))
	dlg.Show()
	return dlg
}
