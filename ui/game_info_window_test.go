package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TadsPlayer/common"
	"TadsPlayer/gameinfo"
	"TadsPlayer/locales"
	"TadsPlayer/presenter"
)

const sampleGameInfo = `Name: The Lost Lighthouse
Headline: An Interactive Mystery
Byline: by A. Keeper
Desc: Fog rolls in.\nThe lamp is dark.
Genre: Mystery
Version: 2
IFID: 1234-ABCD
`

func writeGame(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	gamePath := filepath.Join(dir, "lighthouse.t3")
	require.NoError(t, os.WriteFile(gamePath, []byte("T3-image"), 0644))
	for name, data := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, data, 0644))
	}
	return gamePath
}

func coverPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testDeps(t *testing.T) GameInfoDeps {
	t.Helper()
	logger, err := common.NewLogger(filepath.Join(t.TempDir(), common.FileNameLog), 1, 7)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return GameInfoDeps{Logger: logger}
}

// collect returns every canvas object below obj, depth first.
func collect(obj fyne.CanvasObject) []fyne.CanvasObject {
	out := []fyne.CanvasObject{obj}
	switch o := obj.(type) {
	case *fyne.Container:
		for _, child := range o.Objects {
			out = append(out, collect(child)...)
		}
	case *container.Scroll:
		out = append(out, collect(o.Content)...)
	}
	return out
}

func TestBuildGameInfo(t *testing.T) {
	gamePath := writeGame(t, map[string][]byte{
		gameinfo.ResourceName:  []byte(sampleGameInfo),
		".system/CoverArt.png": coverPNG(t, 400, 300),
	})

	p := BuildGameInfo(gamePath, testDeps(t))

	require.True(t, p.HasCover())
	assert.Equal(t, 200, p.Cover.Bounds().Dx())
	assert.Equal(t, 150, p.Cover.Bounds().Dy())
	assert.Contains(t, p.TitleHTML, "The Lost Lighthouse")
	require.Len(t, p.Rows, 3)
	assert.Equal(t, gameinfo.KeyGenre, p.Rows[0].Field)
	assert.Equal(t, gameinfo.KeyVersion, p.Rows[1].Field)
	assert.Equal(t, gameinfo.KeyIFID, p.Rows[2].Field)
}

func TestBuildGameInfoWithoutMetadata(t *testing.T) {
	p := BuildGameInfo(writeGame(t, nil), testDeps(t))

	assert.False(t, p.HasCover())
	assert.Empty(t, p.TitleHTML)
	assert.Empty(t, p.Rows)
}

func TestBuildGameInfoWithoutLogger(t *testing.T) {
	gamePath := writeGame(t, map[string][]byte{
		gameinfo.ResourceName:  nil,
		".system/CoverArt.png": []byte("not an image"),
	})

	var p presenter.Presentation
	require.NotPanics(t, func() {
		p = BuildGameInfo(gamePath, GameInfoDeps{})
	})
	assert.False(t, p.HasCover())
	assert.Empty(t, p.TitleHTML)
	assert.Empty(t, p.Rows)
}

func TestNewGameInfoContent(t *testing.T) {
	test.NewTempApp(t)
	require.NoError(t, locales.LoadTranslations("en"))

	gamePath := writeGame(t, map[string][]byte{
		gameinfo.ResourceName: []byte(sampleGameInfo),
		"CoverArt.png":        coverPNG(t, 120, 80),
	})
	deps := testDeps(t)
	content, coverHeight := NewGameInfoContent(BuildGameInfo(gamePath, deps), deps.Logger)

	assert.Equal(t, float32(80), coverHeight)

	var images, richTexts, tables int
	for _, obj := range collect(content) {
		switch o := obj.(type) {
		case *canvas.Image:
			images++
			assert.Equal(t, canvas.ImageFillOriginal, o.FillMode)
		case *widget.RichText:
			richTexts++
			assert.Len(t, o.Segments, 5)
		case *widget.Table:
			tables++
			rows, cols := o.Length()
			assert.Equal(t, 3, rows)
			assert.Equal(t, 2, cols)
		}
	}
	assert.Equal(t, 1, images)
	assert.Equal(t, 1, richTexts)
	assert.Equal(t, 1, tables)
}

func TestNewGameInfoContentEmpty(t *testing.T) {
	test.NewTempApp(t)
	require.NoError(t, locales.LoadTranslations("en"))

	content, coverHeight := NewGameInfoContent(presenter.Presentation{}, testDeps(t).Logger)

	assert.Zero(t, coverHeight)
	var labels []string
	for _, obj := range collect(content) {
		switch o := obj.(type) {
		case *widget.Table:
			t.Fatal("table shown without rows")
		case *widget.Label:
			labels = append(labels, o.Text)
		}
	}
	assert.Equal(t, []string{locales.Translate("gameinfo.noinfo")}, labels)
}

func TestRowLabelLocalisation(t *testing.T) {
	row := presenter.Row{Field: gameinfo.KeyVersion, Label: "Version", Value: "2"}

	require.NoError(t, locales.LoadTranslations("cs"))
	assert.Equal(t, "Verze", rowLabel(row))

	require.NoError(t, locales.LoadTranslations("en"))
	assert.Equal(t, "Version", rowLabel(row))

	unknown := presenter.Row{Field: gameinfo.Key("custom"), Label: "Custom"}
	assert.Equal(t, "Custom", rowLabel(unknown))
}

func TestShowGameInfoDialog(t *testing.T) {
	test.NewTempApp(t)
	require.NoError(t, locales.LoadTranslations("en"))
	w := test.NewTempWindow(t, widget.NewLabel(""))
	w.Resize(fyne.NewSize(800, 700))

	gamePath := writeGame(t, map[string][]byte{gameinfo.ResourceName: []byte(sampleGameInfo)})
	dlg := ShowGameInfoDialog(w, gamePath, testDeps(t))
	require.NotNil(t, dlg)
	dlg.Hide()
}

func TestShowGameInfoDialogWithoutLogger(t *testing.T) {
	test.NewTempApp(t)
	require.NoError(t, locales.LoadTranslations("en"))
	w := test.NewTempWindow(t, widget.NewLabel(""))
	w.Resize(fyne.NewSize(800, 700))

	gamePath := writeGame(t, map[string][]byte{".system/CoverArt.png": coverPNG(t, 40, 30)})
	require.NotPanics(t, func() {
		ShowGameInfoDialog(w, gamePath, GameInfoDeps{}).Hide()
	})
}
