package presenter

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TadsPlayer/gameinfo"
)

func TestBuildNameOnly(t *testing.T) {
	p := Build(gameinfo.Metadata{gameinfo.KeyName: "Foo"}, nil)

	assert.Equal(t, `<b><center><font size="+1">Foo</font></center></b><p>`, p.TitleHTML)
	assert.Empty(t, p.Rows)
	assert.False(t, p.HasCover())
}

func TestBuildFullTitleBlock(t *testing.T) {
	meta := gameinfo.Metadata{
		gameinfo.KeyName:     "Tom & Jerry's <Game>",
		gameinfo.KeyHeadline: "An \"Interactive\" Chase",
		gameinfo.KeyByline:   "by A & B",
		gameinfo.KeyDesc:     `First<1>\nSecond`,
	}
	p := Build(meta, image.NewRGBA(image.Rect(0, 0, 10, 10)))

	want := `<center><img src="CoverArt"></center><p>` +
		`<b><center><font size="+1">Tom &amp; Jerry's &lt;Game&gt;</font></center></b><p>` +
		`<center>An &#34;Interactive&#34; Chase</center><p>` +
		`<i><center>by A &amp; B</center></i><p>` +
		`First&lt;1&gt;<p>Second`
	assert.Equal(t, want, p.TitleHTML)
	assert.True(t, p.HasCover())
}

func TestHTMLVariantsWinVerbatim(t *testing.T) {
	meta := gameinfo.Metadata{
		gameinfo.KeyByline:     "plain <byline>",
		gameinfo.KeyHTMLByline: `by <a href="mailto:x@y">X</a>`,
		gameinfo.KeyDesc:       "plain desc",
		gameinfo.KeyHTMLDesc:   `<b>Rich</b> & raw\n`,
	}
	got := TitleHTML(meta, false)

	assert.Equal(t, `<i><center>by <a href="mailto:x@y">X</a></center></i><p><b>Rich</b> & raw\n`, got)
	assert.NotContains(t, got, "plain")
}

func TestPlainVariantsWhenHTMLAbsent(t *testing.T) {
	meta := gameinfo.Metadata{
		gameinfo.KeyByline: "by Me",
		gameinfo.KeyDesc:   `a\nb\nc`,
	}
	assert.Equal(t, `<i><center>by Me</center></i><p>a<p>b<p>c`, TitleHTML(meta, false))
}

func TestEmptyHTMLBylineStillWins(t *testing.T) {
	meta := gameinfo.Metadata{
		gameinfo.KeyByline:     "by Me",
		gameinfo.KeyHTMLByline: "",
		gameinfo.KeyDesc:       "plain",
		gameinfo.KeyHTMLDesc:   "",
	}
	assert.Equal(t, `<i><center></center></i><p>plain`, TitleHTML(meta, false))
}

func TestSuppliedEmptyFieldsKeepTheirWrappers(t *testing.T) {
	tests := []struct {
		name string
		meta gameinfo.Metadata
		want string
	}{
		{"name", gameinfo.Metadata{gameinfo.KeyName: ""}, `<b><center><font size="+1"></font></center></b><p>`},
		{"headline", gameinfo.Metadata{gameinfo.KeyHeadline: ""}, `<center></center><p>`},
		{"byline", gameinfo.Metadata{gameinfo.KeyByline: ""}, `<i><center></center></i><p>`},
		{"desc", gameinfo.Metadata{gameinfo.KeyDesc: ""}, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleHTML(tt.meta, false))
		})
	}
}

func TestRowsOrderAndSkipping(t *testing.T) {
	meta := gameinfo.Metadata{
		gameinfo.KeyIFID:           "ABCD",
		gameinfo.KeyGenre:          "Fantasy",
		gameinfo.KeyLanguage:       "en-US",
		gameinfo.KeyVersion:        "",
		gameinfo.KeyReleaseDate:    "2024-01-01",
		gameinfo.KeyFirstPublished: "2001",
		gameinfo.KeyAuthorEmail:    "me@example.org",
		gameinfo.KeyName:           "Not a row",
		gameinfo.KeyLicenseType:    "Freeware",
		gameinfo.KeyCopyingRules:   "Nominal cost only",
		gameinfo.KeySeries:         "Saga",
		gameinfo.KeySeriesNumber:   "2",
		gameinfo.KeyForgiveness:    "Merciful",
	}
	rows := Rows(meta)

	var labels, values []string
	for _, r := range rows {
		labels = append(labels, r.Label)
		values = append(values, r.Value)
	}
	assert.Equal(t, []string{
		"Genre", "Forgiveness", "Series", "Series Number", "Date", "First Published",
		"Author email", "Language", "License Type", "Copying Rules", "IFID",
	}, labels)
	assert.Equal(t, []string{
		"Fantasy", "Merciful", "Saga", "2", "2024-01-01", "2001",
		"me@example.org", "en-US", "Freeware", "Nominal cost only", "ABCD",
	}, values)
	assert.Equal(t, gameinfo.KeyGenre, rows[0].Field)
}

func TestRowValuesAreNotEscaped(t *testing.T) {
	rows := Rows(gameinfo.Metadata{gameinfo.KeyGenre: "Horror & <Gore>"})
	require.Len(t, rows, 1)
	assert.Equal(t, "Horror & <Gore>", rows[0].Value)
}

func TestEmptyMetadata(t *testing.T) {
	p := Build(gameinfo.Metadata{}, nil)

	assert.Equal(t, "", p.TitleHTML)
	assert.Empty(t, p.Rows)
	assert.Equal(t, float32(0), p.TableHeight(24))
}

func TestTableHeightFitsRows(t *testing.T) {
	p := Build(gameinfo.Metadata{gameinfo.KeyGenre: "A", gameinfo.KeyIFID: "B", gameinfo.KeyVersion: "3"}, nil)
	assert.Equal(t, float32(72), p.TableHeight(24))
}
