// presenter/presenter.go

// Package presenter turns game metadata and cover art into a toolkit-independent
// presentation record: a block of title markup plus ordered label/value rows.
package presenter

import (
	"html"
	"image"
	"strings"

	"TadsPlayer/gameinfo"
)

// CoverArtSource is the image reference used for the cover art inside TitleHTML.
const CoverArtSource = "CoverArt"

// Row is one line of the details table.
type Row struct {
	Field gameinfo.Key
	Label string // English default; UI layers may localise by Field
	Value string
}

// Presentation is everything a game information panel displays.
type Presentation struct {
	TitleHTML string
	Rows      []Row
	Cover     image.Image
}

// HasCover reports whether the presentation carries cover art.
func (p Presentation) HasCover() bool {
	return p.Cover != nil
}

// TableHeight returns the height of a table showing exactly the rows.
func (p Presentation) TableHeight(rowHeight float32) float32 {
	return float32(len(p.Rows)) * rowHeight
}

type detailField struct {
	key   gameinfo.Key
	label string
}

// detailFields is the fixed display order of the details table.
var detailFields = []detailField{
	{gameinfo.KeyGenre, "Genre"},
	{gameinfo.KeyVersion, "Version"},
	{gameinfo.KeyForgiveness, "Forgiveness"},
	{gameinfo.KeySeries, "Series"},
	{gameinfo.KeySeriesNumber, "Series Number"},
	{gameinfo.KeyReleaseDate, "Date"},
	{gameinfo.KeyFirstPublished, "First Published"},
	{gameinfo.KeyAuthorEmail, "Author email"},
	{gameinfo.KeyLanguage, "Language"},
	{gameinfo.KeyLicenseType, "License Type"},
	{gameinfo.KeyCopyingRules, "Copying Rules"},
	{gameinfo.KeyIFID, "IFID"},
}

// Build composes the presentation of meta. cover may be nil.
func Build(meta gameinfo.Metadata, cover image.Image) Presentation {
	return Presentation{
		TitleHTML: TitleHTML(meta, cover != nil),
		Rows:      Rows(meta),
		Cover:     cover,
	}
}

// TitleHTML renders the title block: cover, name, headline, byline and description.
// Name, headline and byline are wrapped whenever the key is supplied, even with an
// empty value. The html* variants are trusted markup and win over the plain ones,
// which are escaped.
func TitleHTML(meta gameinfo.Metadata, withCover bool) string {
	var b strings.Builder

	if withCover {
		b.WriteString(`<center><img src="` + CoverArtSource + `"></center><p>`)
	}
	if meta.Has(gameinfo.KeyName) {
		b.WriteString(`<b><center><font size="+1">` + markup(meta, gameinfo.KeyName) + `</font></center></b><p>`)
	}
	if meta.Has(gameinfo.KeyHeadline) {
		b.WriteString(`<center>` + markup(meta, gameinfo.KeyHeadline) + `</center><p>`)
	}
	if key, ok := bylineKey(meta); ok {
		b.WriteString(`<i><center>` + markup(meta, key) + `</center></i><p>`)
	}
	b.WriteString(description(meta))

	return b.String()
}

// bylineKey picks the byline variant to show. A supplied htmlbyline wins even when empty.
func bylineKey(meta gameinfo.Metadata) (gameinfo.Key, bool) {
	switch {
	case meta.Has(gameinfo.KeyHTMLByline):
		return gameinfo.KeyHTMLByline, true
	case meta.Has(gameinfo.KeyByline):
		return gameinfo.KeyByline, true
	}
	return "", false
}

func description(meta gameinfo.Metadata) string {
	if meta.Get(gameinfo.KeyHTMLDesc) != "" {
		return markup(meta, gameinfo.KeyHTMLDesc)
	}
	// Plain descriptions mark paragraph breaks with a literal backslash-n.
	return strings.ReplaceAll(markup(meta, gameinfo.KeyDesc), `\n`, "<p>")
}

// markup returns the value of key ready for the title block: raw keys pass through,
// everything else is escaped.
func markup(meta gameinfo.Metadata, key gameinfo.Key) string {
	if key.IsRaw() {
		return meta.Get(key)
	}
	return escape(meta.Get(key))
}

// Rows returns one row per non-empty detail field, in display order.
func Rows(meta gameinfo.Metadata) []Row {
	var rows []Row
	for _, f := range detailFields {
		if v := meta.Get(f.key); v != "" {
			rows = append(rows, Row{Field: f.key, Label: f.label, Value: v})
		}
	}
	return rows
}

// escape makes plain text safe inside markup. Single quotes are left alone.
func escape(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "&#39;", "'")
}
