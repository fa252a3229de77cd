// gameinfo/fields.go

// Package gameinfo reads the metadata block embedded with a game (title, author, IFID, ...)
// and exposes it as a plain mapping from canonical field keys to values.
package gameinfo

import (
	"golang.org/x/text/cases"
)

// Key is a canonical, lowercase metadata field name.
type Key string

// Recognised metadata fields. Any other key found in a metadata block is ignored.
const (
	KeyName           Key = "name"
	KeyHeadline       Key = "headline"
	KeyByline         Key = "byline"
	KeyHTMLByline     Key = "htmlbyline"
	KeyAuthorEmail    Key = "authoremail"
	KeyDesc           Key = "desc"
	KeyHTMLDesc       Key = "htmldesc"
	KeyVersion        Key = "version"
	KeyFirstPublished Key = "firstpublished"
	KeyReleaseDate    Key = "releasedate"
	KeyLanguage       Key = "language"
	KeySeries         Key = "series"
	KeySeriesNumber   Key = "seriesnumber"
	KeyGenre          Key = "genre"
	KeyForgiveness    Key = "forgiveness"
	KeyLicenseType    Key = "licensetype"
	KeyCopyingRules   Key = "copyingrules"
	KeyIFID           Key = "ifid"
)

var knownKeys = func() map[Key]struct{} {
	known := make(map[Key]struct{})
	for _, k := range Keys() {
		known[k] = struct{}{}
	}
	return known
}()

// Keys returns every recognised key.
func Keys() []Key {
	return []Key{
		KeyName, KeyHeadline, KeyByline, KeyHTMLByline, KeyAuthorEmail, KeyDesc, KeyHTMLDesc,
		KeyVersion, KeyFirstPublished, KeyReleaseDate, KeyLanguage, KeySeries, KeySeriesNumber,
		KeyGenre, KeyForgiveness, KeyLicenseType, KeyCopyingRules, KeyIFID,
	}
}

// IsRaw reports whether values of the key are trusted markup that must not be escaped.
func (k Key) IsRaw() bool {
	return k == KeyHTMLByline || k == KeyHTMLDesc
}

// Canonical maps a key as written in a metadata block to its recognised form.
// Matching is case-insensitive; ok is false for unrecognised keys.
func Canonical(name string) (Key, bool) {
	// cases.Caser is stateful, so a fresh one is used per call.
	k := Key(cases.Fold().String(name))
	_, ok := knownKeys[k]
	return k, ok
}
