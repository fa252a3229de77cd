package gameinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Warning(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestCanonicalIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"IFID", "ifid", "IfId"} {
		key, ok := Canonical(name)
		require.True(t, ok, name)
		assert.Equal(t, KeyIFID, key)
	}

	_, ok := Canonical("Coolness")
	assert.False(t, ok)
}

func TestKeysAreAllRecognised(t *testing.T) {
	for _, k := range Keys() {
		got, ok := Canonical(strings.ToUpper(string(k)))
		assert.True(t, ok, k)
		assert.Equal(t, k, got)
	}
	assert.Len(t, Keys(), len(knownKeys))
}

func TestCollect(t *testing.T) {
	meta := Collect([]Pair{
		{Name: "Name", Value: []byte("Foo")},
		{Name: "IfId", Value: []byte("ABC-123")},
		{Name: "Unknown", Value: []byte("ignored")},
		{Name: "NAME", Value: []byte("Bar")},
		{Name: "Genre", Value: []byte{'Z', 0xff, 'Z'}},
	})

	assert.Equal(t, "Bar", meta.Get(KeyName))
	assert.Equal(t, "ABC-123", meta.Get(KeyIFID))
	assert.Equal(t, "Z\uFFFDZ", meta.Get(KeyGenre))
	assert.Len(t, meta, 3)
	assert.False(t, meta.Has(KeyHeadline))
	assert.Equal(t, "", meta.Get(KeyHeadline))
}

func TestCollectKeepsSuppliedEmptyValues(t *testing.T) {
	meta := Collect([]Pair{{Name: "Headline", Value: nil}})

	assert.True(t, meta.Has(KeyHeadline))
	assert.Equal(t, "", meta.Get(KeyHeadline))
	assert.False(t, meta.Has(KeyName))
}

func TestParse(t *testing.T) {
	block := "\uFEFFName: The Example\r\n" +
		"Headline: An Interactive Example\n" +
		"\n" +
		"Desc: First line\n" +
		"   continued here\n" +
		"\tand here.\n" +
		"no colon on this line\n" +
		"Coolness: 11\n" +
		"HtmlByline: by <a href=\"mailto:me@example.org\">Me</a>\n"

	meta, err := Parse(strings.NewReader(block))
	require.NoError(t, err)

	assert.Equal(t, Metadata{
		KeyName:       "The Example",
		KeyHeadline:   "An Interactive Example",
		KeyDesc:       "First line continued here and here.",
		KeyHTMLByline: `by <a href="mailto:me@example.org">Me</a>`,
	}, meta)
}

func TestParseIgnoresLeadingContinuation(t *testing.T) {
	meta, err := Parse(strings.NewReader("  orphan\nName: X\n"))
	require.NoError(t, err)
	assert.Equal(t, Metadata{KeyName: "X"}, meta)
}

func TestKeyIsRaw(t *testing.T) {
	assert.True(t, KeyHTMLByline.IsRaw())
	assert.True(t, KeyHTMLDesc.IsRaw())
	assert.False(t, KeyByline.IsRaw())
	assert.False(t, KeyDesc.IsRaw())
}

func TestReaderHasMetaInfo(t *testing.T) {
	withInfo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(withInfo, ResourceName), []byte("Name: Foo\n"), 0644))
	without := t.TempDir()

	r := NewReader(nil, nil)
	assert.True(t, r.HasMetaInfo(filepath.Join(withInfo, "game.t3")))
	assert.False(t, r.HasMetaInfo(filepath.Join(without, "game.t3")))
}

func TestReaderHasMetaInfoNeedsReadableBlock(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ResourceName), nil, 0644))
	gamePath := filepath.Join(dir, "game.t3")

	log := &recordingLogger{}
	r := NewReader(nil, log)
	assert.False(t, r.HasMetaInfo(gamePath))
	assert.Empty(t, log.lines)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ResourceName), []byte("Name: Foo\n"), 0644))
	assert.True(t, r.HasMetaInfo(gamePath))
}

func TestReaderReadFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ResourceName), []byte("name: Foo\nIFID: 1234\n"), 0644))

	meta, ok := NewReader(nil, nil).ReadFromFile(filepath.Join(dir, "game.t3"))
	require.True(t, ok)
	assert.Equal(t, "Foo", meta.Get(KeyName))
	assert.Equal(t, "1234", meta.Get(KeyIFID))
}

func TestReaderMissingBlockYieldsEmptyMetadata(t *testing.T) {
	meta, ok := NewReader(nil, nil).ReadFromFile(filepath.Join(t.TempDir(), "game.t3"))
	assert.False(t, ok)
	assert.NotNil(t, meta)
	assert.Empty(t, meta)
}

func TestReaderEmptyBlockIsLoggedNotFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ResourceName), nil, 0644))

	log := &recordingLogger{}
	meta, ok := NewReader(nil, log).ReadFromFile(filepath.Join(dir, "game.t3"))
	assert.False(t, ok)
	assert.Empty(t, meta)
	require.Len(t, log.lines, 1)
	assert.Contains(t, log.lines[0], "Could not read metadata")
}
