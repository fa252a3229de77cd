// gameinfo/metadata.go

package gameinfo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Metadata maps recognised fields to their values. A missing key means the game did not
// supply that field.
type Metadata map[Key]string

// Pair is one raw key/value entry as found in a metadata block.
type Pair struct {
	Name  string
	Value []byte
}

// Get returns the value of key, or "" when the field is absent.
func (m Metadata) Get(key Key) string {
	return m[key]
}

// Has reports whether the game supplied key, possibly with an empty value.
func (m Metadata) Has(key Key) bool {
	_, ok := m[key]
	return ok
}

// Collect folds raw pairs into Metadata. Unknown keys are dropped; when a key repeats,
// the later value wins.
func Collect(pairs []Pair) Metadata {
	meta := make(Metadata, len(pairs))
	for _, p := range pairs {
		key, ok := Canonical(p.Name)
		if !ok {
			continue
		}
		meta[key] = string(bytes.ToValidUTF8(p.Value, []byte("\uFFFD")))
	}
	return meta
}

// Parse reads a GameInfo text block:
//
//	Name: The Example
//	Desc: A long description that
//	  continues on an indented line.
//
// Lines starting with whitespace continue the previous value. Blank lines and lines
// without a colon are skipped.
func Parse(r io.Reader) (Metadata, error) {
	pairs, err := scanPairs(r)
	if err != nil {
		return nil, err
	}
	return Collect(pairs), nil
}

func scanPairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if len(pairs) == 0 {
				continue
			}
			last := &pairs[len(pairs)-1]
			cont := strings.TrimSpace(line)
			if len(last.Value) > 0 {
				last.Value = append(last.Value, ' ')
			}
			last.Value = append(last.Value, cont...)
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{
			Name:  strings.TrimSpace(name),
			Value: []byte(strings.TrimSpace(value)),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gameinfo: reading metadata block: %w", err)
	}
	return pairs, nil
}
