package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const iconThemesPath = "contributes.iconThemes"

var ErrInvalid = errors.New("invalid manifest")

type IconTheme struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Manifest is an extension package.json. Only contributes.iconThemes is edited,
// every other key is carried through untouched and in order.
type Manifest struct {
	raw []byte
}

func Parse(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalid)
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return &Manifest{raw: raw}, nil
}

// ResetIconThemes replaces the icon theme list with the single base entry.
func (m *Manifest) ResetIconThemes(base IconTheme) error {
	out, err := sjson.SetBytes(m.raw, iconThemesPath, []IconTheme{base})
	if err != nil {
		return fmt.Errorf("reset icon themes: %w", err)
	}
	m.raw = out
	return nil
}

func (m *Manifest) AddIconTheme(entry IconTheme) error {
	out, err := sjson.SetBytes(m.raw, iconThemesPath+".-1", entry)
	if err != nil {
		return fmt.Errorf("add icon theme %s: %w", entry.ID, err)
	}
	m.raw = out
	return nil
}

func (m *Manifest) IconThemes() []IconTheme {
	var themes []IconTheme
	gjson.GetBytes(m.raw, iconThemesPath).ForEach(func(_, v gjson.Result) bool {
		themes = append(themes, IconTheme{
			ID:    v.Get("id").String(),
			Label: v.Get("label").String(),
			Path:  v.Get("path").String(),
		})
		return true
	})
	return themes
}

// Bytes returns the document indented with two spaces.
func (m *Manifest) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimRight(m.raw, " \t\r\n"), "", "  "); err != nil {
		return nil, fmt.Errorf("format manifest: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
