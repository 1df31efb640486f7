package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"

	"github.com/hoppxi/accents/internal/accent"
)

var (
	ErrInvalid         = errors.New("invalid palette")
	ErrEmpty           = errors.New("palette has no accents")
	ErrInvalidColor    = errors.New("invalid accent color")
	ErrDuplicateAccent = errors.New("duplicate accent")
)

type Accent struct {
	Name string
	// Color is six hex digits, no '#'.
	Color string
}

func (a Accent) Hex() string {
	return "#" + a.Color
}

func (a Accent) RGB() colorful.Color {
	c, _ := colorful.Hex(a.Hex())
	return c
}

// Palette keeps accents in file order.
type Palette struct {
	Accents []Accent
}

// Parse reads a JSON object of accent name to hex color. A document of the form
// {"accents": {...}} is accepted as well.
func Parse(data []byte) (*Palette, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalid)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrInvalid)
	}
	if nested := doc.Get("accents"); nested.IsObject() {
		doc = nested
	}

	p := &Palette{}
	seen := map[string]string{}
	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()

		if value.Type != gjson.String {
			err = fmt.Errorf("%w: %q has %s value %s", ErrInvalidColor, name, value.Type, value.Raw)
			return false
		}
		color, cerr := NormalizeColor(value.String())
		if cerr != nil {
			err = fmt.Errorf("%q: %w", name, cerr)
			return false
		}

		id := strings.ToLower(accent.Sanitize(name))
		if prev, ok := seen[id]; ok {
			err = fmt.Errorf("%w: %q and %q both map to %q", ErrDuplicateAccent, prev, name, id)
			return false
		}
		seen[id] = name

		p.Accents = append(p.Accents, Accent{Name: name, Color: color})
		return true
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NormalizeColor strips an optional '#' and checks for exactly six hex digits.
func NormalizeColor(s string) (string, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if _, err := colorful.Hex("#" + s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return s, nil
}

func (p *Palette) Len() int {
	return len(p.Accents)
}

func (p *Palette) Lookup(name string) (Accent, bool) {
	for _, a := range p.Accents {
		if a.Name == name {
			return a, true
		}
	}
	return Accent{}, false
}

func (p *Palette) Names() []string {
	names := make([]string, len(p.Accents))
	for i, a := range p.Accents {
		names[i] = a.Name
	}
	return names
}
