package manifest

import (
	"errors"
	"strings"
	"testing"
)

const pkg = `{
  "name": "vsc-material-theme",
  "version": "1.0.0",
  "contributes": {
    "themes": [{"label": "Material Theme"}],
    "iconThemes": [
      {"id": "old", "label": "Old", "path": "./old.json"},
      {"id": "older", "label": "Older", "path": "./older.json"}
    ]
  },
  "scripts": {"build": "accents generate"}
}`

var base = IconTheme{
	ID:    "material-theme-icons",
	Label: "Material Theme Icons",
	Path:  "./themes/Material-Theme-Icons.json",
}

func TestResetAndAdd(t *testing.T) {
	m, err := Parse([]byte(pkg))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.ResetIconThemes(base); err != nil {
		t.Fatal(err)
	}
	if got := m.IconThemes(); len(got) != 1 || got[0] != base {
		t.Fatalf("IconThemes() = %+v; want only base", got)
	}

	ocean := IconTheme{ID: "material-theme-icons-ocean-blue", Label: "Material Theme Icons - Ocean Blue accent", Path: "./themes/Material-Theme-Icons-Ocean Blue.json"}
	teal := IconTheme{ID: "material-theme-icons-teal", Label: "Material Theme Icons - Teal accent", Path: "./themes/Material-Theme-Icons-Teal.json"}
	for _, e := range []IconTheme{ocean, teal} {
		if err := m.AddIconTheme(e); err != nil {
			t.Fatal(err)
		}
	}

	got := m.IconThemes()
	want := []IconTheme{base, ocean, teal}
	if len(got) != len(want) {
		t.Fatalf("len(IconThemes()) = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IconThemes()[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestResetCreatesContributes(t *testing.T) {
	m, err := Parse([]byte(`{"name":"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.ResetIconThemes(base); err != nil {
		t.Fatal(err)
	}
	if got := m.IconThemes(); len(got) != 1 {
		t.Errorf("IconThemes() = %+v", got)
	}
}

func TestBytesKeepsOtherKeys(t *testing.T) {
	m, err := Parse([]byte(pkg))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.ResetIconThemes(base); err != nil {
		t.Fatal(err)
	}
	out, err := m.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "{\n  \"name\": \"vsc-material-theme\",\n  \"version\": \"1.0.0\",") {
		t.Errorf("unexpected layout:\n%s", s)
	}
	if strings.Index(s, `"contributes"`) > strings.Index(s, `"scripts"`) {
		t.Error("key order changed")
	}
	if strings.Contains(s, `"older"`) {
		t.Error("old icon themes kept")
	}
	if !strings.Contains(s, "\n      {\n        \"id\": \"material-theme-icons\",") {
		t.Errorf("entry not indented with two spaces:\n%s", s)
	}
}

func TestBytesStableTrailingNewline(t *testing.T) {
	for _, tail := range []string{"", "\n", "\n\n", "  \r\n"} {
		m, err := Parse([]byte(pkg + tail))
		if err != nil {
			t.Fatal(err)
		}
		if err := m.ResetIconThemes(base); err != nil {
			t.Fatal(err)
		}
		first, err := m.Bytes()
		if err != nil {
			t.Fatal(err)
		}

		again, err := Parse(first)
		if err != nil {
			t.Fatal(err)
		}
		if err := again.ResetIconThemes(base); err != nil {
			t.Fatal(err)
		}
		second, err := again.Bytes()
		if err != nil {
			t.Fatal(err)
		}

		if string(first) != string(second) {
			t.Errorf("tail %q: output changed on second pass:\n%s\n---\n%s", tail, first, second)
		}
		if !strings.HasSuffix(string(second), "}\n") {
			t.Errorf("tail %q: output ends with %q; want one newline", tail, second[len(second)-3:])
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{`{"name":`, `[]`, ``} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrInvalid) {
			t.Errorf("Parse(%q) err = %v; want ErrInvalid", in, err)
		}
	}
}
