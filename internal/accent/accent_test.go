package accent

import (
	"path/filepath"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ocean Blue", "Ocean-Blue"},
		{"Bright  Teal", "Bright-Teal"},
		{"Acid\tLime\nGreen", "Acid-Lime-Green"},
		{"Ocean\u00a0Blue", "Ocean-Blue"},
		{"Deep\u2003\u00a0Purple", "Deep-Purple"},
		{"\ufeffAmber", "-Amber"},
		{"Lime", "Lime"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestReplaceNameWithAccent(t *testing.T) {
	tests := []struct {
		name, token, want string
	}{
		{"folder-open.svg", "ocean-blue", "folder-open.accent.ocean-blue.svg"},
		{"../icons/folder-open.svg", "Teal", "../icons/folder-open.accent.Teal.svg"},
		{"a.svg.svg", "x", "a.accent.x.svg.svg"},
		{"folder-open.png", "x", "folder-open.png"},
	}
	for _, tt := range tests {
		if got := ReplaceNameWithAccent(tt.name, tt.token); got != tt.want {
			t.Errorf("ReplaceNameWithAccent(%q, %q) = %q; want %q", tt.name, tt.token, got, tt.want)
		}
	}
}

func TestIDAndLabel(t *testing.T) {
	if got, want := ID("material-theme-icons", "Ocean Blue"), "material-theme-icons-ocean-blue"; got != want {
		t.Errorf("ID = %q; want %q", got, want)
	}
	if got, want := Label("Material Theme Icons", "Ocean Blue"), "Material Theme Icons - Ocean Blue accent"; got != want {
		t.Errorf("Label = %q; want %q", got, want)
	}
	if got, want := ThemeFile("Material-Theme-Icons", "Ocean Blue"), "Material-Theme-Icons-Ocean Blue.json"; got != want {
		t.Errorf("ThemeFile = %q; want %q", got, want)
	}
}

func TestIconPath(t *testing.T) {
	got := IconPath("/work", "themes", "../icons/a.svg")
	if want := filepath.Join("/work", "icons", "a.svg"); got != want {
		t.Errorf("IconPath = %q; want %q", got, want)
	}
}
