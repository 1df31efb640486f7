package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	m := NewManager()
	m.Viper().Set("base_dir", dir)

	s, err := m.Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := Defaults()
	want.BaseDir = dir
	if !reflect.DeepEqual(s, want) {
		t.Errorf("Load() = %+v; want %+v", s, want)
	}
	if m.ConfigFile() != "" {
		t.Errorf("ConfigFile() = %q; want none", m.ConfigFile())
	}
}

func TestLoadConfigFileInBaseDir(t *testing.T) {
	dir := t.TempDir()
	conf := "themes_dir: out\nstrict: true\ntheme:\n  label: Custom Icons\n"
	if err := os.WriteFile(filepath.Join(dir, "accents.yaml"), []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	m.Viper().Set("base_dir", dir)
	s, err := m.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.ThemesDir != "out" || !s.Strict || s.Theme.Label != "Custom Icons" {
		t.Errorf("Load() = %+v", s)
	}
	if s.Theme.ID != "material-theme-icons" {
		t.Errorf("Theme.ID = %q; want default kept", s.Theme.ID)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ACCENTS_MANIFEST", "ext/package.json")
	t.Setenv("ACCENTS_THEME_FILE_PREFIX", "Icons")

	m := NewManager()
	m.Viper().Set("base_dir", dir)
	s, err := m.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Manifest != "ext/package.json" {
		t.Errorf("Manifest = %q", s.Manifest)
	}
	if s.Theme.FilePrefix != "Icons" {
		t.Errorf("Theme.FilePrefix = %q", s.Theme.FilePrefix)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	m := NewManager()
	m.Viper().Set("base_dir", t.TempDir())
	if _, err := m.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	s := Defaults()
	s.Palette = ""
	s.Theme.ID = " "
	err := s.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "palette, theme.id") {
		t.Errorf("err = %v", err)
	}
}

func TestPaths(t *testing.T) {
	s := Defaults()
	s.BaseDir = "/work"
	if got := s.Path("package.json"); got != filepath.Join("/work", "package.json") {
		t.Errorf("Path = %q", got)
	}
	if got := s.Path("/abs/p.json"); got != "/abs/p.json" {
		t.Errorf("Path(abs) = %q", got)
	}
	if got := s.ManifestPath("Material-Theme-Icons-Ocean Blue.json"); got != "./themes/Material-Theme-Icons-Ocean Blue.json" {
		t.Errorf("ManifestPath = %q", got)
	}
}
