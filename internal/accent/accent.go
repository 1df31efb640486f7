package accent

import (
	"path/filepath"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)

// IconPath resolves an icon path from a theme descriptor against the icons root.
func IconPath(baseDir, iconsDir, fragment string) string {
	return filepath.Join(baseDir, iconsDir, fragment)
}

// Sanitize turns every run of whitespace in an accent name into a single hyphen.
func Sanitize(name string) string {
	return whitespace.ReplaceAllString(name, "-")
}

// ReplaceNameWithAccent inserts ".accent.<token>" before the first ".svg" of name.
// Names without ".svg" come back unchanged.
func ReplaceNameWithAccent(name, token string) string {
	return strings.Replace(name, ".svg", ".accent."+token+".svg", 1)
}

// ID builds the manifest id for an accent, e.g. "material-theme-icons-ocean-blue".
func ID(prefix, name string) string {
	return strings.ToLower(prefix + "-" + Sanitize(name))
}

func Label(prefix, name string) string {
	return prefix + " - " + name + " accent"
}

// ThemeFile is the file name of the derived theme. The raw accent name is kept,
// spaces included, to match the paths already published in manifests.
func ThemeFile(prefix, name string) string {
	return prefix + "-" + name + ".json"
}
