package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/hoppxi/accents/config"
)

const (
	ConfigName = "accents"
	EnvPrefix  = "ACCENTS"
)

type Theme struct {
	ID         string `mapstructure:"id" yaml:"id"`
	Label      string `mapstructure:"label" yaml:"label"`
	FilePrefix string `mapstructure:"file_prefix" yaml:"file_prefix"`
}

type Settings struct {
	BaseDir   string `mapstructure:"base_dir" yaml:"base_dir,omitempty"`
	ThemesDir string `mapstructure:"themes_dir" yaml:"themes_dir"`
	IconsDir  string `mapstructure:"icons_dir" yaml:"icons_dir"`
	BaseTheme string `mapstructure:"base_theme" yaml:"base_theme"`
	Palette   string `mapstructure:"palette" yaml:"palette"`
	Manifest  string `mapstructure:"manifest" yaml:"manifest"`
	Encoding  string `mapstructure:"encoding" yaml:"encoding"`
	Strict    bool   `mapstructure:"strict" yaml:"strict"`
	Theme     Theme  `mapstructure:"theme" yaml:"theme"`
}

func Defaults() Settings {
	return Settings{
		ThemesDir: "themes",
		IconsDir:  "themes",
		BaseTheme: "themes/Material-Theme-Icons.json",
		Palette:   "src/accents.json",
		Manifest:  "package.json",
		Encoding:  "utf-8",
		Theme: Theme{
			ID:         "material-theme-icons",
			Label:      "Material Theme Icons",
			FilePrefix: "Material-Theme-Icons",
		},
	}
}

// Path resolves p against the base directory unless it is absolute.
func (s Settings) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.BaseDir, p)
}

// ManifestPath is the ./-prefixed path used in package.json entries.
func (s Settings) ManifestPath(file string) string {
	return "./" + filepath.ToSlash(filepath.Join(s.ThemesDir, file))
}

func (s Settings) Validate() error {
	var missing []string
	for name, val := range map[string]string{
		"themes_dir":        s.ThemesDir,
		"icons_dir":         s.IconsDir,
		"base_theme":        s.BaseTheme,
		"palette":           s.Palette,
		"manifest":          s.Manifest,
		"encoding":          s.Encoding,
		"theme.id":          s.Theme.ID,
		"theme.label":       s.Theme.Label,
		"theme.file_prefix": s.Theme.FilePrefix,
	} {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("empty settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Manager owns the viper instance shared by the commands.
type Manager struct {
	v *viper.Viper
}

var Config = NewManager()

func NewManager() *Manager {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Manager{v: v}
}

func (m *Manager) Viper() *viper.Viper {
	return m.v
}

// Load layers the embedded defaults, the config file, env and bound flags.
// file may be empty, then accents.yaml is looked up in the base directory and may be absent.
func (m *Manager) Load(file string) (Settings, error) {
	v := m.v
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(config.DefaultConfig())); err != nil {
		return Settings{}, fmt.Errorf("read default config: %w", err)
	}

	baseDir := v.GetString("base_dir")
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Settings{}, err
		}
		baseDir = wd
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(baseDir)
	}

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if s.BaseDir == "" {
		s.BaseDir = baseDir
	}
	abs, err := filepath.Abs(s.BaseDir)
	if err != nil {
		return Settings{}, err
	}
	s.BaseDir = abs

	return s, s.Validate()
}

// ConfigFile is the file merged by the last Load, empty if none was found.
func (m *Manager) ConfigFile() string {
	return m.v.ConfigFileUsed()
}
