package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/tidwall/sjson"

	"github.com/hoppxi/accents/internal/accent"
)

const (
	FolderOpen      = "_folder_open"
	FolderOpenBuild = "_folder_open_build"
)

// AccentIcons are the icon definitions that get a recolored copy per accent.
var AccentIcons = []string{FolderOpen, FolderOpenBuild}

var ErrMissingIcon = errors.New("missing icon definition")

type IconDefinition struct {
	IconPath      string `json:"iconPath,omitempty"`
	FontCharacter string `json:"fontCharacter,omitempty"`
	FontColor     string `json:"fontColor,omitempty"`
	FontSize      string `json:"fontSize,omitempty"`
	FontID        string `json:"fontId,omitempty"`
}

// Associations maps explorer entries to icon definition keys.
type Associations struct {
	File                    string            `json:"file,omitempty"`
	Folder                  string            `json:"folder,omitempty"`
	FolderExpanded          string            `json:"folderExpanded,omitempty"`
	RootFolder              string            `json:"rootFolder,omitempty"`
	RootFolderExpanded      string            `json:"rootFolderExpanded,omitempty"`
	FolderNames             map[string]string `json:"folderNames,omitempty"`
	FolderNamesExpanded     map[string]string `json:"folderNamesExpanded,omitempty"`
	RootFolderNames         map[string]string `json:"rootFolderNames,omitempty"`
	RootFolderNamesExpanded map[string]string `json:"rootFolderNamesExpanded,omitempty"`
	FileExtensions          map[string]string `json:"fileExtensions,omitempty"`
	FileNames               map[string]string `json:"fileNames,omitempty"`
	LanguageIDs             map[string]string `json:"languageIds,omitempty"`
}

type FontSource struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

type Font struct {
	ID     string       `json:"id"`
	Src    []FontSource `json:"src"`
	Weight string       `json:"weight,omitempty"`
	Style  string       `json:"style,omitempty"`
	Size   string       `json:"size,omitempty"`
}

// Descriptor is a file icon theme document. The typed fields are for reading;
// the source bytes are kept so derived files carry keys the type does not know.
type Descriptor struct {
	raw []byte

	IconDefinitions map[string]IconDefinition `json:"iconDefinitions"`
	Associations
	Light                 *Associations `json:"light,omitempty"`
	HighContrast          *Associations `json:"highContrast,omitempty"`
	Fonts                 []Font        `json:"fonts,omitempty"`
	HidesExplorerArrows   bool          `json:"hidesExplorerArrows,omitempty"`
	ShowLanguageModeIcons *bool         `json:"showLanguageModeIcons,omitempty"`
}

func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	d.raw = append([]byte(nil), data...)
	return &d, nil
}

// Validate checks that every accent icon is defined with a path.
func (d *Descriptor) Validate() error {
	for _, key := range AccentIcons {
		def, ok := d.IconDefinitions[key]
		if !ok || def.IconPath == "" {
			return fmt.Errorf("%w: %s", ErrMissingIcon, key)
		}
	}
	return nil
}

// Marshal returns the source document with the accent icon paths applied.
// A descriptor built in code has no source and is encoded from its fields.
func (d *Descriptor) Marshal() ([]byte, error) {
	if d.raw == nil {
		return json.Marshal(d)
	}
	return d.raw, nil
}

// Clone returns a deep copy of d.
func (d *Descriptor) Clone() *Descriptor {
	c := &Descriptor{
		raw:                 append([]byte(nil), d.raw...),
		IconDefinitions:     maps.Clone(d.IconDefinitions),
		Associations:        d.Associations.clone(),
		HidesExplorerArrows: d.HidesExplorerArrows,
	}
	if d.Light != nil {
		l := d.Light.clone()
		c.Light = &l
	}
	if d.HighContrast != nil {
		h := d.HighContrast.clone()
		c.HighContrast = &h
	}
	if d.Fonts != nil {
		c.Fonts = make([]Font, len(d.Fonts))
		for i, f := range d.Fonts {
			f.Src = append([]FontSource(nil), f.Src...)
			c.Fonts[i] = f
		}
	}
	if d.ShowLanguageModeIcons != nil {
		v := *d.ShowLanguageModeIcons
		c.ShowLanguageModeIcons = &v
	}
	return c
}

func (a Associations) clone() Associations {
	a.FolderNames = maps.Clone(a.FolderNames)
	a.FolderNamesExpanded = maps.Clone(a.FolderNamesExpanded)
	a.RootFolderNames = maps.Clone(a.RootFolderNames)
	a.RootFolderNamesExpanded = maps.Clone(a.RootFolderNamesExpanded)
	a.FileExtensions = maps.Clone(a.FileExtensions)
	a.FileNames = maps.Clone(a.FileNames)
	a.LanguageIDs = maps.Clone(a.LanguageIDs)
	return a
}

// IconRename is one accent icon: where it is read from and where its recolored copy goes.
type IconRename struct {
	Key  string
	From string
	To   string
}

// WithAccent clones d and points the accent icons at their accent-qualified files.
func (d *Descriptor) WithAccent(token string) (*Descriptor, []IconRename, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	c := d.Clone()
	renames := make([]IconRename, 0, len(AccentIcons))
	for _, key := range AccentIcons {
		def := c.IconDefinitions[key]
		to := accent.ReplaceNameWithAccent(def.IconPath, token)
		renames = append(renames, IconRename{Key: key, From: def.IconPath, To: to})
		def.IconPath = to
		c.IconDefinitions[key] = def

		if c.raw != nil {
			raw, err := sjson.SetBytes(c.raw, "iconDefinitions."+key+".iconPath", to)
			if err != nil {
				return nil, nil, fmt.Errorf("set %s: %w", key, err)
			}
			c.raw = raw
		}
	}
	return c, renames, nil
}
