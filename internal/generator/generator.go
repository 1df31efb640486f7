package generator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/hoppxi/accents/internal/accent"
	"github.com/hoppxi/accents/internal/manifest"
	"github.com/hoppxi/accents/internal/palette"
	"github.com/hoppxi/accents/internal/settings"
	"github.com/hoppxi/accents/internal/svgcolor"
	"github.com/hoppxi/accents/internal/theme"
	"github.com/hoppxi/accents/internal/ui"
	"github.com/hoppxi/accents/internal/utils"
)

type Generator struct {
	cfg   settings.Settings
	files *utils.TextFS
	log   *ui.Logger
}

func New(cfg settings.Settings, fsys afero.Fs, log *ui.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	files, err := utils.NewTextFS(fsys, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = ui.Discard()
	}
	return &Generator{cfg: cfg, files: files, log: log}, nil
}

// DryRunFs layers an in-memory overlay on base so nothing reaches the disk.
func DryRunFs(base afero.Fs) afero.Fs {
	return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs())
}

// Inputs are the documents read during setup.
type Inputs struct {
	Theme    *theme.Descriptor
	Palette  *palette.Palette
	Manifest *manifest.Manifest
}

type AccentOutput struct {
	Accent palette.Accent
	Theme  string
	Icons  []string
	// Misses lists written icons whose fill could not be found.
	Misses []string
	Entry  manifest.IconTheme
}

type Report struct {
	RunID    string
	Accents  []AccentOutput
	Manifest string
}

func (r *Report) Misses() []string {
	var out []string
	for _, a := range r.Accents {
		out = append(out, a.Misses...)
	}
	return out
}

func (g *Generator) Load() (*Inputs, error) {
	data, err := g.files.ReadFile(g.cfg.Path(g.cfg.BaseTheme))
	if err != nil {
		return nil, fmt.Errorf("read base theme: %w", err)
	}
	desc, err := theme.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	data, err = g.files.ReadFile(g.cfg.Path(g.cfg.Palette))
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	pal, err := palette.Parse(data)
	if err != nil {
		return nil, err
	}

	data, err = g.files.ReadFile(g.cfg.Path(g.cfg.Manifest))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	man, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}

	return &Inputs{Theme: desc, Palette: pal, Manifest: man}, nil
}

// Sources lists the files a run reads from.
func (g *Generator) Sources(in *Inputs) []string {
	paths := []string{g.cfg.Path(g.cfg.BaseTheme), g.cfg.Path(g.cfg.Palette)}
	for _, key := range theme.AccentIcons {
		paths = append(paths, accent.IconPath(g.cfg.BaseDir, g.cfg.IconsDir, in.Theme.IconDefinitions[key].IconPath))
	}
	return paths
}

// BaseEntry is the manifest entry of the theme without accent.
func (g *Generator) BaseEntry() manifest.IconTheme {
	t := g.cfg.Theme
	return manifest.IconTheme{
		ID:    t.ID,
		Label: t.Label,
		Path:  g.cfg.ManifestPath(t.FilePrefix + ".json"),
	}
}

func (g *Generator) Entry(name string) manifest.IconTheme {
	t := g.cfg.Theme
	return manifest.IconTheme{
		ID:    accent.ID(t.ID, name),
		Label: accent.Label(t.Label, name),
		Path:  g.cfg.ManifestPath(accent.ThemeFile(t.FilePrefix, name)),
	}
}

// Run generates every accent and rewrites the manifest. The manifest is only
// written once all accents succeeded.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	in, err := g.Load()
	if err != nil {
		return nil, err
	}
	if err := in.Manifest.ResetIconThemes(g.BaseEntry()); err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.NewString()}
	if in.Palette.Len() == 0 {
		g.log.Warn("%v, only the base theme is registered", palette.ErrEmpty)
	}
	g.log.Info("generating %d accents (run %s)", in.Palette.Len(), report.RunID)

	for _, a := range in.Palette.Accents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := g.generateAccent(in.Theme, a)
		if err != nil {
			return nil, fmt.Errorf("accent %q: %w", a.Name, err)
		}
		if err := in.Manifest.AddIconTheme(out.Entry); err != nil {
			return nil, err
		}
		report.Accents = append(report.Accents, *out)
	}

	data, err := in.Manifest.Bytes()
	if err != nil {
		return nil, err
	}
	report.Manifest = g.cfg.Path(g.cfg.Manifest)
	if err := g.files.WriteFile(report.Manifest, data); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	g.log.Step("manifest", g.rel(report.Manifest))

	return report, nil
}

func (g *Generator) generateAccent(base *theme.Descriptor, a palette.Accent) (*AccentOutput, error) {
	token := accent.Sanitize(a.Name)

	derived, renames, err := base.WithAccent(token)
	if err != nil {
		return nil, err
	}

	out := &AccentOutput{Accent: a, Entry: g.Entry(a.Name)}
	for _, r := range renames {
		dst := accent.IconPath(g.cfg.BaseDir, g.cfg.IconsDir, r.To)
		matched, err := g.writeIcon(r.From, r.To, a.Color)
		if err != nil {
			return nil, err
		}
		if !matched {
			g.log.Warn("no fill color in %s, copied unchanged", g.rel(dst))
			out.Misses = append(out.Misses, dst)
		}
		out.Icons = append(out.Icons, dst)
	}

	data, err := derived.Marshal()
	if err != nil {
		return nil, err
	}
	out.Theme = filepath.Join(g.cfg.Path(g.cfg.ThemesDir), accent.ThemeFile(g.cfg.Theme.FilePrefix, a.Name))
	if err := g.files.WriteFile(out.Theme, data); err != nil {
		return nil, fmt.Errorf("write theme: %w", err)
	}
	g.log.Step(a.Name, g.rel(out.Theme))

	return out, nil
}

// writeIcon copies the icon at from to to with its fill set to color.
func (g *Generator) writeIcon(from, to, color string) (bool, error) {
	src := accent.IconPath(g.cfg.BaseDir, g.cfg.IconsDir, from)
	dst := accent.IconPath(g.cfg.BaseDir, g.cfg.IconsDir, to)

	data, err := g.files.ReadFile(src)
	if err != nil {
		return false, fmt.Errorf("read icon: %w", err)
	}

	res := svgcolor.Recolor(string(data), color)
	if !res.Matched && g.cfg.Strict {
		return false, fmt.Errorf("%s: %w", src, svgcolor.ErrNoFill)
	}

	if err := g.files.WriteFile(dst, []byte(res.Content)); err != nil {
		return false, fmt.Errorf("write icon: %w", err)
	}
	return res.Matched, nil
}

// Check validates every input without writing. All problems found are returned together.
func (g *Generator) Check() (*Inputs, error) {
	in, err := g.Load()
	if err != nil {
		return nil, err
	}

	var errs []error
	if in.Palette.Len() == 0 {
		errs = append(errs, palette.ErrEmpty)
	}
	for _, key := range theme.AccentIcons {
		frag := in.Theme.IconDefinitions[key].IconPath
		if accent.ReplaceNameWithAccent(frag, "x") == frag {
			errs = append(errs, fmt.Errorf("%s: %s is not an .svg file", key, frag))
		}

		src := accent.IconPath(g.cfg.BaseDir, g.cfg.IconsDir, frag)
		data, err := g.files.ReadFile(src)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		if !svgcolor.HasFill(string(data)) {
			errs = append(errs, fmt.Errorf("%s: %s: %w", key, g.rel(src), svgcolor.ErrNoFill))
		}
	}
	return in, errors.Join(errs...)
}

func (g *Generator) rel(p string) string {
	if r, err := filepath.Rel(g.cfg.BaseDir, p); err == nil {
		return r
	}
	return p
}
