package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/3-lines-studio/toolpages/internal/adapters/cli"
	"github.com/3-lines-studio/toolpages/internal/config"
	"github.com/3-lines-studio/toolpages/internal/core"
	"github.com/3-lines-studio/toolpages/internal/page"
)

var (
	ErrSourceDir         = errors.New("cannot read widget directory")
	ErrWritePage         = errors.New("cannot write page")
	ErrTemplate          = errors.New("cannot load page template")
	ErrSlugCollision     = errors.New("slug collision")
	ErrInvalidIdentifier = errors.New("invalid widget identifier")
)

type GenerateInput struct {
	Config config.Config
	DryRun bool
}

type GenerateOutput struct {
	Pages    []core.PageArtifact
	Manifest *core.Manifest
}

type GenerateService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewGenerateService(fs FileSystem, cli CLIOutput) *GenerateService {
	return &GenerateService{
		fs:  fs,
		cli: cli,
	}
}

// GeneratePages writes one page per widget source file. The first error stops
// the run; pages written before it stay on disk.
func (s *GenerateService) GeneratePages(ctx context.Context, input GenerateInput) (GenerateOutput, error) {
	cfg := input.Config
	s.cli.PrintHeader("Tool Pages")

	if err := cfg.Validate(); err != nil {
		return GenerateOutput{}, err
	}

	renderer, err := s.loadRenderer(ctx, cfg.Template)
	if err != nil {
		return GenerateOutput{}, err
	}

	names, err := s.fs.ReadDir(ctx, cfg.SourceDir)
	if err != nil {
		return GenerateOutput{}, fmt.Errorf("%w %s: %w", ErrSourceDir, cfg.SourceDir, err)
	}

	widgets := core.WidgetsFromFiles(names, cfg.WidgetSuffix, core.NewNamer(cfg.Naming))
	slog.Debug("widgets discovered", "dir", cfg.SourceDir, "files", len(names), "widgets", len(widgets))
	s.cli.PrintStep("Found %d widget(s) in %s", len(widgets), cfg.SourceDir)

	if err := checkWidgets(widgets, cfg.Strict); err != nil {
		return GenerateOutput{}, err
	}

	layoutImport, err := core.ImportPathWithExt(cfg.PagesDir, cfg.LayoutPath)
	if err != nil {
		return GenerateOutput{}, fmt.Errorf("%w: layout %s: %w", ErrWritePage, cfg.LayoutPath, err)
	}

	if !input.DryRun {
		if err := s.fs.MkdirAll(ctx, cfg.PagesDir); err != nil {
			return GenerateOutput{}, fmt.Errorf("%w %s: %w", ErrWritePage, cfg.PagesDir, err)
		}
	}

	report := cli.NewGenerateReport(cfg.PagesDir, input.DryRun)
	pages := make([]core.PageArtifact, 0, len(widgets))

	for _, w := range widgets {
		artifact, err := s.renderPage(renderer, cfg, layoutImport, w)
		if err != nil {
			return GenerateOutput{}, err
		}

		if !input.DryRun {
			if err := s.fs.WriteFile(ctx, artifact.Path, artifact.Content); err != nil {
				return GenerateOutput{}, fmt.Errorf("%w %s: %w", ErrWritePage, artifact.Path, err)
			}
		}

		pages = append(pages, artifact)
		report.AddPage(artifact.Path)
		s.cli.PrintSuccess("Generated %s", artifact.Path)
	}

	output := GenerateOutput{Pages: pages}

	if cfg.Manifest != "" {
		manifest, err := s.writeManifest(ctx, cfg.Manifest, pages, input.DryRun)
		if err != nil {
			return GenerateOutput{}, err
		}
		output.Manifest = manifest
	}

	s.cli.PrintDone("%s", report.Summary())
	return output, nil
}

func (s *GenerateService) loadRenderer(ctx context.Context, templatePath string) (*page.Renderer, error) {
	if templatePath == "" {
		return page.NewRenderer(), nil
	}

	source, err := s.fs.ReadFile(ctx, templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTemplate, templatePath, err)
	}

	renderer, err := page.ParseRenderer(path.Base(templatePath), string(source))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return renderer, nil
}

func (s *GenerateService) renderPage(renderer *page.Renderer, cfg config.Config, layoutImport string, w core.Widget) (core.PageArtifact, error) {
	widgetImport, err := core.ImportPath(cfg.PagesDir, path.Join(cfg.SourceDir, w.File))
	if err != nil {
		return core.PageArtifact{}, fmt.Errorf("%w %s: %w", ErrWritePage, w.Identifier, err)
	}

	content, err := renderer.Render(page.Data{
		Identifier:      w.Identifier,
		Title:           w.Title,
		Slug:            w.Slug,
		WidgetImport:    widgetImport,
		LayoutImport:    layoutImport,
		ClientDirective: cfg.ClientDirective,
	})
	if err != nil {
		return core.PageArtifact{}, fmt.Errorf("widget %s: %w", w.Identifier, err)
	}

	return core.PageArtifact{
		Widget:  w,
		Path:    core.PagePath(cfg.PagesDir, w.Slug, cfg.PageSuffix),
		Content: content,
	}, nil
}

func (s *GenerateService) writeManifest(ctx context.Context, manifestPath string, pages []core.PageArtifact, dryRun bool) (*core.Manifest, error) {
	manifest := core.NewManifest(pages)
	if dryRun {
		return manifest, nil
	}

	data, err := manifest.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode route manifest: %w", err)
	}

	if dir := path.Dir(manifestPath); dir != "." {
		if err := s.fs.MkdirAll(ctx, dir); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrWritePage, dir, err)
		}
	}

	if err := s.fs.WriteFile(ctx, manifestPath, data); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWritePage, manifestPath, err)
	}

	s.cli.PrintSuccess("Wrote route manifest %s", manifestPath)
	return manifest, nil
}

// checkWidgets only fails in strict mode. Otherwise collisions are left to
// resolve themselves: the widget written last owns the page.
func checkWidgets(widgets []core.Widget, strict bool) error {
	collisions := core.FindCollisions(widgets)
	for _, c := range collisions {
		slog.Debug("slug shared by several widgets", "slug", c.Slug, "widgets", identifiers(c.Widgets))
	}

	if !strict {
		return nil
	}

	for _, w := range widgets {
		if !core.IsIdentifier(w.Identifier) {
			return fmt.Errorf("%w %q: use letters and digits only", ErrInvalidIdentifier, w.Identifier)
		}
		if !core.ValidSlug(w.Slug) {
			return fmt.Errorf("%w %q: slug %q is not valid", ErrInvalidIdentifier, w.Identifier, w.Slug)
		}
	}

	if len(collisions) > 0 {
		c := collisions[0]
		return fmt.Errorf("%w: %s all map to %q", ErrSlugCollision, strings.Join(identifiers(c.Widgets), ", "), c.Slug)
	}
	return nil
}

func identifiers(widgets []core.Widget) []string {
	ids := make([]string, 0, len(widgets))
	for _, w := range widgets {
		ids = append(ids, w.Identifier)
	}
	return ids
}
