package generator

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/huandu/xstrings"
	"github.com/rs/zerolog"

	"github.com/fabkit-dev/fabkit/internal/logger"
)

const templateSuffix = ".tmpl"

//go:embed all:templates
var templatesFS embed.FS

var (
	ErrUnknownGenerator     = errors.New("unknown generator")
	ErrUnsupportedLanguage  = errors.New("unsupported language")
	ErrDestinationNotEmpty  = errors.New("destination folder is not empty")
	ErrDestinationNotFolder = errors.New("destination is not a folder")
)

// templateData is what every template file is rendered with.
type templateData struct {
	Options
	AssetPascal string
	AssetCamel  string
	AssetKebab  string
	Capability  string
}

// TemplateRunner scaffolds projects from the embedded template tree.
type TemplateRunner struct {
	log       *zerolog.Logger
	templates fs.FS
	installer *Installer
	cache     sync.Map
}

// NewTemplateRunner creates a runner over the embedded templates.
func NewTemplateRunner(log *zerolog.Logger, installer *Installer) *TemplateRunner {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates missing: %v", err))
	}
	return NewTemplateRunnerWithFS(log, sub, installer)
}

// NewTemplateRunnerWithFS creates a runner over an arbitrary template tree
// laid out as <capability>/<language>/...
func NewTemplateRunnerWithFS(log *zerolog.Logger, templates fs.FS, installer *Installer) *TemplateRunner {
	return &TemplateRunner{
		log:       log,
		templates: templates,
		installer: installer,
	}
}

// Run scaffolds the project described by opts with the generator named key.
func (r *TemplateRunner) Run(ctx context.Context, key string, opts Options) error {
	langType, err := ParseGeneratorKey(key)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid generator options: %w", err)
	}

	capability := strings.ToLower(string(langType))
	root := path.Join(capability, strings.ToLower(opts.Language))
	if _, err := fs.Stat(r.templates, root); err != nil {
		return fmt.Errorf("%w: %s %s", ErrUnsupportedLanguage, opts.Language, capability)
	}

	if err := prepareDestination(opts.Destination); err != nil {
		return err
	}

	r.log.Debug().
		Str("generator", key).
		Object("options", logger.FieldsWrapper{Fields: opts.Fields()}).
		Msg("Running generator")

	data := newTemplateData(opts, capability)
	if err := r.render(ctx, root, opts.Destination, data); err != nil {
		return err
	}

	if opts.SkipInstall || r.installer == nil {
		r.log.Debug().Msg("Skipping dependency installation")
		return nil
	}
	return r.installer.Install(ctx, opts.Language, opts.Destination)
}

func newTemplateData(opts Options, capability string) templateData {
	return templateData{
		Options:     opts,
		AssetPascal: xstrings.FirstRuneToUpper(opts.Asset),
		AssetCamel:  xstrings.FirstRuneToLower(opts.Asset),
		AssetKebab:  xstrings.ToKebabCase(opts.Asset),
		Capability:  capability,
	}
}

func (r *TemplateRunner) render(ctx context.Context, root, destination string, data templateData) error {
	pathReplacer := strings.NewReplacer(
		"__AssetPascal__", data.AssetPascal,
		"__assetCamel__", data.AssetCamel,
		"__assetKebab__", data.AssetKebab,
		"__name__", data.Name,
	)

	return fs.WalkDir(r.templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		relPath := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		if relPath == "" {
			return nil
		}
		targetRel := pathReplacer.Replace(filepath.FromSlash(relPath))

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(destination, targetRel), 0o755)
		}

		targetRel = strings.TrimSuffix(targetRel, templateSuffix)
		// Private data projects only: files named *.private.tmpl
		if strings.HasSuffix(targetRel, ".private") {
			if !data.Private() {
				return nil
			}
			targetRel = strings.TrimSuffix(targetRel, ".private")
		}

		content, err := r.execute(p, data)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(destination, targetRel)
		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", targetRel, err)
		}
		if err := os.WriteFile(targetPath, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", targetRel, err)
		}

		r.log.Debug().Msgf("Created %s", targetPath)
		return nil
	})
}

func (r *TemplateRunner) execute(name string, data templateData) ([]byte, error) {
	tmpl, err := r.loadTemplate(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *TemplateRunner) loadTemplate(name string) (*template.Template, error) {
	if value, ok := r.cache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(path.Base(name)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(r.templates, name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	r.cache.Store(name, tmpl)
	return tmpl, nil
}

// prepareDestination creates the folder if needed and refuses to write into
// a folder that already has visible content.
func prepareDestination(destination string) error {
	info, err := os.Stat(destination)
	if errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(destination, 0o755)
	}
	if err != nil {
		return fmt.Errorf("failed to inspect destination: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrDestinationNotFolder, destination)
	}

	entries, err := os.ReadDir(destination)
	if err != nil {
		return fmt.Errorf("failed to read destination: %w", err)
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), ".") {
			return fmt.Errorf("%w: %s", ErrDestinationNotEmpty, destination)
		}
	}
	return nil
}
