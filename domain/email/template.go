package email

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
)

//go:embed templates
var embeddedTemplates embed.FS

// ContactRequestTemplate is the template contact submissions are rendered
// with by providers that render on our side.
const ContactRequestTemplate = "contact_request"

// TemplateService renders Handlebars email templates from an fs.FS.
//
// Layout of the filesystem:
//   - layouts/*.hbs     wrap rendered content via {{content}}
//   - *.hbs             HTML body
//   - *.txt.hbs         optional plain text body
type TemplateService struct {
	fsys fs.FS
	log  *slog.Logger

	templateCache map[string]*raymond.Template
	layoutCache   map[string]*raymond.Template
	mu            sync.RWMutex
}

// TemplateRenderResult contains the rendered email content
type TemplateRenderResult struct {
	HTML string
	Text string
}

// TemplateContext is the data passed to templates
type TemplateContext map[string]interface{}

// NewTemplateService creates a template service over fsys
func NewTemplateService(fsys fs.FS, log *slog.Logger) *TemplateService {
	return &TemplateService{
		fsys:          fsys,
		log:           log.With(logger.Scope("email.template")),
		templateCache: make(map[string]*raymond.Template),
		layoutCache:   make(map[string]*raymond.Template),
	}
}

// NewEmbeddedTemplateService uses the templates compiled into the binary.
func NewEmbeddedTemplateService(log *slog.Logger) *TemplateService {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return NewTemplateService(sub, log)
}

// NewTemplateServiceFromConfig reads templates from EMAIL_TEMPLATE_DIR when set,
// otherwise from the embedded set.
func NewTemplateServiceFromConfig(cfg *Config, log *slog.Logger) *TemplateService {
	if cfg.TemplateDir != "" {
		if info, err := os.Stat(cfg.TemplateDir); err == nil && info.IsDir() {
			log.Info("using email templates from disk", slog.String("template_dir", cfg.TemplateDir))
			return NewTemplateService(os.DirFS(cfg.TemplateDir), log)
		}
		log.Warn("email template dir not found, falling back to embedded templates",
			slog.String("template_dir", cfg.TemplateDir))
	}
	return NewEmbeddedTemplateService(log)
}

func (ts *TemplateService) load(cache map[string]*raymond.Template, file string) (*raymond.Template, error) {
	ts.mu.RLock()
	tmpl, ok := cache[file]
	ts.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(ts.fsys, file)
	if err != nil {
		return nil, err
	}

	tmpl, err = raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
	}

	ts.mu.Lock()
	cache[file] = tmpl
	ts.mu.Unlock()

	return tmpl, nil
}

// Render renders templateName (and its .txt variant when present) with ctx.
// An empty layoutName renders the template without a wrapper.
func (ts *TemplateService) Render(templateName string, ctx TemplateContext, layoutName string) (*TemplateRenderResult, error) {
	tmpl, err := ts.load(ts.templateCache, templateName+".hbs")
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", templateName)
	}

	html, err := tmpl.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", templateName, err)
	}

	if layoutName != "" {
		layout, err := ts.load(ts.layoutCache, path.Join("layouts", layoutName+".hbs"))
		if err != nil {
			ts.log.Debug("layout not found, using template directly", slog.String("layout", layoutName))
		} else {
			layoutCtx := make(TemplateContext, len(ctx)+1)
			for k, v := range ctx {
				layoutCtx[k] = v
			}
			layoutCtx["content"] = raymond.SafeString(html)

			html, err = layout.Exec(layoutCtx)
			if err != nil {
				return nil, fmt.Errorf("failed to render layout %s: %w", layoutName, err)
			}
		}
	}

	text := ""
	if txt, err := ts.load(ts.templateCache, templateName+".txt.hbs"); err == nil {
		if text, err = txt.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to render text template %s: %w", templateName, err)
		}
	}

	return &TemplateRenderResult{HTML: html, Text: strings.TrimSpace(text)}, nil
}

// HasTemplate checks if a template exists
func (ts *TemplateService) HasTemplate(name string) bool {
	_, err := fs.Stat(ts.fsys, name+".hbs")
	return err == nil
}

// ListTemplates returns the names of all HTML templates
func (ts *TemplateService) ListTemplates() []string {
	entries, err := fs.ReadDir(ts.fsys, ".")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".hbs") || strings.HasSuffix(name, ".txt.hbs") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".hbs"))
	}
	return names
}
