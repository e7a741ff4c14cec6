// Package templates holds the communication and contract boilerplate the
// stub handlers interpolate. Templates ship compiled in; when a content
// directory is configured they are loaded from a Loam repository instead,
// so the copy can be edited as plain markdown files with frontmatter.
package templates

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/aretw0/loam"
)

// Meta is the frontmatter of a template document.
type Meta struct {
	ID      string `mapstructure:"id"`
	Kind    string `mapstructure:"kind"`
	Subject string `mapstructure:"subject"`
}

// Library resolves template names to parsed templates.
type Library struct {
	templates map[string]*template.Template
}

// NewDefault builds a library from the compiled-in templates.
func NewDefault() (*Library, error) {
	lib := &Library{templates: make(map[string]*template.Template)}
	for name, body := range defaults {
		if err := lib.add(name, body); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// LoadDir builds a library from markdown documents in dir, with the
// compiled-in templates as fallback for anything the directory does not
// provide. Document IDs (frontmatter "id", or the filename) name the
// templates.
func LoadDir(dir string) (*Library, error) {
	lib, err := NewDefault()
	if err != nil {
		return nil, err
	}

	repo, err := loam.Init(dir, loam.WithReadOnly(true))
	if err != nil {
		return nil, fmt.Errorf("initializing template repository: %w", err)
	}
	typed := loam.NewTypedRepository[Meta](repo)

	ctx := context.Background()
	docs, err := typed.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	for _, doc := range docs {
		name := doc.Data.ID
		if name == "" {
			name = strings.TrimSuffix(doc.ID, ".md")
		}
		if err := lib.add(name, doc.Content); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func (l *Library) add(name, body string) error {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("parsing template %q: %w", name, err)
	}
	l.templates[name] = tmpl
	return nil
}

// Names returns the registered template names.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	return names
}

// Render executes the named template. An unknown name is a configuration
// error: callers dispatch through an enumeration validated at startup.
func (l *Library) Render(name string, data any) (string, error) {
	tmpl, ok := l.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not registered", name)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering template %q: %w", name, err)
	}
	return sb.String(), nil
}

// Has reports whether the named template is registered.
func (l *Library) Has(name string) bool {
	_, ok := l.templates[name]
	return ok
}
