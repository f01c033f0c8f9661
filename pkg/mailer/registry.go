package mailer

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// baseLayout is the name under which the shared layout is registered.
// Templates opt in with {{template "base" .}} and fill the blocks the
// layout declares.
const baseLayout = "base"

// Registry holds the source of the shared base layout. It is initialized
// exactly once per instance: the first Init caller's directory wins, later
// calls are no-ops, and every caller observes the same stored result. A
// Mailer owns one Registry and is constructed once at startup, so all
// concurrent dispatches share a single initialization.
type Registry struct {
	once sync.Once
	base string
	err  error
}

// Init loads the optional base layout from dir. A missing base file is not
// an error; the layout is simply unavailable to templates. An existing but
// unreadable file is an error, observed by this and every later caller.
func (r *Registry) Init(dir string) error {
	r.once.Do(func() {
		src, err := os.ReadFile(filepath.Join(dir, baseLayout+".html"))
		switch {
		case os.IsNotExist(err):
			// No shared layout configured.
		case err != nil:
			r.err = fmt.Errorf("%w: read base layout: %v", ErrRender, err)
		default:
			r.base = string(src)
		}
	})
	return r.err
}

// Render resolves {dir}/{name}.html and renders it against vars in strict
// mode: a reference to a key absent from vars fails the render instead of
// substituting an empty string. The template source is read and parsed per
// call, never cached, so edits on disk take effect immediately.
func (r *Registry) Render(dir, name string, vars map[string]any) (string, error) {
	if err := r.Init(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+".html")
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	if r.base != "" {
		if _, err := tmpl.New(baseLayout).Parse(r.base); err != nil {
			return "", fmt.Errorf("%w: base layout: %v", ErrRender, err)
		}
	}

	if vars == nil {
		vars = map[string]any{}
	}
	var out strings.Builder
	if err := tmpl.ExecuteTemplate(&out, name, vars); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out.String(), nil
}
