package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/joestump/devguide/web"
)

const (
	themeLight = "devguide-light"
	themeDark  = "devguide-dark"
)

// BasePage carries layout-level data available to every template.
type BasePage struct {
	Theme string // themeLight, themeDark, or "" when the inline script decides
	Title string
}

// themeFromRequest returns the theme cookie when it names a known theme.
func themeFromRequest(r *http.Request) string {
	c, err := r.Cookie("theme")
	if err != nil {
		return ""
	}
	switch c.Value {
	case themeLight, themeDark:
		return c.Value
	}
	return ""
}

// templateSet holds one parsed tree per wizard page plus a partials-only tree
// for HTMX fragments. Every page defines "content", so pages cannot share a tree.
type templateSet struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

func loadTemplates(fsys fs.FS) (*templateSet, error) {
	partials, err := fs.Glob(fsys, "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	pages, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	set := &templateSet{pages: make(map[string]*template.Template, len(pages))}
	if set.fragments, err = template.ParseFS(fsys, partials...); err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}
	for _, page := range pages {
		files := append([]string{"templates/base.html", page}, partials...)
		t, err := template.ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		set.pages[path.Base(page)] = t
	}
	return set, nil
}

var views = mustLoadTemplates()

func mustLoadTemplates() *templateSet {
	set, err := loadTemplates(web.TemplateFS)
	if err != nil {
		panic("load templates: " + err.Error())
	}
	return set
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// render writes a full page: base.html wrapping the named page.
func render(w http.ResponseWriter, page string, data any) {
	t, ok := views.pages[page]
	if !ok {
		http.Error(w, "unknown page "+page, http.StatusInternalServerError)
		return
	}
	write(w, http.StatusOK, t, "base", data)
}

func renderFragment(w http.ResponseWriter, name string, data any) {
	renderFragmentStatus(w, http.StatusOK, name, data)
}

// renderFragmentStatus is renderFragment with an explicit status code.
func renderFragmentStatus(w http.ResponseWriter, status int, name string, data any) {
	write(w, status, views.fragments, name, data)
}

// write executes into a buffer first so a template error can still become a 500.
func write(w http.ResponseWriter, status int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "template error: "+strings.TrimPrefix(err.Error(), "html/template: "), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
