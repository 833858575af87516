package synth

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/agentx-labs/blueprint/internal/blueprint"
)

//go:embed templates
var templateFS embed.FS

var templateCache sync.Map

// templateData holds the values available to every embedded template.
type templateData struct {
	Options     blueprint.Options
	Year        int
	Marker      string
	RecordJSON  string
	NodeVersion string
}

func renderTemplate(name string, data any) ([]byte, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	path := "templates/" + name
	src, err := fs.ReadFile(templateFS, path)
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

func hasTemplate(name string) bool {
	_, err := fs.Stat(templateFS, "templates/"+name)
	return err == nil
}

// marshalJSON renders v as two-space indented JSON with a trailing newline.
// HTML escaping is disabled so globs such as "<rootDir>" survive intact.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
