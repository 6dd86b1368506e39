package application

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/beltic/credcheck/internal/domain"
)

// withLabel fills in a display label for suites configured without one,
// preferring the schema's title ("AgentCredential" becomes "Agent Credential")
// and falling back to the schema file name.
func withLabel(spec domain.SweepSpec, schemaDoc any) domain.SweepSpec {
	if spec.Label != "" {
		return spec
	}
	if obj, ok := schemaDoc.(map[string]any); ok {
		if title, ok := obj["title"].(string); ok && strings.TrimSpace(title) != "" {
			spec.Label = humanize(title)
			return spec
		}
	}
	spec.Label = schemaStem(spec.Schema)
	return spec
}

func humanize(title string) string {
	var words []string
	for _, w := range camelcase.Split(title) {
		if strings.TrimFunc(w, unicode.IsSpace) == "" {
			continue
		}
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

func schemaStem(path string) string {
	name := filepath.Base(path)
	for _, suffix := range []string{".schema.json", ".json"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
