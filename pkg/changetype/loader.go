package changetype

import (
	"encoding/json"
	"fmt"
	"html"
	"io/fs"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

type catalogFile struct {
	Types []ChangeType `json:"types" yaml:"types"`
}

// Parse reads a catalog document. Both a bare list of types and an object
// with a "types" key are accepted, as JSON or YAML.
func Parse(data []byte, source string) (*Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("changetype: file %s is empty", source)
	}

	types, err := decodeTypes(data)
	if err != nil {
		return nil, fmt.Errorf("changetype: parse %s: %w", source, err)
	}
	c, err := FromList(types)
	if err != nil {
		return nil, fmt.Errorf("changetype: %s: %w", source, err)
	}
	return c, nil
}

// LoadFS reads and parses a catalog file from fsys.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("changetype: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// FromList builds a catalog from externally supplied entries. Titles and
// descriptions are stripped of markup and surrounding whitespace before use.
func FromList(types []ChangeType) (*Catalog, error) {
	cleaned := make([]ChangeType, 0, len(types))
	for _, t := range types {
		cleaned = append(cleaned, ChangeType{
			ID:          strings.TrimSpace(t.ID),
			Title:       sanitizeText(t.Title),
			Description: sanitizeText(t.Description),
		})
	}
	return New(cleaned...)
}

func decodeTypes(data []byte) ([]ChangeType, error) {
	var doc catalogFile
	if err := json.Unmarshal(data, &doc); err == nil && len(doc.Types) > 0 {
		return doc.Types, nil
	}
	var list []ChangeType
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Types) > 0 {
		return doc.Types, nil
	}
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	return nil, fmt.Errorf("invalid JSON or YAML")
}

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	// StrictPolicy escapes entities; catalog text is shown in a terminal.
	return strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(trimmed)))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
