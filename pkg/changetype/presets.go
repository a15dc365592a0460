package changetype

import (
	"fmt"
	"sort"
	"strings"
)

// Preset names.
const (
	PresetConventional   = "conventional"
	PresetKeepAChangelog = "keepachangelog"
)

var conventional = MustNew(
	ChangeType{ID: "feat", Title: "Features", Description: "A new feature"},
	ChangeType{ID: "fix", Title: "Bug Fixes", Description: "A bug fix"},
	ChangeType{ID: "docs", Title: "Documentation", Description: "Documentation only changes"},
	ChangeType{ID: "style", Title: "Styles", Description: "Changes that do not affect the meaning of the code (white-space, formatting, etc)"},
	ChangeType{ID: "refactor", Title: "Code Refactoring", Description: "A code change that neither fixes a bug nor adds a feature"},
	ChangeType{ID: "perf", Title: "Performance Improvements", Description: "A code change that improves performance"},
	ChangeType{ID: "test", Title: "Tests", Description: "Adding missing tests or correcting existing tests"},
	ChangeType{ID: "build", Title: "Builds", Description: "Changes that affect the build system or external dependencies"},
	ChangeType{ID: "ci", Title: "Continuous Integrations", Description: "Changes to CI configuration files and scripts"},
	ChangeType{ID: "chore", Title: "Chores", Description: "Other changes that don't modify src or test files"},
	ChangeType{ID: "revert", Title: "Reverts", Description: "Reverts a previous commit"},
)

var keepAChangelog = MustNew(
	ChangeType{ID: "added", Title: "Added", Description: "New features"},
	ChangeType{ID: "changed", Title: "Changed", Description: "Changes in existing functionality"},
	ChangeType{ID: "deprecated", Title: "Deprecated", Description: "Soon-to-be removed features"},
	ChangeType{ID: "removed", Title: "Removed", Description: "Now removed features"},
	ChangeType{ID: "fixed", Title: "Fixed", Description: "Any bug fixes"},
	ChangeType{ID: "security", Title: "Security", Description: "In case of vulnerabilities"},
)

var presets = map[string]*Catalog{
	PresetConventional:   conventional,
	PresetKeepAChangelog: keepAChangelog,
}

// presetDefaults is the type preselected for each preset.
var presetDefaults = map[string]string{
	PresetConventional:   "feat",
	PresetKeepAChangelog: "fixed",
}

// Preset returns a built-in catalog by name. The empty name selects the
// conventional catalog.
func Preset(name string) (*Catalog, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = PresetConventional
	}
	c, ok := presets[key]
	if !ok {
		return nil, fmt.Errorf("changetype: unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return c, nil
}

// PresetDefault returns the type preselected by a preset, if any.
func PresetDefault(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = PresetConventional
	}
	return presetDefaults[key]
}

// PresetNames lists the built-in presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
