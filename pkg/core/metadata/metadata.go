// Package metadata defines the module-metadata record later compiler
// stages attach to a compilation unit, and its JSON codec. The lexer does
// not produce this record — it is specified here only because it travels
// alongside token output once a surrounding pipeline exists.
package metadata

import (
	"encoding/json"
	"fmt"
)

// Module describes a single compilation unit.
type Module struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	PkgPath string `json:"pkgPath"`
	UsesFFI bool   `json:"usesFFI"`
}

// wireModule mirrors Module's JSON shape but makes every field a pointer,
// so Unmarshal can tell "field present with zero value" apart from "field
// absent" — required to reject objects missing any of the four keys.
type wireModule struct {
	Name    *string `json:"name"`
	Path    *string `json:"path"`
	PkgPath *string `json:"pkgPath"`
	UsesFFI *bool   `json:"usesFFI"`
}

// UnmarshalJSON decodes the canonical four-key object, rejecting any JSON
// object missing name, path, pkgPath, or usesFFI.
func (m *Module) UnmarshalJSON(data []byte) error {
	var w wireModule
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var missing []string
	if w.Name == nil {
		missing = append(missing, "name")
	}
	if w.Path == nil {
		missing = append(missing, "path")
	}
	if w.PkgPath == nil {
		missing = append(missing, "pkgPath")
	}
	if w.UsesFFI == nil {
		missing = append(missing, "usesFFI")
	}
	if len(missing) > 0 {
		return fmt.Errorf("metadata: missing field(s) %v", missing)
	}

	m.Name = *w.Name
	m.Path = *w.Path
	m.PkgPath = *w.PkgPath
	m.UsesFFI = *w.UsesFFI
	return nil
}
