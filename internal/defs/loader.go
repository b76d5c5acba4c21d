// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// LoadClassDefinitions reads an enemy class configuration file and overrides
// the built-in ClassLibrary entries. Classes absent from the file keep their
// compiled-in values, so the game runs fine with no definition files at all.
func LoadClassDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read class definitions file: %w", err)
	}

	var classDefs []ClassDefinition
	if err := json.Unmarshal(file, &classDefs); err != nil {
		return fmt.Errorf("failed to unmarshal class definitions: %w", err)
	}

	for _, def := range classDefs {
		ClassLibrary[def.ID] = def
	}

	logrus.WithField("count", len(classDefs)).Info("loaded enemy class definitions")
	return nil
}
