// Package checks loads the list of CSS selectors a document is graded against.
package checks

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Devon-White/html-grader/internal/failure"
)

// Load reads the checks file at path and returns its selectors sorted in
// ascending order. Files ending in .yaml or .yml are decoded as YAML, anything
// else as JSON. The top-level value must be a sequence of strings.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failure.New(failure.KindNotFound, "%s does not exist. Exiting.", path)
		}
		return nil, failure.Wrap(failure.KindNotFound, err, "reading checks file %s", path)
	}

	selectors, err := decode(path, data)
	if err != nil {
		return nil, failure.Wrap(failure.KindFormat, err, "parsing checks file %s", path)
	}

	for i, s := range selectors {
		if strings.TrimSpace(s) == "" {
			return nil, failure.New(failure.KindFormat, "parsing checks file %s: entry %d is empty", path, i)
		}
	}

	sort.Strings(selectors)
	return selectors, nil
}

func decode(path string, data []byte) ([]string, error) {
	var selectors []string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &selectors); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &selectors); err != nil {
			return nil, err
		}
	}

	// An empty document decodes to nil without error; treat it as malformed.
	if selectors == nil {
		return nil, errors.New("expected a list of selectors")
	}
	return selectors, nil
}
