package skill

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DocumentFilename is the canonical file name for a skill document.
const DocumentFilename = "SKILL.md"

// Discover returns the paths of all skill documents under dir, one per
// skill subdirectory, in stable sorted order.
func Discover(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*", DocumentFilename)
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("discover skills in %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Names returns the skill names for the documents under dir, in the
// same order as Discover.
func Names(dir string) ([]string, error) {
	paths, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(filepath.Dir(p)))
	}
	return names, nil
}
