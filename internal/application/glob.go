package application

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// glob expands pattern on fs. Hidden entries (a path element starting with
// ".") are left out unless the matching pattern element starts with "." too,
// so "examples/*.json" skips "._a.json" while "examples/.*.json" keeps it.
func glob(fs afero.Fs, pattern string) ([]string, error) {
	matches, err := afero.Glob(fs, pattern)
	if err != nil {
		return nil, err
	}
	visible := matches[:0]
	for _, m := range matches {
		if !hidden(pattern, m) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

func hidden(pattern, match string) bool {
	pe := strings.Split(filepath.ToSlash(pattern), "/")
	me := strings.Split(filepath.ToSlash(match), "/")
	if len(pe) != len(me) {
		return isDotName(filepath.Base(match)) && !isDotName(filepath.Base(pattern))
	}
	for i := range me {
		if isDotName(me[i]) && !isDotName(pe[i]) {
			return true
		}
	}
	return false
}

// isDotName reports whether name is hidden. "." and ".." are path navigation.
func isDotName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
