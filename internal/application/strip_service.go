package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/beltic/credcheck/internal/domain"
)

// DefaultStripPattern selects the developer test fixtures.
const DefaultStripPattern = "examples/developer/v1/tests/*.json"

// StripService removes top-level "$comment" annotations from JSON files while
// keeping the order of the remaining keys.
type StripService struct {
	fs     afero.Fs
	logger log.Logger
}

func NewStripService(fs afero.Fs, logger log.Logger) *StripService {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &StripService{fs: fs, logger: logger}
}

// Strip processes every file matching pattern. Per-file failures are recorded
// in the report and do not stop the pass.
func (s *StripService) Strip(pattern string, dryRun bool) (*domain.StripReport, error) {
	matches, err := glob(s.fs, pattern)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", pattern, err)
	}
	sort.Strings(matches)

	report := &domain.StripReport{Pattern: pattern, DryRun: dryRun}
	for _, path := range matches {
		res := domain.StripResult{Path: path}
		removed, err := s.stripFile(path, dryRun)
		switch {
		case err != nil:
			res.Err = err.Error()
			report.Errors++
			level.Warn(s.logger).Log("msg", "could not strip comment", "file", path, "err", err)
		case removed:
			res.Removed = true
			report.Removed++
		}
		report.Files = append(report.Files, res)
	}
	return report, nil
}

func (s *StripService) stripFile(path string, dryRun bool) (bool, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return false, err
	}

	doc := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, doc); err != nil {
		return false, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, ok := doc.Delete(domain.CommentKey); !ok {
		return false, nil
	}
	if dryRun {
		return true, nil
	}

	out, err := encode(doc)
	if err != nil {
		return false, err
	}

	info, err := s.fs.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode().Perm()
	}
	if err := afero.WriteFile(s.fs, path, out, mode); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// encode writes doc with two-space indentation and a trailing newline.
func encode(doc *orderedmap.OrderedMap[string, json.RawMessage]) ([]byte, error) {
	compact, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, unescapeHTML(compact), "", "  "); err != nil {
		return nil, fmt.Errorf("indenting JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// unescapeHTML undoes encoding/json's HTML-safe escaping so that values are
// written back the way they were authored.
func unescapeHTML(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] == 'u' && i+6 <= len(b) {
			switch string(b[i+2 : i+6]) {
			case "003c":
				out = append(out, '<')
				i += 5
				continue
			case "003e":
				out = append(out, '>')
				i += 5
				continue
			case "0026":
				out = append(out, '&')
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}
