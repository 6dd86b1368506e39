package application

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/beltic/credcheck/internal/adapters/outbound/engine"
	"github.com/beltic/credcheck/internal/domain"
)

const idSchema = `{"type":"object","required":["id"]}`

// recorder captures reporter events in order.
type recorder struct {
	events  []string
	files   []domain.FileResult
	sweeps  []domain.SweepResult
	summary *domain.RunSummary
}

func (r *recorder) RunStarted() { r.events = append(r.events, "run") }
func (r *recorder) SweepStarted(s domain.SweepSpec) { r.events = append(r.events, "sweep:"+s.Label) }
func (r *recorder) FilesFound(_ domain.SweepSpec, _ int) {
	r.events = append(r.events, "found")
}
func (r *recorder) FileStarted(_ domain.SweepSpec, path string) {
	r.events = append(r.events, "start:"+filepath.Base(path))
}
func (r *recorder) FileChecked(_ domain.SweepSpec, fr domain.FileResult) {
	r.events = append(r.events, "file:"+fr.Name())
	r.files = append(r.files, fr)
}
func (r *recorder) SweepFinished(res domain.SweepResult) {
	r.events = append(r.events, "done:"+res.Spec.Label)
	r.sweeps = append(r.sweeps, res)
}
func (r *recorder) RunFinished(s domain.RunSummary) {
	r.events = append(r.events, "summary")
	r.summary = &s
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

func newSweepService(fs afero.Fs, rep domain.Reporter) *SweepService {
	return NewSweepService(fs, engine.New(fs), rep, nil)
}
