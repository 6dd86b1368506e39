package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beltic/credcheck/internal/domain"
)

type fakeCommits struct {
	hash string
	err  error
}

func (f fakeCommits) CommitHash(string) (string, error) { return f.hash, f.err }

func twoSuiteConfig() domain.Config {
	return domain.Config{
		MaxViolations: domain.DefaultMaxViolations,
		Suites: []domain.SweepSpec{
			{Label: "Agent", Schema: "schemas/agent.schema.json", Pattern: "examples/agent/*.json"},
			{Label: "Developer", Schema: "schemas/dev.schema.json", Pattern: "examples/dev/valid-*.json"},
		},
	}
}

func newValidateService(fs afero.Fs, rec domain.Reporter, commits domain.CommitReader) *ValidateService {
	svc := NewValidateService(newSweepService(fs, rec), rec, commits, nil)
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(50 * time.Millisecond)
		return clock
	}
	return svc
}

func TestValidate_SumsSweeps(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"schemas/agent.schema.json": idSchema,
		"schemas/dev.schema.json":   idSchema,
		"examples/agent/a.json":     `{"id":1}`,
		"examples/agent/b.json":     `{"name":"x"}`,
		"examples/dev/valid-1.json": `{"id":"d1"}`,
		"examples/dev/valid-2.json": `{"id":"d2"}`,
	})
	rec := &recorder{}

	summary, err := newValidateService(fs, rec, fakeCommits{hash: "abc1234"}).Run(context.Background(), twoSuiteConfig(), ".")
	require.NoError(t, err)

	assert.Equal(t, domain.Tally{Passed: 3, Failed: 1}, summary.Total)
	assert.True(t, summary.Failed())
	require.Len(t, summary.Sweeps, 2)
	assert.Equal(t, domain.Tally{Passed: 1, Failed: 1}, summary.Sweeps[0].Tally)
	assert.Equal(t, domain.Tally{Passed: 2}, summary.Sweeps[1].Tally)
	assert.Equal(t, "abc1234", summary.Commit)
	assert.Equal(t, 50*time.Millisecond, summary.Duration)

	require.NotNil(t, rec.summary)
	assert.Equal(t, summary.Total, rec.summary.Total)
	assert.Equal(t, "run", rec.events[0])
	assert.Equal(t, "summary", rec.events[len(rec.events)-1])
}

func TestValidate_AllPass(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"schemas/agent.schema.json": idSchema,
		"schemas/dev.schema.json":   idSchema,
		"examples/agent/a.json":     `{"id":1}`,
		"examples/dev/valid-1.json": `{"id":2}`,
	})

	summary, err := newValidateService(fs, nil, nil).Run(context.Background(), twoSuiteConfig(), ".")
	require.NoError(t, err)
	assert.False(t, summary.Failed())
	assert.Equal(t, 2, summary.Total.Passed)
}

func TestValidate_EmptySweepDoesNotFailRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"schemas/agent.schema.json": idSchema,
		"schemas/dev.schema.json":   idSchema,
		"examples/agent/a.json":     `{"id":1}`,
	})

	summary, err := newValidateService(fs, nil, nil).Run(context.Background(), twoSuiteConfig(), ".")
	require.NoError(t, err)
	assert.True(t, summary.Sweeps[1].NoMatches)
	assert.False(t, summary.Failed())
}

func TestValidate_MissingSchemaFailsRunButNotOtherSweeps(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"schemas/dev.schema.json":   idSchema,
		"examples/agent/a.json":     `{"id":1}`,
		"examples/dev/valid-1.json": `{"id":2}`,
	})

	summary, err := newValidateService(fs, nil, nil).Run(context.Background(), twoSuiteConfig(), ".")
	require.NoError(t, err)
	assert.Equal(t, domain.Tally{Passed: 1, Failed: 1}, summary.Total)
	assert.Equal(t, domain.KindSchemaNotFound, summary.Sweeps[0].Err.Kind)
}

func TestValidate_CommitErrorIsIgnored(t *testing.T) {
	fs := afero.NewMemMapFs()

	summary, err := newValidateService(fs, nil, fakeCommits{err: errors.New("not a repo")}).
		Run(context.Background(), domain.Config{}, ".")
	require.NoError(t, err)
	assert.Empty(t, summary.Commit)
}

func TestValidate_InterruptedBeforeStart(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"schemas/agent.schema.json": idSchema,
		"examples/agent/a.json":     `{"id":1}`,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}

	summary, err := newValidateService(fs, rec, nil).Run(ctx, twoSuiteConfig(), ".")
	require.Error(t, err)
	assert.Equal(t, domain.ExitInterrupted, domain.ExitCodeFor(err))
	assert.Empty(t, summary.Sweeps)
	assert.Nil(t, rec.summary, "no summary after an interrupt")
}
