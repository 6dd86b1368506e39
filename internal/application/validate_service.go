package application

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/beltic/credcheck/internal/domain"
)

// ValidateService runs every configured sweep in order and aggregates the
// tallies into a single run summary.
type ValidateService struct {
	sweeps   *SweepService
	reporter domain.Reporter
	commits  domain.CommitReader
	logger   log.Logger
	now      func() time.Time
}

// NewValidateService creates a ValidateService. commits may be nil when the
// project is not under version control.
func NewValidateService(
	sweeps *SweepService,
	reporter domain.Reporter,
	commits domain.CommitReader,
	logger log.Logger,
) *ValidateService {
	if reporter == nil {
		reporter = domain.NopReporter{}
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &ValidateService{
		sweeps: sweeps, reporter: reporter, commits: commits,
		logger: logger, now: time.Now,
	}
}

// Run validates all suites of cfg. The summary is complete unless the
// returned error wraps domain.ErrInterrupted, in which case nothing more was
// processed after the interruption and no summary was reported.
func (s *ValidateService) Run(ctx context.Context, cfg domain.Config, projectPath string) (domain.RunSummary, error) {
	summary := domain.RunSummary{StartedAt: s.now()}

	// 1. Stamp the commit, best-effort.
	if s.commits != nil {
		if hash, err := s.commits.CommitHash(projectPath); err == nil {
			summary.Commit = hash
		} else {
			level.Debug(s.logger).Log("msg", "no commit hash", "path", projectPath, "err", err)
		}
	}

	s.reporter.RunStarted()

	// 2. Run the sweeps in configuration order.
	for _, spec := range cfg.Suites {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("%w: %w", domain.ErrInterrupted, err)
		}

		res, err := s.sweeps.Run(ctx, spec)
		summary.Sweeps = append(summary.Sweeps, res)
		summary.Total = summary.Total.Add(res.Tally)
		if err != nil {
			return summary, err
		}
	}

	// 3. Report.
	summary.Duration = s.now().Sub(summary.StartedAt)
	level.Debug(s.logger).Log("msg", "run finished", "passed", summary.Total.Passed, "failed", summary.Total.Failed, "duration", summary.Duration)
	s.reporter.RunFinished(summary)

	return summary, nil
}
