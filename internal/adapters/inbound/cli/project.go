package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/beltic/credcheck/internal/adapters/outbound/config"
	"github.com/beltic/credcheck/internal/adapters/outbound/engine"
	"github.com/beltic/credcheck/internal/adapters/outbound/logging"
	"github.com/beltic/credcheck/internal/application"
	"github.com/beltic/credcheck/internal/domain"
)

// project is the resolved root every command works against. All file access
// goes through fs, which is rooted there.
type project struct {
	root   string
	fs     afero.Fs
	logger log.Logger
}

func openProject(cmd *cobra.Command, opts *rootOptions) (*project, error) {
	root, err := filepath.Abs(opts.path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("opening project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", opts.path)
	}

	return &project{
		root:   root,
		fs:     afero.NewBasePathFs(afero.NewOsFs(), root),
		logger: logging.New(cmd.ErrOrStderr(), opts.verbose),
	}, nil
}

// configFile returns the absolute config location. An explicit --config must exist.
func (p *project) configFile(opts *rootOptions) (string, error) {
	if opts.configPath == "" {
		return filepath.Join(p.root, domain.ConfigFileName), nil
	}
	abs, err := filepath.Abs(opts.configPath)
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("reading config: %w", err)
	}
	return abs, nil
}

func (p *project) loadConfig(cmd *cobra.Command, opts *rootOptions) (domain.Config, error) {
	path, err := p.configFile(opts)
	if err != nil {
		return domain.Config{}, err
	}
	cfg, err := config.New(afero.NewOsFs()).Load(path)
	if err != nil {
		return domain.Config{}, err
	}
	if f := cmd.Flags().Lookup("max-violations"); f != nil && f.Changed {
		cfg.MaxViolations = opts.maxViolations
	}
	return cfg, nil
}

// rel turns a path given on the command line into one relative to the root.
func (p *project) rel(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	r, err := filepath.Rel(p.root, abs)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the project root %s", path, p.root)
	}
	return r, nil
}

func (p *project) sweeps(rep domain.Reporter) *application.SweepService {
	return application.NewSweepService(p.fs, engine.New(p.fs), rep, p.logger)
}
