package mcp_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/beltic/credcheck/internal/adapters/inbound/mcp"
	"github.com/beltic/credcheck/internal/adapters/outbound/config"
	"github.com/beltic/credcheck/internal/domain"
)

func newServerOptions() mcpadapter.Options {
	fs := afero.NewMemMapFs()
	return mcpadapter.Options{
		FS:         fs,
		Config:     config.New(fs),
		ConfigPath: domain.ConfigFileName,
	}
}

func TestNewCredcheckMCPServer(t *testing.T) {
	s := mcpadapter.NewCredcheckMCPServer(newServerOptions())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewCredcheckMCPServer(newServerOptions())

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"credcheck_validate",
		"credcheck_validate_file",
		"credcheck_strip_comments",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
