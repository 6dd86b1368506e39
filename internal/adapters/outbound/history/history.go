package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/beltic/credcheck/internal/domain"
)

// File is where runs are recorded, relative to the project root.
const File = ".credcheck/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage.
type FileHistory struct {
	fs afero.Fs
}

func New(fs afero.Fs) *FileHistory {
	return &FileHistory{fs: fs}
}

func (h *FileHistory) Save(entry domain.RunEntry) error {
	entries, err := h.Load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	if err := h.fs.MkdirAll(filepath.Dir(File), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return afero.WriteFile(h.fs, File, data, 0o644)
}

func (h *FileHistory) Load() ([]domain.RunEntry, error) {
	data, err := afero.ReadFile(h.fs, File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
