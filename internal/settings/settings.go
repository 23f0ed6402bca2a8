// Package settings persists the small user-preference record to a
// hidden JSON file in the working directory.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"tubegrab/internal/errs"
	"tubegrab/internal/logging"
	"tubegrab/internal/models"
)

// DefaultFileName is the hidden settings file used when no override
// is given on the command line.
const DefaultFileName = ".tubegrab_settings.json"

const keyLastDirectory = "last_directory"

// Store reads and writes the persisted settings record. Unknown keys
// found in the file are carried through saves untouched.
type Store struct {
	v    *viper.Viper
	path string
}

// NewStore returns a settings store bound to the given file path.
func NewStore(path string) *Store {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	return &Store{v: v, path: path}
}

// Path returns the bound settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved settings. A missing, empty, or unparseable
// file yields the defaults; load never fails the caller.
func (s *Store) Load() models.Settings {
	if err := s.v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.D(1, "Settings not loaded from %q (using defaults): %v",
				s.path, fmt.Errorf("%w: %v", errs.ErrSettingsCorrupt, err))
		}
		return models.Settings{}
	}
	return models.Settings{
		LastDirectory: s.v.GetString(keyLastDirectory),
	}
}

// Save overwrites the settings file with the given record, preserving
// any unknown keys read earlier. The write goes to a temp file first
// so a crash mid-write cannot corrupt the prior value.
func (s *Store) Save(set models.Settings) error {
	s.v.Set(keyLastDirectory, set.LastDirectory)

	data, err := json.MarshalIndent(s.v.AllSettings(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode settings: %v", errs.ErrFilesystem, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write settings file %q: %v", errs.ErrFilesystem, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: failed to replace settings file %q: %v", errs.ErrFilesystem, s.path, err)
	}

	logging.D(2, "Saved settings to %q", s.path)
	return nil
}
