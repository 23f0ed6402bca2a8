// Package setup initializes the program's file and directory locations.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	progDirName     = ".tubegrab"
	dbFileName      = "tubegrab.db"
	logFileName     = "tubegrab.log"
	cookieFileName  = "cookies.txt"
	downloadsSubdir = "TubeGrab"
)

// Main program file/dir locations, set by InitProgFilesDirs.
var (
	ProgDir        string
	DBFilePath     string
	LogFilePath    string
	CookieFilePath string
)

// InitProgFilesDirs creates the program data directory and sets the
// file path variables. Must run before logging or database setup.
func InitProgFilesDirs() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate user home directory: %w", err)
	}

	ProgDir = filepath.Join(home, progDirName)
	if err := os.MkdirAll(ProgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create program directory %q: %w", ProgDir, err)
	}

	DBFilePath = filepath.Join(ProgDir, dbFileName)
	LogFilePath = filepath.Join(ProgDir, logFileName)
	CookieFilePath = filepath.Join(ProgDir, cookieFileName)
	return nil
}

// DefaultDownloadDir returns the default destination directory: the
// user's Downloads folder plus a fixed subfolder.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "downloads", downloadsSubdir)
	}
	return filepath.Join(home, "Downloads", downloadsSubdir)
}
