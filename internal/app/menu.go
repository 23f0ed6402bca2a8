// Package app runs the interactive menu loop.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"tubegrab/internal/domain/consts"
	"tubegrab/internal/downloads"
	"tubegrab/internal/logging"
	"tubegrab/internal/repo"
	"tubegrab/internal/settings"
)

// menuState is the screen the loop is currently on.
type menuState int

const (
	stateMenu menuState = iota
	stateDownloading
	stateListing
	stateClearing
	stateExit
)

// Menu drives the interactive session. Every screen returns to the
// main menu when it finishes; only the exit choice (or end of input)
// leaves the loop.
type Menu struct {
	in       *bufio.Reader
	out      io.Writer
	ext      downloads.Extractor
	store    *settings.Store
	history  *repo.DownloadStore // nil when the database is unavailable
	defaults string              // default destination directory
}

// NewMenu wires the menu loop to its collaborators.
func NewMenu(in io.Reader, out io.Writer, ext downloads.Extractor, store *settings.Store, history *repo.DownloadStore, defaultDir string) *Menu {
	return &Menu{
		in:       bufio.NewReader(in),
		out:      out,
		ext:      ext,
		store:    store,
		history:  history,
		defaults: defaultDir,
	}
}

// Run loops until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	state := stateMenu
	for state != stateExit {
		if ctx.Err() != nil {
			fmt.Fprintln(m.out, "\nInterrupted, exiting.")
			return nil
		}

		switch state {
		case stateMenu:
			state = m.menuScreen()
		case stateDownloading:
			m.downloadScreen(ctx)
			state = stateMenu
		case stateListing:
			m.listScreen(ctx)
			state = stateMenu
		case stateClearing:
			m.clearScreen()
			state = stateMenu
		}
	}
	fmt.Fprintln(m.out, "Goodbye!")
	return nil
}

// menuScreen shows the main menu and maps the choice to the next state.
func (m *Menu) menuScreen() menuState {
	m.printBanner()
	fmt.Fprintln(m.out, "  1) Download a video")
	fmt.Fprintln(m.out, "  2) List downloaded files")
	fmt.Fprintln(m.out, "  3) Clear downloaded files")
	fmt.Fprintln(m.out, "  4) Exit")

	choice, ok := m.prompt("Select an option: ")
	if !ok {
		return stateExit
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return stateDownloading
	case "2":
		return stateListing
	case "3":
		return stateClearing
	case "4":
		return stateExit
	}
	fmt.Fprintf(m.out, "%sInvalid option %q, please choose 1-4.\n", consts.RedError, strings.TrimSpace(choice))
	return stateMenu
}

// prompt prints the prompt and reads one line. ok is false when input
// has ended, which the caller treats as a request to exit.
func (m *Menu) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(m.out, msg)
	text, err := m.in.ReadString('\n')
	if err != nil && text == "" {
		logging.D(2, "Input ended: %v", err)
		return "", false
	}
	return strings.TrimRight(text, "\r\n"), true
}

// confirm asks a yes/no question. Only an explicit "y"/"yes" counts.
func (m *Menu) confirm(msg string) bool {
	answer, ok := m.prompt(msg + " (y/n): ")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// pause waits for Enter so screen output is readable before the menu
// redraws.
func (m *Menu) pause() {
	_, _ = m.prompt("\nPress Enter to continue...")
}
