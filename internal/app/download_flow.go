package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"tubegrab/internal/domain/consts"
	"tubegrab/internal/downloads"
	"tubegrab/internal/errs"
	"tubegrab/internal/logging"
	"tubegrab/internal/models"
)

// downloadScreen walks one download session: URL, metadata, format,
// destination, transfer. Any failure reports and returns to the menu.
func (m *Menu) downloadScreen(ctx context.Context) {
	rawURL, ok := m.prompt("\nEnter YouTube URL (blank to cancel): ")
	if !ok || strings.TrimSpace(rawURL) == "" {
		return
	}
	rawURL = strings.TrimSpace(rawURL)

	if err := downloads.ValidateURL(rawURL); err != nil {
		m.reportError(err)
		m.pause()
		return
	}

	fmt.Fprintln(m.out, "Fetching video information...")
	meta, err := m.ext.FetchMetadata(ctx, rawURL)
	if err != nil {
		m.reportError(err)
		m.pause()
		return
	}

	m.printVideoInfo(meta)
	if !m.confirm("\nDownload this video?") {
		fmt.Fprintln(m.out, "Download canceled.")
		return
	}

	opts := downloads.BuildFormatOptions(meta.Formats)
	m.printFormatOptions(opts)
	choice, ok := m.chooseFormat(opts)
	if !ok {
		return
	}

	destDir, ok := m.chooseDestination()
	if !ok {
		return
	}

	spec, audioOnly := downloads.ResolveFormatSpec(choice, meta.Formats)
	req := models.DownloadRequest{
		URL:        rawURL,
		FormatSpec: spec,
		DestDir:    destDir,
		AudioOnly:  audioOnly,
	}

	fmt.Fprintf(m.out, "\nDownloading to %s ...\n", destDir)
	res, err := m.ext.Download(ctx, req, m.renderProgress)
	fmt.Fprintln(m.out)

	m.recordHistory(ctx, meta.Title, req, res, err)

	if err != nil {
		m.reportError(err)
		m.pause()
		return
	}

	fmt.Fprintf(m.out, "%sSaved %s (%s)\n",
		consts.GreenSuccess, res.Path, humanize.Bytes(uint64(res.SizeBytes)))
	m.pause()
}

// chooseFormat re-prompts until the input maps to a listed option.
func (m *Menu) chooseFormat(opts []models.FormatOption) (models.FormatOption, bool) {
	for {
		input, ok := m.prompt(fmt.Sprintf("Choose a format (1-%d): ", len(opts)))
		if !ok {
			return models.FormatOption{}, false
		}
		choice, err := downloads.ChooseFormat(opts, input)
		if err != nil {
			fmt.Fprintf(m.out, "%s%v\n", consts.RedError, err)
			continue
		}
		return choice, true
	}
}

// chooseDestination picks the save location: the default directory, the
// remembered last-used one, or a custom path which becomes the new
// last-used value. A remembered directory that no longer exists falls
// back to the default with a warning.
func (m *Menu) chooseDestination() (string, bool) {
	saved := m.store.Load()

	fmt.Fprintln(m.out, "\nSave location:")
	fmt.Fprintf(m.out, "  1) Default: %s\n", m.defaults)
	if saved.LastDirectory != "" {
		fmt.Fprintf(m.out, "  2) Last used: %s\n", saved.LastDirectory)
	}
	fmt.Fprintln(m.out, "  3) Custom path")

	input, ok := m.prompt("Select (Enter for default): ")
	if !ok {
		return "", false
	}

	switch strings.TrimSpace(input) {
	case "", "1":
		return m.defaults, true
	case "2":
		if saved.LastDirectory == "" {
			fmt.Fprintf(m.out, "%sNo last-used directory saved, using default.\n", consts.YellowWarn)
			return m.defaults, true
		}
		if _, err := os.Stat(saved.LastDirectory); err != nil {
			fmt.Fprintf(m.out, "%sLast-used directory %q is unavailable, using default.\n",
				consts.YellowWarn, saved.LastDirectory)
			return m.defaults, true
		}
		return saved.LastDirectory, true
	case "3":
		return m.customDestination(saved)
	}
	fmt.Fprintf(m.out, "%sInvalid selection, using default.\n", consts.YellowWarn)
	return m.defaults, true
}

func (m *Menu) customDestination(saved models.Settings) (string, bool) {
	path, ok := m.prompt("Enter directory path: ")
	if !ok {
		return "", false
	}
	path = strings.TrimSpace(path)
	if path == "" {
		fmt.Fprintf(m.out, "%sEmpty path, using default.\n", consts.YellowWarn)
		return m.defaults, true
	}

	if _, err := os.Stat(path); err != nil {
		if !m.confirm(fmt.Sprintf("Directory %q does not exist. Create it?", path)) {
			return m.defaults, true
		}
	}

	saved.LastDirectory = path
	if err := m.store.Save(saved); err != nil {
		// A failed save never blocks the download itself.
		fmt.Fprintf(m.out, "%sCould not remember this directory: %v\n", consts.YellowWarn, err)
	}
	return path, true
}

// renderProgress redraws the percentage in place.
func (m *Menu) renderProgress(u models.StatusUpdate) {
	fmt.Fprintf(m.out, "\r[%s] %5.1f%%", u.Stage, u.Percent)
}

// recordHistory appends the session outcome to the download history.
// Best effort: a missing database or failed insert only logs.
func (m *Menu) recordHistory(ctx context.Context, title string, req models.DownloadRequest, res *models.DownloadResult, dlErr error) {
	if m.history == nil {
		return
	}

	rec := &models.DownloadRecord{
		URL:        req.URL,
		Title:      title,
		FormatSpec: req.FormatSpec,
		Status:     consts.DLStatusCompleted,
	}
	if dlErr != nil {
		rec.Status = consts.DLStatusFailed
	} else if res != nil {
		rec.Path = res.Path
		rec.SizeBytes = res.SizeBytes
	}

	if _, err := m.history.InsertDownload(ctx, rec); err != nil {
		logging.D(1, "Failed to record download history: %v", err)
	}
}

// reportError prints a one-line diagnosis plus a next step the user can
// actually take.
func (m *Menu) reportError(err error) {
	fmt.Fprintf(m.out, "%s%v\n", consts.RedError, err)

	switch {
	case errors.Is(err, errs.ErrInvalidURL):
		fmt.Fprintln(m.out, "Enter a youtube.com or youtu.be video link.")
	case errors.Is(err, errs.ErrToolMissing):
		fmt.Fprintln(m.out, "Install yt-dlp and make sure it is on your PATH.")
	case errors.Is(err, errs.ErrMuxerMissing):
		fmt.Fprintln(m.out, "Install ffmpeg to merge video and audio streams.")
	case errors.Is(err, errs.ErrNetwork):
		fmt.Fprintln(m.out, "Check your internet connection and try again.")
	case errors.Is(err, errs.ErrExtraction):
		fmt.Fprintln(m.out, "The video may be private, removed, or region-locked.")
	case errors.Is(err, errs.ErrFilesystem):
		fmt.Fprintln(m.out, "Check the destination directory permissions and free space.")
	}
}
