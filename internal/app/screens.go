package app

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"tubegrab/internal/domain/consts"
	"tubegrab/internal/files"
	"tubegrab/internal/logging"
	"tubegrab/internal/models"
)

func (m *Menu) printBanner() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, consts.ColorCyan+"========================================"+consts.ColorReset)
	fmt.Fprintln(m.out, consts.ColorCyan+"          TubeGrab Downloader"+consts.ColorReset)
	fmt.Fprintln(m.out, consts.ColorCyan+"========================================"+consts.ColorReset)
}

// printVideoInfo renders the fetched metadata block shown before the
// download confirmation.
func (m *Menu) printVideoInfo(meta *models.VideoMetadata) {
	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "Title:    %s\n", meta.Title)
	if meta.Uploader != "" {
		fmt.Fprintf(m.out, "Uploader: %s\n", meta.Uploader)
	}
	if !meta.UploadDate.IsZero() {
		fmt.Fprintf(m.out, "Uploaded: %s\n", meta.UploadDate.Format("2006-01-02"))
	}
	if meta.DurationSeconds > 0 {
		fmt.Fprintf(m.out, "Duration: %s\n", formatDuration(meta.DurationSeconds))
	}
	if meta.ViewCount > 0 {
		fmt.Fprintf(m.out, "Views:    %s\n", humanize.Comma(meta.ViewCount))
	}
	if meta.LikeCount > 0 {
		fmt.Fprintf(m.out, "Likes:    %s\n", humanize.Comma(meta.LikeCount))
	}
}

// printFormatOptions renders the numbered quality list.
func (m *Menu) printFormatOptions(opts []models.FormatOption) {
	fmt.Fprintln(m.out, "\nAvailable quality options:")
	for i, opt := range opts {
		line := fmt.Sprintf("  %2d) %s", i+1, opt.Label)
		if opt.Kind == models.OptionVideoOnly {
			line += " (video only, audio added automatically)"
		}
		if opt.SizeLabel != "" && opt.SizeLabel != "~" {
			line += fmt.Sprintf("  [%s]", opt.SizeLabel)
		}
		fmt.Fprintln(m.out, line)
	}
}

// listScreen shows the media files in the active destination directory
// and, when the database is available, the most recent history entries.
func (m *Menu) listScreen(ctx context.Context) {
	dir := m.activeDir()
	fmt.Fprintf(m.out, "\nDownloads in %s:\n", dir)

	listed, err := files.List(dir)
	if err != nil {
		fmt.Fprintf(m.out, "%s%v\n", consts.RedError, err)
		m.pause()
		return
	}

	if len(listed) == 0 {
		fmt.Fprintln(m.out, "  (no downloads yet)")
	}
	var total int64
	for _, f := range listed {
		fmt.Fprintf(m.out, "  %-50s %10s  %s\n",
			f.Name, humanize.Bytes(uint64(f.SizeBytes)), f.ModTime.Format("2006-01-02 15:04"))
		total += f.SizeBytes
	}
	if len(listed) > 0 {
		fmt.Fprintf(m.out, "  %d file(s), %s total\n", len(listed), humanize.Bytes(uint64(total)))
	}

	m.printRecentHistory(ctx)
	m.pause()
}

func (m *Menu) printRecentHistory(ctx context.Context) {
	if m.history == nil {
		return
	}
	recs, err := m.history.RecentDownloads(ctx, 5)
	if err != nil {
		logging.D(1, "History unavailable: %v", err)
		return
	}
	if len(recs) == 0 {
		return
	}

	fmt.Fprintln(m.out, "\nRecent download history:")
	for _, r := range recs {
		title := r.Title
		if title == "" {
			title = r.URL
		}
		fmt.Fprintf(m.out, "  [%s] %s  %s\n",
			r.Status, title, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// clearScreen deletes the media files in the active destination
// directory after confirmation. Subdirectories are never touched.
func (m *Menu) clearScreen() {
	dir := m.activeDir()

	listed, err := files.List(dir)
	if err != nil {
		fmt.Fprintf(m.out, "%s%v\n", consts.RedError, err)
		m.pause()
		return
	}
	if len(listed) == 0 {
		fmt.Fprintf(m.out, "\nNo downloads to clear in %s.\n", dir)
		m.pause()
		return
	}

	fmt.Fprintf(m.out, "\nThis will delete %d file(s) from %s.\n", len(listed), dir)
	if !m.confirm("Are you sure?") {
		fmt.Fprintln(m.out, "Clear canceled.")
		m.pause()
		return
	}

	removed, err := files.Clear(dir)
	if err != nil {
		fmt.Fprintf(m.out, "%s%v\n", consts.RedError, err)
	} else {
		fmt.Fprintf(m.out, "%sDeleted %d file(s).\n", consts.GreenSuccess, removed)
	}
	m.pause()
}

// activeDir is the directory list/clear operate on: the last-used
// destination when one is saved, the default otherwise.
func (m *Menu) activeDir() string {
	if last := m.store.Load().LastDirectory; last != "" {
		return last
	}
	return m.defaults
}

func formatDuration(seconds int64) string {
	h := seconds / 3600
	mins := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mins, s)
	}
	return fmt.Sprintf("%d:%02d", mins, s)
}
