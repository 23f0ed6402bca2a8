package downloads

import (
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"tubegrab/internal/logging"
	"tubegrab/internal/models"
)

const outputTemplate = "%(title)s.%(ext)s"

// buildVideoCommand builds the yt-dlp download command for a request.
// A combined specifier ("a+b") adds a merge instruction so separate
// video and audio streams land in one mp4 container; an audio-only
// request extracts audio instead of producing an empty video track.
func (y *YTDLP) buildVideoCommand(ctx context.Context, req models.DownloadRequest) *exec.Cmd {
	args := make([]string, 0, 24)

	args = append(args,
		"--newline",
		"--progress",
		"--restrict-filenames",
		"--no-playlist",
		"-f", req.FormatSpec,
		"-o", filepath.Join(req.DestDir, outputTemplate),
		"--print", "after_move:filepath",
	)

	if strings.Contains(req.FormatSpec, "+") {
		args = append(args, "--merge-output-format", "mp4")
	}
	if req.AudioOnly {
		args = append(args, "-x")
	}
	if y.CookieFile != "" {
		args = append(args, "--cookies", y.CookieFile)
	}
	if y.Retries > 0 {
		args = append(args, "--retries", strconv.Itoa(y.Retries))
	}

	args = append(args, req.URL)

	cmd := exec.CommandContext(ctx, y.Bin, args...)
	logging.D(1, "Built video download command for URL %q:\n%v", req.URL, cmd.String())
	return cmd
}
