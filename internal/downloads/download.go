package downloads

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"tubegrab/internal/domain/consts"
	"tubegrab/internal/errs"
	"tubegrab/internal/files"
	"tubegrab/internal/logging"
	"tubegrab/internal/models"
)

var progressRx = regexp.MustCompile(`^\[download\]\s+([0-9.]+)%`)

// Download invokes the external downloader for the request. When the
// chosen format turns out to be unavailable, one retry with the best
// combined selection is attempted before giving up.
func (y *YTDLP) Download(ctx context.Context, req models.DownloadRequest, progress func(models.StatusUpdate)) (*models.DownloadResult, error) {
	if err := os.MkdirAll(req.DestDir, consts.PermsDir); err != nil {
		return nil, fmt.Errorf("%w: cannot create destination directory %q: %v",
			errs.ErrFilesystem, req.DestDir, err)
	}

	res, err := y.runDownload(ctx, req, progress)
	if err != nil && errors.Is(err, errs.ErrFormatUnavailable) && req.FormatSpec != SpecBestCombined {
		logging.W("Requested format not available, falling back to best quality")
		req.FormatSpec = SpecBestCombined
		req.AudioOnly = false
		res, err = y.runDownload(ctx, req, progress)
	}
	return res, err
}

// runDownload executes one yt-dlp download attempt.
func (y *YTDLP) runDownload(ctx context.Context, req models.DownloadRequest, progress func(models.StatusUpdate)) (*models.DownloadResult, error) {
	cmd := y.buildVideoCommand(ctx, req)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe error: %v", errs.ErrDownload, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stderr pipe error: %v", errs.ErrDownload, err)
	}

	scan := newOutputScan(req.URL, progress)
	done := make(chan struct{})
	go func() {
		scan.consume(io.MultiReader(stdout, stderr))
		close(done)
	}()

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: install yt-dlp and retry", errs.ErrToolMissing)
		}
		return nil, fmt.Errorf("%w: command start error: %v", errs.ErrDownload, err)
	}

	waitErr := cmd.Wait()
	<-done

	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: canceled: %v", errs.ErrDownload, ctx.Err())
	}
	if waitErr != nil {
		return nil, errs.Classify(scan.tail(),
			fmt.Errorf("%w: %v", errs.ErrDownload, waitErr))
	}

	path := scan.finalPath
	if path == "" {
		// yt-dlp did not print the moved file path; fall back to the
		// newest media file in the destination directory.
		newest, ok := files.NewestMedia(req.DestDir)
		if !ok {
			return nil, fmt.Errorf("%w: download completed but output file not found in %q",
				errs.ErrDownload, req.DestDir)
		}
		path = filepath.Join(req.DestDir, newest.Name)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: output file verification failed: %v", errs.ErrDownload, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: output file is empty: %s", errs.ErrDownload, path)
	}

	logging.S("Download successful: %s", path)
	return &models.DownloadResult{Path: path, SizeBytes: info.Size()}, nil
}

// outputScan reads yt-dlp output line by line, forwarding progress
// percentages, capturing the final file path, and keeping recent lines
// for error classification.
type outputScan struct {
	url       string
	progress  func(models.StatusUpdate)
	finalPath string
	recent    []string
}

const tailLines = 30

func newOutputScan(url string, progress func(models.StatusUpdate)) *outputScan {
	return &outputScan{url: url, progress: progress}
}

func (s *outputScan) consume(r io.Reader) {
	scanner := bufio.NewScanner(r)
	var lastPct float64

	for scanner.Scan() {
		line := scanner.Text()
		s.remember(line)

		if m := progressRx.FindStringSubmatch(line); m != nil {
			pct, err := strconv.ParseFloat(m[1], 64)
			if err == nil && pct != lastPct {
				lastPct = pct
				if s.progress != nil {
					s.progress(models.StatusUpdate{URL: s.url, Percent: pct, Stage: "downloading"})
				}
			}
			continue
		}

		// The moved file path is printed bare on its own line.
		if filepath.IsAbs(line) && files.IsMediaFile(line) {
			s.finalPath = line
		}
	}

	if err := scanner.Err(); err != nil {
		logging.E("Scanner error reading downloader output: %v", err)
	}
}

func (s *outputScan) remember(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	s.recent = append(s.recent, line)
	if len(s.recent) > tailLines {
		s.recent = s.recent[1:]
	}
}

func (s *outputScan) tail() string {
	return strings.Join(s.recent, "\n")
}
