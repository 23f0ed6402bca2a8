package downloads

import (
	"context"
	"slices"
	"strings"
	"testing"

	"tubegrab/internal/models"
)

func commandArgs(t *testing.T, req models.DownloadRequest) []string {
	t.Helper()
	y := NewYTDLP()
	cmd := y.buildVideoCommand(context.Background(), req)
	return cmd.Args
}

func flagValue(args []string, flag string) (string, bool) {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// TestBuildVideoCommandMerge checks a combined specifier carries a
// merge instruction downstream.
func TestBuildVideoCommandMerge(t *testing.T) {
	t.Parallel()

	args := commandArgs(t, models.DownloadRequest{
		URL:        "https://youtu.be/abc123",
		FormatSpec: SpecBestCombined,
		DestDir:    "/tmp/out",
	})

	spec, ok := flagValue(args, "-f")
	if !ok {
		t.Fatal("no -f flag in command")
	}
	if !strings.Contains(spec, "+") {
		t.Errorf("format spec %q should be a combination string", spec)
	}

	merge, ok := flagValue(args, "--merge-output-format")
	if !ok || merge != "mp4" {
		t.Errorf("combined spec must request an mp4 merge, got %q ok=%v", merge, ok)
	}

	if slices.Contains(args, "-x") {
		t.Error("video download must not extract audio")
	}
	if args[len(args)-1] != "https://youtu.be/abc123" {
		t.Errorf("URL should be the final argument, got %q", args[len(args)-1])
	}
}

// TestBuildVideoCommandSingleTrack checks a plain track ID does not
// request a merge.
func TestBuildVideoCommandSingleTrack(t *testing.T) {
	t.Parallel()

	args := commandArgs(t, models.DownloadRequest{
		URL:        "https://youtu.be/abc123",
		FormatSpec: "22",
		DestDir:    "/tmp/out",
	})

	if _, ok := flagValue(args, "--merge-output-format"); ok {
		t.Error("single track must not request a merge")
	}
}

// TestBuildVideoCommandAudioOnly checks audio requests extract audio
// rather than producing an empty video track.
func TestBuildVideoCommandAudioOnly(t *testing.T) {
	t.Parallel()

	args := commandArgs(t, models.DownloadRequest{
		URL:        "https://youtu.be/abc123",
		FormatSpec: SpecBestAudio,
		DestDir:    "/tmp/out",
	})

	if !slices.Contains(args, "-x") {
		t.Error("audio-only request must extract audio")
	}
	if _, ok := flagValue(args, "--merge-output-format"); ok {
		t.Error("audio-only request must not merge")
	}
}

// TestBuildVideoCommandCookies checks the cookie file is forwarded.
func TestBuildVideoCommandCookies(t *testing.T) {
	t.Parallel()

	y := NewYTDLP()
	y.CookieFile = "/tmp/cookies.txt"
	cmd := y.buildVideoCommand(context.Background(), models.DownloadRequest{
		URL:        "https://youtu.be/abc123",
		FormatSpec: "22",
		DestDir:    "/tmp/out",
	})

	got, ok := flagValue(cmd.Args, "--cookies")
	if !ok || got != "/tmp/cookies.txt" {
		t.Errorf("cookie file not forwarded: %v", cmd.Args)
	}
}

// TestBuildVideoCommandDestination checks the output template lands in
// the destination directory.
func TestBuildVideoCommandDestination(t *testing.T) {
	t.Parallel()

	args := commandArgs(t, models.DownloadRequest{
		URL:        "https://youtu.be/abc123",
		FormatSpec: "22",
		DestDir:    "/data/clips",
	})

	out, ok := flagValue(args, "-o")
	if !ok {
		t.Fatal("no -o flag in command")
	}
	if !strings.HasPrefix(out, "/data/clips") || !strings.Contains(out, "%(title)s") {
		t.Errorf("output template %q should live under the destination directory", out)
	}
}

// TestOutputScan checks progress forwarding and final-path capture.
func TestOutputScan(t *testing.T) {
	t.Parallel()

	var updates []models.StatusUpdate
	scan := newOutputScan("https://youtu.be/abc123", func(u models.StatusUpdate) {
		updates = append(updates, u)
	})

	out := strings.Join([]string{
		"[youtube] abc123: Downloading webpage",
		"[download] Destination: /data/clips/Test.f137.mp4",
		"[download]   0.0% of 250.00MiB at 1.00MiB/s ETA 04:10",
		"[download]  42.5% of 250.00MiB at 5.00MiB/s ETA 00:49",
		"[download] 100.0% of 250.00MiB in 00:50",
		"[Merger] Merging formats into \"/data/clips/Test.mp4\"",
		"/data/clips/Test.mp4",
	}, "\n")

	scan.consume(strings.NewReader(out))

	if scan.finalPath != "/data/clips/Test.mp4" {
		t.Errorf("final path = %q", scan.finalPath)
	}
	// The 0.0% line matches the initial state and is not forwarded.
	if len(updates) != 2 {
		t.Fatalf("expected 2 progress updates, got %d", len(updates))
	}
	if updates[0].Percent != 42.5 {
		t.Errorf("first update percent = %v", updates[0].Percent)
	}
	if updates[1].Percent != 100.0 {
		t.Errorf("final update percent = %v", updates[1].Percent)
	}
}
