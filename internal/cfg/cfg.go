// Package cfg wires command-line flags to the program and launches the
// interactive session.
package cfg

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tubegrab/internal/app"
	"tubegrab/internal/cookies"
	"tubegrab/internal/database"
	"tubegrab/internal/domain/keys"
	"tubegrab/internal/domain/setup"
	"tubegrab/internal/downloads"
	"tubegrab/internal/logging"
	"tubegrab/internal/repo"
	"tubegrab/internal/settings"
)

var rootCmd = &cobra.Command{
	Use:   "tubegrab",
	Short: "Interactive YouTube video downloader",
	Long: `TubeGrab is an interactive menu-driven downloader for YouTube videos.
It fetches available quality options, merges video and audio streams,
and remembers your preferred download directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

// InitCommands registers the program flags.
func InitCommands() error {
	flags := rootCmd.PersistentFlags()

	flags.Int(keys.DebugLevel, 0, "Debugging level (0-3)")
	flags.String(keys.SettingsFile, settings.DefaultFileName, "Settings file location")
	flags.String(keys.DownloadDir, "", "Override the default download directory")
	flags.String(keys.YTDLPPath, "", "Path to the yt-dlp binary (default: from PATH)")
	flags.Int(keys.Retries, 5, "Download retry attempts passed to yt-dlp")
	flags.Bool(keys.CookieBrowser, false, "Export browser cookies for age-restricted videos")

	for _, key := range []string{
		keys.DebugLevel, keys.SettingsFile, keys.DownloadDir,
		keys.YTDLPPath, keys.Retries, keys.CookieBrowser,
	} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", key, err)
		}
	}
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// run assembles the collaborators and starts the menu loop.
func run(ctx context.Context) error {
	logging.Level = viper.GetInt(keys.DebugLevel)

	ext := downloads.NewYTDLP()
	if bin := viper.GetString(keys.YTDLPPath); bin != "" {
		ext.Bin = bin
	}
	if retries := viper.GetInt(keys.Retries); retries > 0 {
		ext.Retries = retries
	}

	ytFound, ffFound := ext.CheckTools()
	if !ytFound {
		logging.W("yt-dlp not found on PATH; downloads will fail until it is installed")
	}
	if !ffFound {
		logging.W("ffmpeg not found on PATH; merged formats will not be available")
	}

	if viper.GetBool(keys.CookieBrowser) {
		cookiePath, err := cookies.Export(ctx, setup.CookieFilePath)
		if err != nil {
			logging.W("Cookie export failed: %v", err)
		} else if cookiePath != "" {
			ext.CookieFile = cookiePath
		}
	}

	var history *repo.DownloadStore
	dc, err := database.InitDB(setup.DBFilePath)
	if err != nil {
		logging.W("Download history unavailable: %v", err)
	} else {
		defer func() { _ = dc.Close() }()
		history = repo.GetDownloadStore(dc.DB)
	}

	store := settings.NewStore(viper.GetString(keys.SettingsFile))

	defaultDir := viper.GetString(keys.DownloadDir)
	if defaultDir == "" {
		defaultDir = setup.DefaultDownloadDir()
	}

	menu := app.NewMenu(os.Stdin, os.Stdout, ext, store, history, defaultDir)
	return menu.Run(ctx)
}
