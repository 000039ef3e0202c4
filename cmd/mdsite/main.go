package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/tkarlsen/mdsite"
)

var cli struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Build struct {
		ProjectDir string `help:"Project directory containing config.yaml" default:"." type:"path"`
		Drafts     bool   `help:"Include posts marked as drafts"`
	} `cmd:"" help:"Build the static site"`

	Serve struct {
		ProjectDir string `help:"Project directory containing config.yaml" default:"." type:"path"`
		Port       int    `help:"Port for the preview server" default:"8000"`
	} `cmd:"" help:"Serve a previously built site for local preview"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("mdsite"),
		kong.Description("A minimal Markdown static site generator"))

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	switch ctx.Command() {
	case "build":
		generator := mdsite.NewGenerator(cli.Build.ProjectDir, logger)
		if err := generator.Build(mdsite.BuildOptions{IncludeDrafts: cli.Build.Drafts}); err != nil {
			logger.Error("build failed", "error", err)
			os.Exit(1)
		}
	case "serve":
		if err := serveSite(logger); err != nil {
			logger.Error("serve failed", "error", err)
			os.Exit(1)
		}
	}
}

func serveSite(logger *slog.Logger) error {
	conf, err := mdsite.LoadSiteConf(filepath.Join(cli.Serve.ProjectDir, "config.yaml"))
	if err != nil {
		return err
	}

	siteDir := filepath.Join(cli.Serve.ProjectDir, conf.OutputDir)
	if _, err := os.Stat(siteDir); err != nil {
		return fmt.Errorf("site not built yet, run 'mdsite build' first: %w", err)
	}

	addr := fmt.Sprintf(":%d", cli.Serve.Port)
	logger.Info("serving site", "dir", siteDir, "addr", addr)
	return http.ListenAndServe(addr, http.FileServer(http.Dir(siteDir)))
}
