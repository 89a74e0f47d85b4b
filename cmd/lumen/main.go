package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ewilde/lumen/internal/api"
	"github.com/ewilde/lumen/internal/auth"
	"github.com/ewilde/lumen/internal/cache"
	"github.com/ewilde/lumen/internal/config"
	"github.com/ewilde/lumen/internal/demo"
	"github.com/ewilde/lumen/internal/domain"
	"github.com/ewilde/lumen/internal/gallery"
	applog "github.com/ewilde/lumen/internal/log"
	"github.com/ewilde/lumen/internal/tui"
	"github.com/ewilde/lumen/internal/workspace"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var demoMode bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&demoMode, "demo", false, "use the built-in sample gallery")
	flag.Parse()

	if showVersion {
		fmt.Printf("lumen %s\n", Version)
		return
	}

	if err := run(demoMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(demoMode bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if demoMode {
		cfg.Server.Demo = true
	}

	logger, err := applog.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = applog.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting lumen", "version", Version, "demo", cfg.Server.Demo)

	var (
		client   domain.GalleryClient
		sections domain.SectionSource
	)

	if cfg.Server.Demo {
		demoClient := demo.NewClient()
		client = demoClient
		sections = demoClient
	} else {
		if cfg.Server.URL == "" {
			if err := runSetupFlow(cfg, logger); err != nil {
				return err
			}
		}
		apiClient := api.NewClient(cfg.Server.URL, cfg.Server.Token, logger)
		if cfg.Server.Token == "" {
			if err := runSignInFlow(cfg, apiClient, logger); err != nil {
				return err
			}
		}
		client = apiClient
	}

	snapshots, err := cache.Open(config.DefaultCachePath(), cfg.Server.URL)
	if err != nil {
		logger.Warn("snapshot cache unavailable", "error", err)
		snapshots = nil
	}
	if snapshots != nil {
		defer snapshots.Close()
	}

	var snapshotStore domain.SnapshotStore
	if snapshots != nil {
		snapshotStore = snapshots
	}

	galleryStore := gallery.NewStore(client, snapshotStore, logger)
	galleryStore.WarmStart()
	workspaceStore := workspace.NewStore(sections, logger)

	model := tui.NewModel(galleryStore, workspaceStore, cfg.UI.GridColumns)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for the gallery server URL and saves it
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Lumen!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter your gallery server URL (e.g., https://gallery.example.com/api): ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read server URL: %w", err)
	}

	serverURL := strings.TrimSpace(input)
	if serverURL == "" {
		return fmt.Errorf("server URL is required (or run with -demo)")
	}

	cfg.Server.URL = strings.TrimRight(serverURL, "/")
	cfg.Server.Demo = false
	if err := config.SaveConfig(cfg); err != nil {
		logger.Warn("failed to save config", "error", err)
	}
	return nil
}

// runSignInFlow prompts for credentials and stores the resulting token
func runSignInFlow(cfg *config.Config, client *api.Client, logger *slog.Logger) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session := auth.NewService(client, client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := session.SignIn(ctx, strings.TrimSpace(email), string(password)); err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	cfg.Server.Token = session.Token()
	if err := config.SaveToken(cfg.Server.Token); err != nil {
		logger.Warn("failed to save token", "error", err)
	}
	return nil
}
