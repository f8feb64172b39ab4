package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"watchsweep/internal/arr"
	"watchsweep/internal/config"
	"watchsweep/internal/reconcile"
	"watchsweep/internal/store"
	"watchsweep/internal/tautulli"
	"watchsweep/internal/workflow"
)

// Version information - set at build time
var version = "dev"

func main() {
	ctx := context.Background()

	// Determine command - "check" reconciles and persists the unwatched
	// list, "delete" replays the persisted list interactively.
	args := os.Args[1:]
	command := "check"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "check", "delete":
			command = args[0]
			// Remove command from args for flag parsing
			os.Args = append([]string{os.Args[0]}, args[1:]...)
		default:
			log.Fatalf("Unknown command: %s", args[0])
		}
	}

	var (
		showVersion    = flag.Bool("version", false, "Show version information")
		configPath     = flag.String("config", config.DefaultFile, "Path to the JSON config file")
		logLevel       = flag.String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
		docker         = flag.Bool("docker", false, "Prefix output with timestamps (container logs)")
		tautulliHost   = flag.String("tautulli-host", "", "Tautulli API URL")
		tautulliToken  = flag.String("tautulli-token", "", "Tautulli API key")
		sonarrHost     = flag.String("sonarr-host", "", "Hostname or IP address of your Sonarr server")
		sonarrToken    = flag.String("sonarr-token", "", "Sonarr API token")
		radarrHost     = flag.String("radarr-host", "", "Hostname or IP address of your Radarr server")
		radarrToken    = flag.String("radarr-token", "", "Radarr API token")
		movieSectionID = flag.Int("movie-section-id", 0, "Tautulli section ID for movies")
		showSectionID  = flag.Int("show-section-id", 0, "Tautulli section ID for TV shows")
		resultFile     = flag.String("result-file", "", "Path of the persisted unwatched-media list")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("watchsweep version %s\n", version)
		fmt.Println("Unwatched media reconciliation for Tautulli, Sonarr and Radarr")
		return
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override configuration with command line flags
	if *tautulliHost != "" {
		cfg.TautulliHost = *tautulliHost
	}
	if *tautulliToken != "" {
		cfg.TautulliToken = *tautulliToken
	}
	if *sonarrHost != "" {
		cfg.SonarrHost = *sonarrHost
	}
	if *sonarrToken != "" {
		cfg.SonarrToken = *sonarrToken
	}
	if *radarrHost != "" {
		cfg.RadarrHost = *radarrHost
	}
	if *radarrToken != "" {
		cfg.RadarrToken = *radarrToken
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *docker {
		cfg.Docker = true
	}
	if *movieSectionID > 0 {
		cfg.MovieSectionID = *movieSectionID
	}
	if *showSectionID > 0 {
		cfg.ShowSectionID = *showSectionID
	}
	if *resultFile != "" {
		cfg.ResultFile = *resultFile
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	logger := arr.NewStandardLogger(cfg.LogLevel, cfg.Docker)

	sonarrClient := arr.NewSonarrClient(cfg.SonarrHost, cfg.SonarrToken, cfg.RequestTimeout, logger)
	radarrClient := arr.NewRadarrClient(cfg.RadarrHost, cfg.RadarrToken, cfg.RequestTimeout, logger)
	resultStore := store.NewStore(cfg.ResultFile, logger)

	switch command {
	case "check":
		runCheckCommand(ctx, cfg, logger, sonarrClient, radarrClient, resultStore)
	case "delete":
		runDeleteCommand(ctx, logger, sonarrClient, radarrClient, resultStore)
	}
}

// runCheckCommand fetches both libraries and the watch history,
// reconciles them and persists the unwatched list
func runCheckCommand(ctx context.Context, cfg *config.Config, logger arr.Logger, sonarrClient, radarrClient arr.Client, resultStore *store.Store) {
	logger.Info("Starting Check")

	for _, client := range []arr.Client{sonarrClient, radarrClient} {
		if err := client.TestConnection(ctx); err != nil {
			logger.Error("Failed to connect to %s: %s", client.GetName(), err.Error())
			os.Exit(1)
		}
	}

	logger.Info("Step 1: Fetching libraries...")
	shows, err := sonarrClient.GetLibrary(ctx)
	if err != nil {
		logger.Error("Failed to fetch Sonarr library: %s", err.Error())
		os.Exit(1)
	}
	movies, err := radarrClient.GetLibrary(ctx)
	if err != nil {
		logger.Error("Failed to fetch Radarr library: %s", err.Error())
		os.Exit(1)
	}
	logger.Info("Found %d series and %d movies", len(shows), len(movies))

	logger.Info("Step 2: Fetching watch history...")
	tautulliClient := tautulli.NewClient(cfg.TautulliHost, cfg.TautulliToken, cfg.PageLength, cfg.RequestTimeout, logger)
	movieEntries, err := tautulliClient.GetLibraryMediaInfo(ctx, cfg.MovieSectionID)
	if err != nil {
		logger.Error("Failed to fetch movie watch history: %s", err.Error())
		os.Exit(1)
	}
	showEntries, err := tautulliClient.GetLibraryMediaInfo(ctx, cfg.ShowSectionID)
	if err != nil {
		logger.Error("Failed to fetch TV watch history: %s", err.Error())
		os.Exit(1)
	}
	entries := append(movieEntries, showEntries...)
	logger.Info("Found %d watch history entries", len(entries))

	logger.Info("Step 3: Reconciling...")
	reconciler := reconcile.NewReconciler(tautulliClient, logger, reconcile.NewConsoleProgressReporter(logger))
	items, _, err := reconciler.FindUnwatched(ctx, reconcile.Libraries{Movies: movies, Shows: shows}, entries)
	if err != nil {
		logger.Error("Reconciliation failed: %s", err.Error())
		os.Exit(1)
	}

	if err := resultStore.Save(items); err != nil {
		logger.Error("Failed to save results: %s", err.Error())
		os.Exit(1)
	}

	if len(items) > 0 {
		logger.Info("Discrepancies found.")
		logger.Info("Run the delete command to review them interactively")
	} else {
		logger.Info("No discrepancies found :)")
	}
	logger.Info("Done!")
}

// runDeleteCommand loads the persisted unwatched list and walks the
// interactive deletion workflow
func runDeleteCommand(ctx context.Context, logger arr.Logger, sonarrClient, radarrClient arr.Client, resultStore *store.Store) {
	items, err := resultStore.Load()
	if err != nil {
		logger.Error("Failed to load results: %s", err.Error())
		logger.Error("Run the check command first to build %s", resultStore.Path())
		os.Exit(1)
	}
	if len(items) == 0 {
		logger.Info("Nothing to delete :)")
		return
	}

	confirmer := workflow.NewTerminalConfirmer(logger)
	wf := workflow.NewWorkflow(sonarrClient, radarrClient, confirmer, logger)
	stats, err := wf.Run(ctx, items)
	if err != nil {
		logger.Error("Deletion workflow failed: %s", err.Error())
		os.Exit(1)
	}

	logger.Info("")
	logger.Info("Deletion Summary:")
	logger.Info("  Prompted: %d", stats.Prompted)
	logger.Info("  Deleted:  %d", stats.Deleted)
	logger.Info("  Declined: %d", stats.Declined)
	if stats.Failed > 0 {
		logger.Warn("  Failed:   %d", stats.Failed)
	}
	logger.Info("Done!")
}
