package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gitjump/internal/config"
	"gitjump/internal/discovery"
	"gitjump/internal/domain"
	"gitjump/internal/eventbus"
	"gitjump/internal/handoff"
	"gitjump/internal/logging"
	"gitjump/internal/ui"
	inputtypes "gitjump/internal/ui/input/types"
)

var version = "dev"

// flags shared by the root command and list
var (
	configPath string
	targetDir  string
	resultFile string
	threshold  int
	maxDepth   int
)

var rootCmd = &cobra.Command{
	Use:   "gitjump [dir]",
	Short: "Fuzzy-pick a git repository and jump to it",
	Long: "gitjump finds git repositories below a directory, lets you filter them by name and\n" +
		"writes the chosen path to a file your shell can cd into. Run `gitjump init <shell>`\n" +
		"to get the shell function.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runPicker,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gitjump %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVarP(&targetDir, "dir", "d", "", "directory to scan for repositories")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "how many directory levels below dir to search")
	rootCmd.Flags().StringVar(&resultFile, "result-file", "", "file the chosen path is written to")
	rootCmd.Flags().IntVar(&threshold, "threshold", config.DefaultThreshold, "lowest match score still listed")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configService returns the service for --config, or the default location
func configService() config.ConfigService {
	if configPath != "" {
		return config.NewConfigServiceAt(configPath)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file and applies command line overrides on top
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	svc := configService()

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		// an explicit path must exist
		cfg, err = svc.LoadFromPath(svc.Path())
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.BaseDir = args[0]
	}
	if flags.Changed("dir") {
		cfg.BaseDir = targetDir
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	if flags.Lookup("result-file") != nil && flags.Changed("result-file") {
		cfg.ResultFile = resultFile
	}
	if flags.Lookup("threshold") != nil && flags.Changed("threshold") {
		cfg.Threshold = threshold
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// startLogging opens the log file, falling back to discarding output so the
// terminal stays clean for the picker
func startLogging(cfg *config.Config) {
	if err := logging.Init(cfg.LogFile, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "gitjump: logging disabled: %v\n", err)
	}
}

// newBus creates the event bus and the subscribers that log scan progress
func newBus() eventbus.EventBus {
	bus := eventbus.New()

	bus.Subscribe(eventbus.EventScanStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanStartedEvent); ok {
			logging.Info("scan started", "paths", event.Paths)
		}
	})
	bus.Subscribe(eventbus.EventRepoDiscovered, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RepoDiscoveredEvent); ok {
			logging.Debug("repository found", "name", event.Repo.Name, "path", event.Repo.Path)
		}
	})
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanCompletedEvent); ok {
			logging.Info("scan completed", "repos", event.ReposFound)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logging.Warn(event.Message, "err", event.Err)
		}
	})
	bus.Subscribe(eventbus.EventItemChosen, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemChosenEvent); ok {
			if event.Err != nil {
				logging.Error("choice not delivered", "path", event.Item.Path, "err", event.Err)
				return
			}
			logging.Info("choice delivered", "path", event.Item.Path)
		}
	})

	return bus
}

// discover scans cfg.BaseDir, aborting on SIGINT or SIGTERM
func discover(cfg *config.Config, bus eventbus.EventBus) ([]domain.Item, error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scanner := discovery.NewScanner(cfg.Marker, cfg.MaxDepth, cfg.SkipDirs, bus)
	return scanner.Scan(ctx, cfg.BaseDir)
}

func runPicker(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	startLogging(cfg)
	defer logging.Close()

	bus := newBus()
	defer bus.Close()

	// a stale result from an earlier run must not survive a cancelled session
	if err := handoff.Clear(cfg.ResultFile); err != nil {
		return err
	}

	items, err := discover(cfg, bus)
	if err != nil {
		return err
	}

	model := ui.NewModel(items, ui.Options{
		Keys:      inputtypes.NewKeyMap(cfg.Keys.Edit, cfg.Keys.Quit),
		Threshold: cfg.Threshold,
		Deliverer: handoff.NewFileDeliverer(cfg.ResultFile),
	})

	logging.Info("starting picker", "repos", len(items), "base_dir", cfg.BaseDir)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running picker: %w", err)
	}

	item, ok := model.Chosen()
	if !ok {
		return nil
	}
	bus.Publish(eventbus.ItemChosenEvent{Item: item, Err: model.DeliveryErr()})
	if err := model.DeliveryErr(); err != nil {
		return fmt.Errorf("could not hand %s to the shell: %w", item.Path, err)
	}
	return nil
}

// executable returns the absolute path of the running binary, falling back
// to its bare name when the path cannot be resolved
func executable() string {
	exe, err := os.Executable()
	if err != nil {
		return "gitjump"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}
