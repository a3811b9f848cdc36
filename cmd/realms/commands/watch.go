package commands

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/config"
	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/logger"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
	"github.com/rayners/fvtt-realms-and-reaches/realm/codec"
	"github.com/rayners/fvtt-realms-and-reaches/realm/metrics"
	"github.com/rayners/fvtt-realms-and-reaches/version"
)

var (
	watchDoc         string
	watchMetricsAddr string
)

// watchDebounce collapses editor write bursts into one reload.
const watchDebounce = 500 * time.Millisecond

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a realm document and revalidate on change",
	Long: `Watch a realm document for changes. Every change reloads the
document, revalidates all tags against the configured vocabulary, and
reports tag conflicts. Runs until interrupted.

With --metrics-addr, region counters and the current region gauge are
served on /metrics in Prometheus format.

Examples:
  realms watch --doc forest.json
  realms watch --doc forest.json --metrics-addr :9090`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().StringVar(&watchDoc, "doc", "", "Realm document to watch (required)")
	WatchCmd.Flags().StringVar(&watchMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchDoc == "" {
		return errors.New("--doc is required")
	}
	verbosity, _ := cmd.Flags().GetCount("verbose")

	store, err := newStore(watchDoc)
	if err != nil {
		return err
	}

	if watchMetricsAddr != "" {
		startMetricsServer(store)
	}

	if logger.ShouldOutput(verbosity, logger.OutputStartup) {
		info := version.Get()
		pterm.Info.Printf("realms %s (commit %s)\n", info.Version, info.Short())
		pterm.Info.Printf("Verbosity: %s (%s)\n",
			logger.LevelName(verbosity), logger.VerbosityDescription(verbosity))
	}

	// Initial load before watching
	if err := reloadAndReport(store, watchDoc, verbosity); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()
	if err := watcher.Add(watchDoc); err != nil {
		return errors.Wrapf(err, "failed to watch %s", watchDoc)
	}

	stopConfigWatch, configReloads := startConfigWatcher()
	if stopConfigWatch != nil {
		defer stopConfigWatch()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	pterm.Info.Printf("Watching %s (ctrl-c to stop)\n", watchDoc)

	var debounce <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if logger.ShouldOutput(verbosity, logger.OutputWatchEvents) {
					pterm.Printf("  event %s %s\n", event.Op, event.Name)
				}
				debounce = time.After(watchDebounce)
			}

		case <-debounce:
			debounce = nil
			pterm.Println()
			if err := reloadAndReport(store, watchDoc, verbosity); err != nil {
				pterm.Error.Printf("Reload failed: %v\n", err)
			}

		case cfg := <-configReloads:
			store.SetAuthor(cfg.Author)
			pterm.Info.Println("Configuration reloaded")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Watcher error", logger.FieldError, err)

		case <-sigChan:
			pterm.Println()
			pterm.Info.Println("Stopping watch")
			return nil
		}
	}
}

// startConfigWatcher hot-reloads the configuration while watch runs. Fresh
// configs are handed to the main loop over the returned channel so the store
// is only ever touched from one goroutine. Namespace pack changes still need
// a restart; the registry is fixed for the store's lifetime.
func startConfigWatcher() (func(), <-chan *config.Config) {
	path := config.EffectiveConfigPath()
	if _, err := os.Stat(path); err != nil {
		logger.Debugw("No config file found, config watching disabled")
		return nil, nil
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		logger.Warnw("Failed to watch config, restart to pick up changes",
			logger.FieldPath, path,
			logger.FieldError, err)
		return nil, nil
	}

	reloads := make(chan *config.Config, 1)
	w.OnReload(func(cfg *config.Config) error {
		select {
		case reloads <- cfg:
		default:
		}
		return nil
	})

	// Global watcher so config writes from this process are not re-read
	config.SetGlobalWatcher(w)
	w.Start()
	logger.Debugw("Config watcher started", logger.FieldPath, path)

	return func() {
		_ = w.Stop()
		config.SetGlobalWatcher(nil)
	}, reloads
}

// startMetricsServer attaches a metrics observer to store and serves its
// registry over HTTP.
func startMetricsServer(store *realm.Store) {
	registry := prometheus.NewRegistry()
	metrics.New(registry).Watch(store)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(watchMetricsAddr, mux); err != nil {
			logger.Errorw("Metrics server stopped", logger.FieldError, err)
		}
	}()
	pterm.Info.Printf("Serving metrics on %s/metrics\n", watchMetricsAddr)
}

// reloadAndReport replaces the store's contents with the document on disk,
// then revalidates every tag and reports conflicts.
func reloadAndReport(store *realm.Store, path string, verbosity int) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	imported, err := codec.Import(store, doc, codec.PolicyReplace)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Loaded %d region(s) from %s\n", imported, path)

	registry := store.Registry()
	invalid := 0
	conflicted := 0
	for _, r := range store.All() {
		if logger.ShouldOutput(verbosity, logger.OutputDataDump) {
			pterm.Printf("  %s %s %v\n", truncate(r.ID, 10), r.Name, r.Tags())
		}
		for _, tag := range r.Tags() {
			if err := registry.Validate(tag); err != nil {
				invalid++
				pterm.Warning.Printf("%s: invalid tag %q: %v\n", r.Name, tag, err)
			}
		}
		for _, c := range registry.DetectConflicts(r.Tags()) {
			conflicted++
			pterm.Warning.Printf("%s: %s\n", r.Name, c.Message)
		}
	}

	if invalid == 0 && conflicted == 0 {
		pterm.Printf("  Tags valid, no conflicts\n")
	}
	return nil
}
