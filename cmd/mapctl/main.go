package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pasture/config"
	"pasture/database"
	"pasture/pkg/layout/repository"
	layoutRepoImp "pasture/pkg/layout/repositoryImp"
	"pasture/pkg/logging"
	"pasture/pkg/mapeditor"
	"pasture/pkg/paddock/client"
	paddockRepoImp "pasture/pkg/paddock/repositoryImp"
	paddockSvcImp "pasture/pkg/paddock/serviceImp"
)

var (
	// Global flags
	owner      string
	storeKind  string
	backendURL string
	offline    bool
	local      bool
	verbose    bool

	cfg    config.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mapctl",
	Short: "Paddock map editor for the terminal",
	Long: `mapctl edits and inspects the 20x20 paddock map.

Run without arguments to open the interactive editor. Saved maps are read
from the store configured by LAYOUT_STORE (sqlite, gdata or memory) and the
paddock list comes from the backend at BACKEND_URL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if storeKind != "" {
			cfg.LayoutStore = storeKind
		}
		if backendURL != "" {
			cfg.BackendURL = backendURL
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		// The editor owns the screen; without LOG_FILE it logs nowhere.
		if cfg.LogFile == "" && isEditCmd(cmd) {
			logger = zap.NewNop()
			return nil
		}
		var err error
		logger, err = logging.New(level, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runEdit,
}

func isEditCmd(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "edit"
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&owner, "uid", "u", "dev", "Map owner (same id the web editor uses)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Layout store: sqlite, gdata or memory (default: LAYOUT_STORE)")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Paddock backend URL (default: BACKEND_URL)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Do not contact the paddock backend")
	rootCmd.PersistentFlags().BoolVar(&local, "local", false, "Read paddocks from DB_PATH instead of the backend")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text", "Output format: text, json or yaml")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "mapa-potreros.xlsx", "Workbook path")
	paddocksCmd.Flags().StringVarP(&paddocksFormat, "format", "f", "text", "Output format: text, json or yaml")
	paddocksCmd.Flags().BoolVar(&paddocksFromPage, "from-page", false, "Read the rendered paddock page instead of the JSON API")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(paddocksCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var sharedDB *gorm.DB

func openDB() (*gorm.DB, error) {
	if sharedDB != nil {
		return sharedDB, nil
	}
	db, err := database.OpenSQLite(cfg.DBPath, verbose)
	if err != nil {
		return nil, err
	}
	sharedDB = db
	return db, nil
}

// openStore returns the layout store for the current owner.
func openStore() (repository.Store, error) {
	var db *gorm.DB
	if cfg.LayoutStore == config.StoreSQLite {
		d, err := openDB()
		if err != nil {
			return nil, err
		}
		db = d
	}
	stores, err := layoutRepoImp.NewFactory(cfg.LayoutStore, cfg.GdataApp, db)
	if err != nil {
		return nil, err
	}
	return stores(owner)
}

// paddockSource is nil when running offline. With --local the paddock
// table in DB_PATH is read directly.
func paddockSource() (mapeditor.PaddockSource, error) {
	switch {
	case offline:
		return nil, nil
	case local:
		db, err := openDB()
		if err != nil {
			return nil, err
		}
		svc := paddockSvcImp.NewPaddockService(paddockRepoImp.New(db), logger)
		return paddockSvcImp.NewEditorSource(svc), nil
	case cfg.BackendURL == "":
		return nil, nil
	}
	return client.New(cfg.BackendURL, cfg.BackendTimeout, logger), nil
}

// loadSnapshot rebuilds the owner's map the way the editor shows it on
// start: paddocks from the backend, then the saved layout on top.
func loadSnapshot(ctx context.Context) (mapeditor.Snapshot, error) {
	store, err := openStore()
	if err != nil {
		return mapeditor.Snapshot{}, err
	}
	d := mapeditor.NewDispatcher(
		mapeditor.WithStore(store),
		mapeditor.WithLogger(logger),
	)

	src, err := paddockSource()
	if err != nil {
		return mapeditor.Snapshot{}, err
	}
	var records []mapeditor.PaddockRecord
	if src != nil {
		records, err = src.List(ctx)
		if err != nil {
			logger.Warn("paddock list unavailable, showing saved layout only", zap.Error(err))
		}
	}
	res := d.Bootstrap(ctx, records)
	if !res.OK {
		return mapeditor.Snapshot{}, fmt.Errorf("load layout for %q: %s", owner, notesText(res.Notifications))
	}
	return d.Snapshot(), nil
}

func notesText(ns []mapeditor.Notification) string {
	if len(ns) == 0 {
		return "unknown error"
	}
	return ns[len(ns)-1].Message
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.BackendTimeout+5*time.Second)
}
