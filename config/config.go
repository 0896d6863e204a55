package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreGdata  = "gdata"
	StoreMemory = "memory"
)

type AppConfig struct {
	Port           string
	DBPath         string
	LogLevel       string
	LogFile        string
	LayoutStore    string
	GdataApp       string
	BackendURL     string
	BackendTimeout time.Duration
	RequireUser    bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[cfg] error loading .env: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		DBPath:      get("DB_PATH", "pasture.db"),
		LogLevel:    strings.ToLower(get("LOG_LEVEL", "info")),
		LogFile:     get("LOG_FILE", ""),
		LayoutStore: strings.ToLower(get("LAYOUT_STORE", StoreSQLite)),
		GdataApp:    get("GDATA_APP", "pasture-map"),
		BackendURL:  strings.TrimRight(get("BACKEND_URL", "http://localhost:8080"), "/"),
		RequireUser: get("REQUIRE_USER", "false") == "true",
	}
	switch cfg.LayoutStore {
	case StoreSQLite, StoreGdata, StoreMemory:
	default:
		log.Printf("[cfg] unknown LAYOUT_STORE %q, using %s", cfg.LayoutStore, StoreSQLite)
		cfg.LayoutStore = StoreSQLite
	}
	d, err := time.ParseDuration(get("BACKEND_TIMEOUT", "10s"))
	if err != nil || d <= 0 {
		log.Printf("[cfg] bad BACKEND_TIMEOUT, using 10s")
		d = 10 * time.Second
	}
	cfg.BackendTimeout = d
	return cfg
}
