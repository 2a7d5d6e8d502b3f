package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DefaultCacheName = "memo-share-app-v1"
)

// DefaultAssets is the static shell cached on install.
var DefaultAssets = []string{
	"/note-share-app/",
	"/note-share-app/index.html",
	"/note-share-app/app.html",
	"/note-share-app/logs.html",
	"/note-share-app/style.css",
	"/note-share-app/app.js",
	"/note-share-app/supabase-client.js",
	"/note-share-app/icon-192.png",
	"/note-share-app/icon-512.png",
	"/note-share-app/manifest.json",
}

var ErrNoOrigin = errors.New("ASSET_ORIGIN is required")

type Config struct {
	Env    string
	Server server
	Cache  cache
	Logger logger
}

type server struct {
	RunAddress   string
	FetchTimeout time.Duration
}

type cache struct {
	Name   string
	Origin string
	Assets []string
}

type logger struct {
	LogLevel string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	// .env is optional, the environment wins
	_ = godotenv.Load(envPath)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":8080")
	v.SetDefault("cache_name", DefaultCacheName)
	v.SetDefault("fetch_timeout_seconds", 30)
	v.SetDefault("log_level", "info")

	cfg := &Config{
		Env: v.GetString("app_env"),
		Server: server{
			RunAddress:   v.GetString("run_address"),
			FetchTimeout: time.Duration(v.GetInt("fetch_timeout_seconds")) * time.Second,
		},
		Cache: cache{
			Name:   v.GetString("cache_name"),
			Origin: strings.TrimSpace(v.GetString("asset_origin")),
			Assets: splitList(v.GetString("asset_paths")),
		},
		Logger: logger{LogLevel: v.GetString("log_level")},
	}

	if len(cfg.Cache.Assets) == 0 {
		cfg.Cache.Assets = append([]string(nil), DefaultAssets...)
	}
	if cfg.Cache.Origin == "" {
		return nil, ErrNoOrigin
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
