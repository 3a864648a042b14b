package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv             string
	LogLevel           string
	HTTPAddr           string
	MetricsAddr        string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	GeminiBase         string
	GeminiKey          string
	GeminiModel        string
	GeminiRPS          int
	SearchCacheTTL     time.Duration
	ChatHistoryLimit   int
	CatalogPath        string
	PublicDir          string
	AgencyEmail        string
	CORSOrigins        []string
	AssistantRPS       float64
	AssistantBurst     int
	AssistantTimeout   time.Duration
	HTTPTimeout        time.Duration
	TrustProxy         bool
	PlaceholderWorkers int
}

// Load reads the environment, after merging an optional .env file (real
// environment variables win over the file).
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	c := Config{
		AppEnv:             env("APP_ENV", "prod"),
		LogLevel:           env("LOG_LEVEL", "info"),
		HTTPAddr:           env("HTTP_ADDR", ":8080"),
		MetricsAddr:        os.Getenv("METRICS_ADDR"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          env("REDIS_PASSWORD", ""),
		RedisDB:            atoi("REDIS_DB", 0),
		GeminiBase:         env("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiKey:          env("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:        env("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiRPS:          atoi("GEMINI_RPS", 2),
		SearchCacheTTL:     time.Duration(atoi("SEARCH_CACHE_TTL_SECONDS", 3600)) * time.Second,
		ChatHistoryLimit:   atoi("CHAT_HISTORY_LIMIT", 20),
		CatalogPath:        os.Getenv("CATALOG_PATH"),
		PublicDir:          env("PUBLIC_DIR", "public"),
		AgencyEmail:        env("AGENCY_EMAIL", "mwalalihomes@gmail.com"),
		CORSOrigins:        list("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		AssistantRPS:       atof("ASSISTANT_RPS", 0.5),
		AssistantBurst:     atoi("ASSISTANT_BURST", 5),
		AssistantTimeout:   time.Duration(atoi("ASSISTANT_TIMEOUT_SECONDS", 20)) * time.Second,
		HTTPTimeout:        time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		TrustProxy:         env("TRUST_PROXY", "false") == "true",
		PlaceholderWorkers: atoi("PLACEHOLDER_WORKERS", 4),
	}
	if c.AssistantTimeout >= c.HTTPTimeout {
		log.Warn().Dur("assistant", c.AssistantTimeout).Dur("http", c.HTTPTimeout).
			Msg("assistant timeout not below HTTP timeout, clamping so fallbacks are still written")
		c.AssistantTimeout = c.HTTPTimeout * 2 / 3
	}
	if c.GeminiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is empty; AI search and chat will use fallbacks")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("not an integer, using default")
	}
	return def
}

func atof(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Warn().Str("key", k).Str("value", v).Float64("default", def).Msg("not a number, using default")
	}
	return def
}

func list(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
