package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	Env      string
	LogLevel string
	Port     string
	AppURL   string

	DatabaseURL string

	JWTSecret      string
	TokenDuration  time.Duration
	CookieDuration time.Duration
	AllowedOrigins []string

	AIProvider    string
	AIModel       string
	AIAPIKey      string
	AIBaseURL     string
	AITemperature float64
	AIMaxTokens   int
	AITimeout     time.Duration

	MaxFileSize int64

	GCSBucketName string
	GCSUploadPath string
}

func (s Settings) Production() bool {
	return s.Env == "production"
}

// Load reads .env (if present) and then the process environment.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("loading .env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds Settings from a lookup function.
func FromEnv(getenv func(string) string) (Settings, error) {
	r := reader{getenv: getenv}

	s := Settings{
		Env:      r.str("ENV", "development"),
		LogLevel: r.str("LOG_LEVEL", "info"),
		Port:     r.str("PORT", "8000"),

		DatabaseURL: r.required("DATABASE_URL"),

		JWTSecret:      r.required("JWT_SECRET"),
		TokenDuration:  r.duration("TOKEN_DURATION", 24*time.Hour),
		CookieDuration: r.duration("COOKIE_DURATION", 7*24*time.Hour),
		AllowedOrigins: r.list("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		AIProvider:    strings.ToLower(r.str("AI_PROVIDER", "gemini")),
		AIModel:       r.str("AI_MODEL", ""),
		AIAPIKey:      r.str("AI_API_KEY", ""),
		AIBaseURL:     r.str("AI_BASE_URL", ""),
		AITemperature: r.float("AI_TEMPERATURE", 0.1),
		AIMaxTokens:   r.int("AI_MAX_TOKENS", 4000),
		AITimeout:     r.duration("AI_TIMEOUT", 60*time.Second),

		MaxFileSize: int64(r.int("MAX_FILE_SIZE", 10*1024*1024)),

		GCSBucketName: r.str("GCS_BUCKET_NAME", ""),
		GCSUploadPath: r.str("GCS_UPLOAD_PATH", "scans/"),
	}

	s.AppURL = strings.TrimSuffix(r.str("APP_URL", "http://localhost:"+s.Port), "/")

	if s.AIModel == "" {
		switch s.AIProvider {
		case "openai":
			s.AIModel = "gpt-4o-mini"
		default:
			s.AIModel = "gemini-2.5-flash"
		}
	}

	switch s.AIProvider {
	case "gemini", "openai":
	default:
		r.errs = append(r.errs, fmt.Errorf("AI_PROVIDER: unsupported provider %q", s.AIProvider))
	}

	if len(r.errs) > 0 {
		return Settings{}, errors.Join(r.errs...)
	}
	return s, nil
}

type reader struct {
	getenv func(string) string
	errs   []error
}

func (r *reader) str(key, fallback string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (r *reader) required(key string) string {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		r.errs = append(r.errs, fmt.Errorf("%s not set", key))
	}
	return v
}

func (r *reader) int(key string, fallback int) int {
	v := r.str(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func (r *reader) float(key string, fallback float64) float64 {
	v := r.str(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return f
}

func (r *reader) duration(key string, fallback time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func (r *reader) list(key string, fallback []string) []string {
	v := r.str(key, "")
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
