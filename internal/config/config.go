package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoopscout/internal/platform/logging"
)

// ErrMissingAPIKey is returned when SCOUT_API_KEY is unset. Both commands exit on it.
var ErrMissingAPIKey = errors.New("SCOUT_API_KEY is not set: export the upstream API key (or add it to .env) before starting")

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level

	APIKey           string
	SeasonID         int64
	TeamRegistryFile string
	Teams            *Registry

	OriginSouthURL        string
	OriginNorthURL        string
	OriginCanonicalURL    string
	UpstreamRatePerSecond float64
	MetadataTimeout       time.Duration
	ListingTimeout        time.Duration
	CircuitEnabled        bool
	CircuitFailureCount   int
	CircuitOpenTimeout    time.Duration
	CircuitHalfOpenMaxReq int

	ImageTimeout     time.Duration
	ImageMaxHeight   int
	ImageJPEGQuality int

	AnnotationsFile string

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	apiKey := strings.TrimSpace(os.Getenv("SCOUT_API_KEY"))
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	seasonID, err := getEnvAsInt64("SCOUT_SEASON_ID", DefaultSeasonID)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCOUT_SEASON_ID: %w", err)
	}
	if seasonID <= 0 {
		return Config{}, fmt.Errorf("SCOUT_SEASON_ID must be > 0")
	}

	registryFile := strings.TrimSpace(getEnv("SCOUT_TEAM_REGISTRY_FILE", ""))
	teams, err := LoadRegistry(registryFile)
	if err != nil {
		return Config{}, fmt.Errorf("load team registry: %w", err)
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "60s")
	if err != nil {
		return Config{}, err
	}

	ratePerSecond, err := strconv.ParseFloat(getEnv("UPSTREAM_RATE_PER_SECOND", "10"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_RATE_PER_SECOND: %w", err)
	}
	if ratePerSecond <= 0 {
		return Config{}, fmt.Errorf("UPSTREAM_RATE_PER_SECOND must be > 0")
	}
	metadataTimeout, err := getEnvAsDuration("UPSTREAM_METADATA_TIMEOUT", "1500ms")
	if err != nil {
		return Config{}, err
	}
	listingTimeout, err := getEnvAsDuration("UPSTREAM_LISTING_TIMEOUT", "4s")
	if err != nil {
		return Config{}, err
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("UPSTREAM_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("UPSTREAM_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := getEnvAsDuration("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	imageTimeout, err := getEnvAsDuration("IMAGE_TIMEOUT", "3s")
	if err != nil {
		return Config{}, err
	}
	imageMaxHeight, err := getEnvAsInt("IMAGE_MAX_HEIGHT", 500)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMAGE_MAX_HEIGHT: %w", err)
	}
	if imageMaxHeight < 1 {
		return Config{}, fmt.Errorf("IMAGE_MAX_HEIGHT must be >= 1")
	}
	imageQuality, err := getEnvAsInt("IMAGE_JPEG_QUALITY", 95)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMAGE_JPEG_QUALITY: %w", err)
	}
	if imageQuality < 1 || imageQuality > 100 {
		return Config{}, fmt.Errorf("IMAGE_JPEG_QUALITY must be between 1 and 100")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "hoopscout"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		APIKey:                     apiKey,
		SeasonID:                   seasonID,
		TeamRegistryFile:           registryFile,
		Teams:                      teams,
		OriginSouthURL:             strings.TrimRight(strings.TrimSpace(getEnv("ORIGIN_SOUTH_URL", DefaultOriginSouthURL)), "/"),
		OriginNorthURL:             strings.TrimRight(strings.TrimSpace(getEnv("ORIGIN_NORTH_URL", DefaultOriginNorthURL)), "/"),
		OriginCanonicalURL:         strings.TrimRight(strings.TrimSpace(getEnv("ORIGIN_CANONICAL_URL", DefaultOriginCanonicalURL)), "/"),
		UpstreamRatePerSecond:      ratePerSecond,
		MetadataTimeout:            metadataTimeout,
		ListingTimeout:             listingTimeout,
		CircuitEnabled:             circuitEnabled,
		CircuitFailureCount:        circuitFailureCount,
		CircuitOpenTimeout:         circuitOpenTimeout,
		CircuitHalfOpenMaxReq:      circuitHalfOpenMaxReq,
		ImageTimeout:               imageTimeout,
		ImageMaxHeight:             imageMaxHeight,
		ImageJPEGQuality:           imageQuality,
		AnnotationsFile:            strings.TrimSpace(getEnv("ANNOTATIONS_FILE", "")),
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	for key, value := range map[string]string{
		"ORIGIN_SOUTH_URL":     cfg.OriginSouthURL,
		"ORIGIN_NORTH_URL":     cfg.OriginNorthURL,
		"ORIGIN_CANONICAL_URL": cfg.OriginCanonicalURL,
	} {
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return Config{}, fmt.Errorf("%s must be an http(s) URL, got %q", key, value)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

const DefaultSeasonID int64 = 2025

const (
	DefaultOriginSouthURL     = "https://api-s.basketball-stats.de"
	DefaultOriginNorthURL     = "https://api-n.basketball-stats.de"
	DefaultOriginCanonicalURL = "https://api-1.basketball-stats.de"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseInt(value, 10, 64)
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
