package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"whisperchat_server/models"
)

// Config is read from the environment once at startup
type Config struct {
	Port           string
	AWSRegion      string
	S3Bucket       string
	SeedBackend    string
	SeedFile       string
	ProfileHandle  string
	Location       *time.Location
	LoginDelay     time.Duration
	AllowedOrigins []string
}

// Load reads the configuration, applying defaults for unset variables
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT"),
		AWSRegion:     getenv("AWS_REGION"),
		S3Bucket:      getenv("S3_BUCKET_NAME"),
		SeedBackend:   getenv("SEED_BACKEND"),
		SeedFile:      getenv("SEED_FILE"),
		ProfileHandle: getenv("PROFILE_HANDLE"),
		Location:      time.Local,
		LoginDelay:    1500 * time.Millisecond,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SeedBackend == "" {
		cfg.SeedBackend = models.SeedBackendFile
	}
	if cfg.SeedBackend != models.SeedBackendFile && cfg.SeedBackend != models.SeedBackendDynamo {
		return nil, fmt.Errorf("SEED_BACKEND must be %q or %q, got %q", models.SeedBackendFile, models.SeedBackendDynamo, cfg.SeedBackend)
	}
	if cfg.ProfileHandle == "" {
		cfg.ProfileHandle = "jordan.lee"
	}

	if tz := getenv("TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	if d := getenv("LOGIN_DELAY"); d != "" {
		delay, err := time.ParseDuration(d)
		if err != nil || delay < 0 {
			return nil, fmt.Errorf("invalid LOGIN_DELAY %q", d)
		}
		cfg.LoginDelay = delay
	}

	cfg.AllowedOrigins = []string{"*"}
	if origins := getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
