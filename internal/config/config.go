// Package config loads pipeline configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults for the optional fields.
const (
	DefaultLanguage    = "ko"
	DefaultDownloadDir = "data/downloads"
	DefaultDownloader  = "yt-dlp"
	DefaultTranscoder  = "ffmpeg"
	DefaultDevice      = "0"
)

// Config holds everything the pipeline needs to run. It is constructed once
// at startup and passed by reference; no component reads the environment
// after Load returns.
type Config struct {
	// EngineBinary is the speech engine executable (WHISPER_CLI). Required.
	EngineBinary string
	// ModelPath is the engine model file (WHISPER_MODEL). Required.
	ModelPath string
	// Language is the fixed target language passed to the engine.
	Language string
	// DownloadDir receives uploads, downloads and their sibling artifacts.
	DownloadDir string
	// DownloaderBinary fetches remote media audio tracks.
	DownloaderBinary string
	// TranscoderBinary converts media to the canonical wav format.
	TranscoderBinary string
	// DefaultDevice is the accelerator selector used when a run does not
	// specify one.
	DefaultDevice string
}

// Load reads a .env file if present, then builds and validates the config.
// Missing required fields are a startup-fatal error.
func Load() (*Config, error) {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	cfg := &Config{
		EngineBinary:     strings.TrimSpace(os.Getenv("WHISPER_CLI")),
		ModelPath:        strings.TrimSpace(os.Getenv("WHISPER_MODEL")),
		Language:         envOrDefault("M2T_LANGUAGE", DefaultLanguage),
		DownloadDir:      envOrDefault("M2T_DOWNLOAD_DIR", DefaultDownloadDir),
		DownloaderBinary: envOrDefault("M2T_DOWNLOADER", DefaultDownloader),
		TranscoderBinary: envOrDefault("M2T_TRANSCODER", DefaultTranscoder),
		DefaultDevice:    envOrDefault("M2T_DEVICE", DefaultDevice),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on missing required fields and on an engine binary or
// model file that does not exist. Downloader and transcoder absence is not
// checked here: those surface per run as recoverable stage failures.
func (c *Config) Validate() error {
	if c.EngineBinary == "" {
		return fmt.Errorf("WHISPER_CLI must be set to the speech engine executable")
	}
	if c.ModelPath == "" {
		return fmt.Errorf("WHISPER_MODEL must be set to the engine model file")
	}
	if _, err := os.Stat(c.EngineBinary); err != nil {
		if _, lookErr := exec.LookPath(c.EngineBinary); lookErr != nil {
			return fmt.Errorf("speech engine executable not found: %s", c.EngineBinary)
		}
	}
	if _, err := os.Stat(c.ModelPath); err != nil {
		return fmt.Errorf("engine model file not found: %s", c.ModelPath)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
