package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempTool creates a stand-in engine binary / model file pair.
func writeTempTool(t *testing.T) (binary, model string) {
	t.Helper()
	dir := t.TempDir()
	binary = filepath.Join(dir, "whisper-cli")
	model = filepath.Join(dir, "model.bin")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(model, []byte("model"), 0o644))
	return binary, model
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WHISPER_CLI", "WHISPER_MODEL", "M2T_LANGUAGE", "M2T_DOWNLOAD_DIR",
		"M2T_DOWNLOADER", "M2T_TRANSCODER", "M2T_DEVICE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WHISPER_CLI")

	binary, _ := writeTempTool(t)
	t.Setenv("WHISPER_CLI", binary)

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WHISPER_MODEL")
}

func TestLoad_DefaultsApplied(t *testing.T) {
	clearEnv(t)
	binary, model := writeTempTool(t)
	t.Setenv("WHISPER_CLI", binary)
	t.Setenv("WHISPER_MODEL", model)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, binary, cfg.EngineBinary)
	assert.Equal(t, model, cfg.ModelPath)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, DefaultDownloadDir, cfg.DownloadDir)
	assert.Equal(t, DefaultDownloader, cfg.DownloaderBinary)
	assert.Equal(t, DefaultTranscoder, cfg.TranscoderBinary)
	assert.Equal(t, DefaultDevice, cfg.DefaultDevice)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	binary, model := writeTempTool(t)
	t.Setenv("WHISPER_CLI", binary)
	t.Setenv("WHISPER_MODEL", model)
	t.Setenv("M2T_LANGUAGE", "en")
	t.Setenv("M2T_DEVICE", "0,1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "0,1", cfg.DefaultDevice)
}

func TestValidate_MissingModelFile(t *testing.T) {
	binary, _ := writeTempTool(t)
	cfg := &Config{EngineBinary: binary, ModelPath: "/nonexistent/model.bin"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model file not found")
}

func TestValidate_EngineResolvedFromPath(t *testing.T) {
	_, model := writeTempTool(t)
	// "sh" is not a file path but resolves through PATH lookup.
	cfg := &Config{EngineBinary: "sh", ModelPath: model}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_EngineMissingEverywhere(t *testing.T) {
	_, model := writeTempTool(t)
	cfg := &Config{EngineBinary: "definitely-not-a-real-binary-m2t", ModelPath: model}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine executable not found")
}
