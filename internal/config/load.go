package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/listadapter/internal/env"
	"github.com/charmbracelet/listadapter/internal/log"
	"github.com/qjebbs/go-jsons"
)

// LoadReader config via io.Reader.
func LoadReader(fd io.Reader) (*Config, error) {
	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, err
	}

	var config Config
	if len(data) == 0 {
		return &config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load loads the configuration from the default paths and sets up logging.
func Load(workingDir string, debug bool) (*Config, error) {
	cfg, err := load(env.New(), workingDir, debug)
	if err != nil {
		return nil, err
	}

	log.Setup(cfg.LogFile(), cfg.Options.Debug)
	return cfg, nil
}

func load(env env.Env, workingDir string, debug bool) (*Config, error) {
	configPaths := []string{
		globalConfig(env),
		filepath.Join(workingDir, fmt.Sprintf("%s.json", appName)),
		filepath.Join(workingDir, fmt.Sprintf(".%s.json", appName)),
	}
	cfg, err := loadFromConfigPaths(configPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from paths %v: %w", configPaths, err)
	}

	cfg.setDefaults(workingDir)

	if debug || env.Bool(DebugEnv) {
		cfg.Options.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromConfigPaths reads every config file that exists, in order.
// Missing files are skipped; later files override earlier ones key by key.
func loadFromConfigPaths(configPaths []string) (*Config, error) {
	var (
		found   []string
		configs []io.Reader
	)
	for _, path := range configPaths {
		fd, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
		}
		defer fd.Close()

		found = append(found, path)
		configs = append(configs, fd)
	}
	if len(configs) == 0 {
		return &Config{}, nil
	}

	merged, err := merge(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to merge %s: %w", strings.Join(found, ", "), err)
	}
	slog.Debug("Merged config files", "files", found)
	return LoadReader(bytes.NewReader(merged))
}

// merge folds JSON documents into one. Objects merge recursively; any other
// value in a later document replaces the earlier one.
func merge(configs []io.Reader) ([]byte, error) {
	return jsons.Merge(configs)
}

func globalConfig(env env.Env) string {
	xdgConfigHome := env.Get("XDG_CONFIG_HOME")
	if xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName, fmt.Sprintf("%s.json", appName))
	}

	// return the path to the main config directory
	// for windows, it should be in `%LOCALAPPDATA%/listadapter/`
	// for linux and macOS, it should be in `$HOME/.config/listadapter/`
	if runtime.GOOS == "windows" {
		localAppData := env.Get("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(env.Get("USERPROFILE"), "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, fmt.Sprintf("%s.json", appName))
	}

	return filepath.Join(env.Get("HOME"), ".config", appName, fmt.Sprintf("%s.json", appName))
}
