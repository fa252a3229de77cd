// common/config_manager.go
// Package common implements shared functionality used across the TadsPlayer application.
// This file contains configuration management functionality.

package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// GlobalConfig holds application-wide preferences.
type GlobalConfig struct {
	Language string `json:"Language"`
	// UseSmoothScaling selects smooth (rather than fast) image scaling, e.g. for cover art.
	UseSmoothScaling bool `json:"UseSmoothScaling"`
	// LastGameDir is where the open-game dialog starts.
	LastGameDir string `json:"LastGameDir"`
}

// Cfg is the structure of the configuration file settings.conf.
type Cfg struct {
	Global GlobalConfig `json:"global"`
}

// DefaultGlobalConfig returns the preferences used when no configuration exists yet.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Language:         "",
		UseSmoothScaling: true,
	}
}

// ConfigManager handles loading and saving the application configuration.
// It provides thread-safe access to the global settings.
type ConfigManager struct {
	configPath string
	cfg        Cfg
	mutex      sync.Mutex
}

// NewConfigManager initializes a new configuration manager instance.
// A missing, empty or malformed file leaves the defaults in place; they are written on the next save.
//
// Parameters:
//   - configPath: Path to the configuration file
//
// Returns:
//   - *ConfigManager: Initialized configuration manager
//   - error: Any error that occurred during initialization
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if IsEmptyString(configPath) {
		return nil, fmt.Errorf("ConfigManager: configuration path cannot be empty")
	}

	mgr := &ConfigManager{
		configPath: configPath,
		cfg:        Cfg{Global: DefaultGlobalConfig()},
	}

	if err := mgr.loadConfig(); err != nil {
		CaptureEarlyLog(SeverityInfo, "Using default configuration, '%s' could not be loaded: %v", configPath, err)
	}

	return mgr, nil
}

// Path returns the configuration file path.
func (mgr *ConfigManager) Path() string {
	return mgr.configPath
}

// GetGlobalConfig returns a copy of the current global configuration.
func (mgr *ConfigManager) GetGlobalConfig() GlobalConfig {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	return mgr.cfg.Global
}

// SaveGlobalConfig updates and saves the global configuration.
//
// Parameters:
//   - config: The new global configuration to save
//
// Returns:
//   - error: Any error that occurred during the save operation
func (mgr *ConfigManager) SaveGlobalConfig(config GlobalConfig) error {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	mgr.cfg.Global = config
	return mgr.saveConfigLocked()
}

// loadConfig loads the configuration from the configuration file.
func (mgr *ConfigManager) loadConfig() error {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	data, err := os.ReadFile(mgr.configPath)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	cfg := Cfg{Global: DefaultGlobalConfig()}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("ConfigManager.loadConfig: failed to unmarshal config data from %s: %w", mgr.configPath, err)
	}

	mgr.cfg = cfg
	return nil
}

// saveConfigLocked writes the configuration; the caller holds the mutex.
func (mgr *ConfigManager) saveConfigLocked() error {
	data, err := json.MarshalIndent(mgr.cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("ConfigManager.SaveCfg: failed to marshal config data: %w", err)
	}

	if err := EnsureDirectoryExists(filepath.Dir(mgr.configPath)); err != nil {
		return fmt.Errorf("ConfigManager.SaveCfg: %w", err)
	}

	if err := os.WriteFile(mgr.configPath, data, 0644); err != nil {
		return fmt.Errorf("ConfigManager.SaveCfg: failed to write config file %s: %w", mgr.configPath, err)
	}
	return nil
}

// CreateConfigFile creates a configuration file with default settings.
func CreateConfigFile(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return fmt.Errorf("CreateConfigFile: failed to ensure directory %s exists: %w", dir, err)
	}

	data, err := json.MarshalIndent(Cfg{Global: DefaultGlobalConfig()}, "", "  ")
	if err != nil {
		return fmt.Errorf("CreateConfigFile: failed to marshal default config data: %w", err)
	}

	if err = os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("CreateConfigFile: failed to write default config file %s: %w", configPath, err)
	}
	return nil
}

// LocateConfig finds or creates the configuration file. It prefers an existing file in
// the working directory, then the user config directory, and falls back to creating one
// in the working directory.
func LocateConfig(userConfigDir string, logger *Logger) (*ConfigManager, error) {
	rootConfigPath := FileNameSettings
	if FileExists(rootConfigPath) {
		logger.Info("Using existing config file in root directory")
		return NewConfigManager(rootConfigPath)
	}

	if userConfigDir != "" {
		appConfigPath := JoinPaths(userConfigDir, AppName, FileNameSettings)
		if FileExists(appConfigPath) {
			logger.Info("Using existing config file in user config directory")
			return NewConfigManager(appConfigPath)
		}
		err := CreateConfigFile(appConfigPath)
		if err == nil {
			logger.Info("Created new config file in user config directory")
			return NewConfigManager(appConfigPath)
		}
		logger.Warning("Failed to create config file in user config directory: %v", err)
	}

	logger.Info("Using local path for configuration as fallback")
	if err := CreateConfigFile(rootConfigPath); err != nil {
		return nil, fmt.Errorf("failed to create config file in root directory: %w", err)
	}
	return NewConfigManager(rootConfigPath)
}
