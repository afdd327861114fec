package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/slidepuzzle/game/engine"
	"github.com/wricardo/slidepuzzle/game/service"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigName is the preset used when none is requested
const DefaultConfigName = "classic"

// Extensions lists the preset file extensions in lookup order
var Extensions = []string{".json", ".yaml", ".yml"}

// Manager handles preset loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	log           logrus.FieldLogger
	mu            sync.RWMutex
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger used to report skipped presets
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a new configuration manager
func NewManager(configDir string, opts ...Option) (*Manager, error) {
	info, err := os.Stat(configDir)
	if err != nil {
		return nil, fmt.Errorf("config directory %s: %w", configDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config directory %s: not a directory", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.defaultConfig = m.findDefaultConfig()
	return m, nil
}

// LoadConfig loads a preset by name. The name may carry a file extension.
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	id := configID(name)

	m.mu.RLock()
	if config, exists := m.configs[id]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[id]; exists {
		return config, nil
	}

	path, ok := m.findFile(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, id)
	}

	config, err := ReadConfigFile(path)
	if err != nil {
		return nil, err
	}

	m.configs[id] = config
	return config, nil
}

// ListConfigs returns information about all valid presets, sorted by ID
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	seen := make(map[string]bool)
	var configs []*service.ConfigInfo

	for _, entry := range entries {
		if entry.IsDir() || !HasConfigExtension(entry.Name()) {
			continue
		}

		id := configID(entry.Name())
		if seen[id] {
			continue
		}
		seen[id] = true

		config, err := m.LoadConfig(id)
		if err != nil {
			m.log.WithError(err).WithField("file", entry.Name()).Warn("skipping preset")
			continue
		}

		path, _ := m.findFile(id)
		configs = append(configs, &service.ConfigInfo{
			Filename:     filepath.Base(path),
			ConfigID:     id,
			Name:         config.Name,
			Description:  config.Description,
			Size:         config.Size,
			ShuffleMoves: config.ShuffleMoves,
		})
	}

	slices.SortFunc(configs, func(a, b *service.ConfigInfo) int {
		return strings.Compare(a.ConfigID, b.ConfigID)
	})
	return configs, nil
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// RefreshCache drops cached presets and picks the default again
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	config := m.findDefaultConfig()

	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
}

// SaveConfig writes a preset to disk. An existing file keeps its format;
// new presets are written as YAML unless name ends in .json.
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	id := configID(name)
	path, exists := m.findFile(name)
	if !exists {
		ext := filepath.Ext(name)
		if !slices.Contains(Extensions, ext) {
			ext = ".yaml"
		}
		path = filepath.Join(m.configDir, id+ext)
	}

	data, err := encodeConfig(path, config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[id] = config
	m.mu.Unlock()

	return nil
}

// findDefaultConfig returns the classic preset, else the first valid
// preset, else the built-in default
func (m *Manager) findDefaultConfig() *engine.GameConfig {
	if config, err := m.LoadConfig(DefaultConfigName); err == nil {
		return config
	} else if !errors.Is(err, ErrConfigNotFound) {
		m.log.WithError(err).Warn("default preset is invalid")
	}

	configs, err := m.ListConfigs()
	if err == nil && len(configs) > 0 {
		if config, err := m.LoadConfig(configs[0].ConfigID); err == nil {
			return config
		}
	}

	return engine.DefaultGameConfig()
}

// findFile resolves a preset name to an existing file
func (m *Manager) findFile(name string) (string, bool) {
	if HasConfigExtension(name) {
		path := filepath.Join(m.configDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	id := configID(name)
	for _, ext := range Extensions {
		path := filepath.Join(m.configDir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// ReadConfigFile decodes and validates a single preset file. Files ending in
// .json are read as JSON, anything else as YAML.
func ReadConfigFile(path string) (*engine.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config engine.GameConfig
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, filepath.Base(path), err)
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &config, nil
}

func encodeConfig(path string, config *engine.GameConfig) ([]byte, error) {
	if filepath.Ext(path) == ".json" {
		return json.MarshalIndent(config, "", "  ")
	}
	return yaml.Marshal(config)
}

// HasConfigExtension reports whether name looks like a preset file
func HasConfigExtension(name string) bool {
	return slices.Contains(Extensions, filepath.Ext(name))
}

// configID strips a known preset extension from name
func configID(name string) string {
	if HasConfigExtension(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
