package cfg

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type ViperLoader struct {
	mu  sync.RWMutex
	v   *viper.Viper
	cfg *Config
}

func NewViperLoader() (*ViperLoader, error) {
	return &ViperLoader{
		v: viper.New(),
	}, nil
}

func (yl *ViperLoader) Load() (*Config, error) {
	yl.mu.RLock()
	if yl.cfg != nil {
		defer yl.mu.RUnlock()
		return yl.cfg, nil
	}
	yl.mu.RUnlock()

	if err := yl.loadConfig(); err != nil {
		return nil, err
	}

	if yl.IsWatchChange() {
		yl.v.WatchConfig()
		yl.v.OnConfigChange(func(e fsnotify.Event) {
			fmt.Printf("[INFO][CONFIG] Config file changed: %s\n", e.Name)
			if errReload := yl.reloadConfig(); errReload != nil {
				fmt.Printf("[ERROR][CONFIG] Failed to reload config: %v\n", errReload)
			}
		})
	}

	yl.mu.RLock()
	defer yl.mu.RUnlock()
	return yl.cfg, nil
}

func (yl *ViperLoader) IsWatchChange() bool {
	return true
}

func (yl *ViperLoader) loadConfig() error {
	yl.v.AddConfigPath("cfg/yaml")
	yl.v.SetConfigName("mode")
	yl.v.SetConfigType("yaml")

	// Secrets and credential overrides come from the environment,
	// never from the yaml file
	yl.v.BindEnv("githubapi.accesstoken", "GITHUB_TOKEN")
	yl.v.BindEnv("api.basicauthuser", "BASIC_AUTH_USER")
	yl.v.BindEnv("api.basicauthpass", "BASIC_AUTH_PASS")

	if err := yl.v.ReadInConfig(); err != nil {
		return fmt.Errorf("[ERROR][CONFIG] failed to read config file: %w", err)
	}

	// Unmarshal into the config
	cfg := &Config{}
	if err := yl.v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("[ERROR][CONFIG] failed to unmarshal config: %w", err)
	}

	yl.mu.Lock()
	yl.cfg = cfg
	yl.mu.Unlock()

	return nil
}

func (yl *ViperLoader) reloadConfig() error {
	cfg := &Config{}
	if err := yl.v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("[ERROR][CONFIG] failed to unmarshal config during reload: %w", err)
	}

	yl.mu.Lock()
	yl.cfg = cfg
	yl.mu.Unlock()

	fmt.Println("[INFO][CONFIG] Configuration reloaded successfully")
	return nil
}
