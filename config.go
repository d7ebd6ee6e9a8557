package aegis

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// Config names the external data the module may load at runtime. Only the
// VSOP87 ephemeris tables need configuring; everything else is pure
// computation.
type Config struct {
	VSOP87    bool
	VSOP87Dir string
}

var (
	cfgOnce sync.Once
	cfg     Config
	cfgErr  error
)

// LoadConfig reads conf.toml from the directory named by the AEGIS_CONFIG
// environment variable. Loaded once per process; subsequent calls return
// the cached result.
func LoadConfig() (Config, error) {
	cfgOnce.Do(func() {
		confPath := os.Getenv("AEGIS_CONFIG")
		if confPath == "" {
			cfgErr = fmt.Errorf("environment variable `AEGIS_CONFIG` is missing or empty")
			return
		}
		v := viper.New()
		v.SetConfigName("conf")
		v.AddConfigPath(confPath)
		if err := v.ReadInConfig(); err != nil {
			cfgErr = fmt.Errorf("%s/conf.toml not found: %w", confPath, err)
			return
		}
		cfg = Config{
			VSOP87:    v.GetBool("vsop87.enabled"),
			VSOP87Dir: v.GetString("vsop87.directory"),
		}
		if cfg.VSOP87 && cfg.VSOP87Dir == "" {
			cfgErr = fmt.Errorf("vsop87.enabled is set but vsop87.directory is empty")
		}
	})
	return cfg, cfgErr
}
