package cli

import (
	"fmt"

	"github.com/katalvlaran/seqalign/align"
)

// scoringConfig is the viper view of align.Scoring.
// Precedence: flag > SEQALIGN_* env > config file > default.
type scoringConfig struct {
	Match    int `mapstructure:"match"`
	Mismatch int `mapstructure:"mismatch"`
	Gap      int `mapstructure:"gap"`
}

// loadConfig reads the --config file, if any.
func (a *app) loadConfig() error {
	if a.cfg == "" {
		return nil
	}
	a.v.SetConfigFile(a.cfg)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", a.cfg, err)
	}

	return nil
}

// scoring resolves the effective scoring scheme.
func (a *app) scoring() (align.Scoring, error) {
	var c scoringConfig
	if err := a.v.Unmarshal(&c); err != nil {
		return align.Scoring{}, fmt.Errorf("decode scoring: %w", err)
	}

	return align.Scoring(c), nil
}
