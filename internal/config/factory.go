package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/sudostake/vault-indexer/pkg"
)

// FactoryConfig is one trusted factory deployment and the rpc it is served from.
type FactoryConfig struct {
	ID        string `mapstructure:"id"`
	RPCOrigin string `mapstructure:"rpc-origin"`
}

// FactoriesConfig is the whitelist of factories. It's a list instead of a map
// because factory ids contain dots, which viper treats as key delimiters.
type FactoriesConfig []FactoryConfig

func (cfg FactoriesConfig) Validate() error {
	if len(cfg) == 0 {
		return errors.New("at least one factory must be configured")
	}

	seen := make(map[string]struct{}, len(cfg))
	for _, f := range cfg {
		if !pkg.IsValidAccountID(f.ID) {
			return fmt.Errorf("invalid factory id %q", f.ID)
		}

		if _, ok := seen[f.ID]; ok {
			return fmt.Errorf("duplicate factory id %q", f.ID)
		}
		seen[f.ID] = struct{}{}

		u, err := url.Parse(f.RPCOrigin)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("invalid rpc-origin %q for factory %s", f.RPCOrigin, f.ID)
		}
	}

	return nil
}

// RPCOrigins returns factory id -> rpc origin lookup.
func (cfg FactoriesConfig) RPCOrigins() map[string]string {
	origins := make(map[string]string, len(cfg))
	for _, f := range cfg {
		origins[f.ID] = f.RPCOrigin
	}
	return origins
}

func (cfg FactoriesConfig) IDs() []string {
	ids := make([]string, 0, len(cfg))
	for _, f := range cfg {
		ids = append(ids, f.ID)
	}
	return ids
}
