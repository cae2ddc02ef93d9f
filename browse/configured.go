package browse

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/player"
	"github.com/streamflix-cli/streamflix/provider"
	"github.com/streamflix-cli/streamflix/query"
	"github.com/streamflix-cli/streamflix/view"
)

// Configured builds a Browser from settings: the default provider, the configured player
// and the process-wide query session. An unusable player disables autoplay instead of failing.
func Configured(sinks *view.Sinks) (*Browser, error) {
	src, err := provider.Default()
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}

	options := Options{
		Source:           src,
		Sinks:            sinks,
		Autoplay:         viper.GetBool(key.PlayerAutoplay),
		MinKeywordLength: viper.GetInt(key.SearchMinLength),
		Queries:          query.Global(),
	}

	p, err := player.New(viper.GetString(key.Player), viper.GetStringSlice(key.PlayerArgs))
	if err != nil {
		log.Warnf("player disabled: %s", err)
	} else {
		options.Player = p
	}

	return New(options), nil
}
