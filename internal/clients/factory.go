package clients

import (
	"log/slog"
	"strings"

	"golang.org/x/time/rate"

	"github.com/spacesedan/redlytics/config"
)

// NewChainFromConfig assembles the adapter order: OAuth (when credentials are
// configured), then every RELAY_URLS entry in order.
func NewChainFromConfig(cfg config.Config) *Chain {
	var adapters []Adapter

	if cfg.RedditClientID != "" && cfg.RedditClientSecret != "" {
		adapters = append(adapters, NewOAuthAdapter(cfg.RedditClientID, cfg.RedditClientSecret, cfg.HTTPTimeout))
	}

	for _, entry := range cfg.RelayURLs {
		if strings.EqualFold(entry, "direct") {
			adapters = append(adapters, NewDirectAdapter(cfg.HTTPTimeout))
			continue
		}
		adapters = append(adapters, NewRelayAdapter(entry, cfg.HTTPTimeout))
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	chain := NewChain(limiter, adapters...)
	slog.Info("[TransportChain] Configured adapters",
		slog.Any("adapters", chain.Adapters()))
	return chain
}
