package cmdutil

import (
	"context"

	"github.com/c9s/bbgo-wallet/pkg/config"
	"github.com/c9s/bbgo-wallet/pkg/exchange"
	"github.com/c9s/bbgo-wallet/pkg/types"
)

// NewExchange constructs the wallet service of the exchange from the user config.
func NewExchange(ctx context.Context, n types.ExchangeName, c *config.Config) (types.ExchangeWalletService, error) {
	return exchange.New(ctx, n, &c.Binance)
}
