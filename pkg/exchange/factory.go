package exchange

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bbgo-wallet/pkg/config"
	"github.com/c9s/bbgo-wallet/pkg/exchange/binance"
	"github.com/c9s/bbgo-wallet/pkg/exchange/binance/binanceapi"
	"github.com/c9s/bbgo-wallet/pkg/types"
	"github.com/c9s/bbgo-wallet/pkg/util"
)

// WalletServiceConstructor creates the wallet service of an exchange from the api config
type WalletServiceConstructor func(ctx context.Context, c *config.BinanceConfig) (types.ExchangeWalletService, error)

type ExchangeFactory struct {
	Constructor WalletServiceConstructor
}

var exchangeFactories = map[types.ExchangeName]ExchangeFactory{
	types.ExchangeBinance: {
		Constructor: func(ctx context.Context, c *config.BinanceConfig) (types.ExchangeWalletService, error) {
			return NewBinance(ctx, c)
		},
	},
}

func RegisterExchange(name types.ExchangeName, factory ExchangeFactory) {
	exchangeFactories[name] = factory

	for _, n := range types.SupportedExchanges {
		if n == name {
			return
		}
	}

	types.SupportedExchanges = append(types.SupportedExchanges, name)
}

func New(ctx context.Context, n types.ExchangeName, c *config.BinanceConfig) (types.ExchangeWalletService, error) {
	factory, existing := exchangeFactories[n]
	if !existing {
		return nil, fmt.Errorf("unsupported exchange: %v", n)
	}

	if factory.Constructor == nil {
		return nil, fmt.Errorf("exchange factory %v does not support constructor", n)
	}

	return factory.Constructor(ctx, c)
}

// NewBinanceRestClient builds the binance rest client from the config, signing with
// the Ed25519 private key when PrivateKeyFile is set and HMAC otherwise.
func NewBinanceRestClient(c *config.BinanceConfig) (*binanceapi.RestClient, error) {
	options := []binanceapi.Option{
		binanceapi.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
		binanceapi.WithRecvWindow(c.RecvWindow),
		binanceapi.WithMaxRetries(c.MaxRetries),
	}

	limiter, err := c.RateLimiter()
	if err != nil {
		return nil, errors.Wrap(err, "binance: invalid rate limit")
	}

	if limiter != nil {
		options = append(options, binanceapi.WithRateLimiter(limiter))
	}

	client := binanceapi.NewClient(c.BaseURL, options...)

	logrus.Debugf("binance api key: %s, recvWindow: %s, maxRetries: %d", util.MaskKey(c.Key), c.RecvWindow, c.MaxRetries)

	if len(c.PrivateKeyFile) > 0 {
		privateKey, err := c.LoadPrivateKey()
		if err != nil {
			return nil, err
		}

		client.AuthEd25519(c.Key, privateKey)
	} else {
		client.Auth(c.Key, c.Secret)
	}

	return client, nil
}

// NewBinance constructs the binance exchange from the config, and synchronizes
// the server time first when SyncServerTime is enabled.
func NewBinance(ctx context.Context, c *config.BinanceConfig) (*binance.Exchange, error) {
	client, err := NewBinanceRestClient(c)
	if err != nil {
		return nil, err
	}

	ex := binance.NewFromClient(client)
	if c.SyncServerTime {
		offset, err := ex.SyncServerTime(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "unable to sync server time")
		}

		logrus.Infof("binance server time offset: %s", offset)
	}

	return ex, nil
}
