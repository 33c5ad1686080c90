package binance

import (
	"context"
	"crypto/ed25519"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bbgo-wallet/pkg/exchange/binance/binanceapi"
	"github.com/c9s/bbgo-wallet/pkg/types"
)

var log = logrus.WithFields(logrus.Fields{
	"exchange": "binance",
})

func init() {
	_ = types.ExchangeWalletService(&Exchange{})
	_ = types.ExchangeTimeService(&Exchange{})
}

// Exchange is the binance wallet endpoint client. The credentials and the
// receive window are fixed at construction, so one Exchange can be shared
// by concurrent callers.
type Exchange struct {
	client *binanceapi.RestClient
}

func New(key, secret string, options ...binanceapi.Option) *Exchange {
	client := binanceapi.NewClient("", options...)
	client.Auth(key, secret)
	return &Exchange{client: client}
}

// NewWithEd25519 creates the exchange with an Ed25519 api key.
func NewWithEd25519(key string, privateKey ed25519.PrivateKey, options ...binanceapi.Option) *Exchange {
	client := binanceapi.NewClient("", options...)
	client.AuthEd25519(key, privateKey)
	return &Exchange{client: client}
}

// NewFromClient wraps an already authenticated rest client.
func NewFromClient(client *binanceapi.RestClient) *Exchange {
	return &Exchange{client: client}
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeBinance
}

func (e *Exchange) RecvWindow() time.Duration {
	return e.client.RecvWindow()
}

// SyncServerTime updates the clock offset used for the request timestamps and returns it.
func (e *Exchange) SyncServerTime(ctx context.Context) (time.Duration, error) {
	if err := e.client.SetTimeOffsetFromServer(ctx); err != nil {
		return 0, err
	}

	return e.client.TimeOffset(), nil
}

// QueryAllCoins returns all coins available for deposit and withdraw.
func (e *Exchange) QueryAllCoins(ctx context.Context) ([]types.Coin, error) {
	log.Debug("querying all coins info...")

	coins, err := e.client.NewGetAllCoinsInfoRequest().Do(ctx)
	if err != nil {
		return nil, err
	}

	globalCoins := make([]types.Coin, 0, len(coins))
	for _, c := range coins {
		globalCoins = append(globalCoins, toGlobalCoin(c))
	}

	log.Debugf("%d coins loaded", len(globalCoins))
	return globalCoins, nil
}

// QueryAssetDetails returns the details of the given asset, or of all assets when asset is nil.
func (e *Exchange) QueryAssetDetails(ctx context.Context, asset *string) (types.AssetDetailMap, error) {
	req := e.client.NewGetAssetDetailRequest()
	if asset != nil {
		req.Asset(*asset)
	}

	log.Debugf("querying asset details: %s", optionalString(asset))

	details, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	return toGlobalAssetDetails(details), nil
}

// QueryDepositAddress returns the deposit address of the coin.
// When network is nil, the address of the default network is returned.
func (e *Exchange) QueryDepositAddress(ctx context.Context, coin string, network *string) (*types.DepositAddress, error) {
	if len(coin) == 0 {
		return nil, errors.New("coin is required for querying deposit address")
	}

	req := e.client.NewGetDepositAddressRequest().Coin(coin)
	if network != nil {
		req.Network(*network)
	}

	log.Debugf("querying deposit address: coin=%s network=%s", coin, optionalString(network))

	address, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	return toGlobalDepositAddress(address, network), nil
}

func optionalString(s *string) string {
	if s == nil {
		return "<none>"
	}

	return *s
}
