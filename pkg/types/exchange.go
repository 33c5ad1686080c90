package types

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type ExchangeName string

func (n *ExchangeName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	name, err := ValidExchangeName(s)
	if err != nil {
		return err
	}

	*n = name
	return nil
}

func (n ExchangeName) String() string {
	return string(n)
}

const (
	ExchangeBinance = ExchangeName("binance")
)

var SupportedExchanges = []ExchangeName{ExchangeBinance}

func ValidExchangeName(a string) (ExchangeName, error) {
	switch strings.ToLower(a) {
	case "binance", "bn":
		return ExchangeBinance, nil
	}

	return "", fmt.Errorf("invalid exchange name: %s", a)
}

//go:generate mockgen -destination=mocks/mock_exchange_wallet.go -package=mocks . ExchangeWalletService

// ExchangeWalletService queries the deposit/withdraw configuration of the
// account assets. Optional filters are pointers, nil means not sent.
type ExchangeWalletService interface {
	Name() ExchangeName

	QueryAllCoins(ctx context.Context) ([]Coin, error)

	QueryAssetDetails(ctx context.Context, asset *string) (AssetDetailMap, error)

	QueryDepositAddress(ctx context.Context, coin string, network *string) (*DepositAddress, error)
}

// ExchangeTimeService synchronizes the request clock with the exchange server.
type ExchangeTimeService interface {
	SyncServerTime(ctx context.Context) (time.Duration, error)
}
