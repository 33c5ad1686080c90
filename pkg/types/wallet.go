package types

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CoinNetwork is one network (chain) a coin can be deposited to or withdrawn from.
type CoinNetwork struct {
	Network string `json:"network" yaml:"network"`
	Name    string `json:"name" yaml:"name"`
	Coin    string `json:"coin" yaml:"coin"`
	Default bool   `json:"default" yaml:"default"`
	HasMemo bool   `json:"hasMemo" yaml:"hasMemo"`

	DepositEnabled  bool `json:"depositEnabled" yaml:"depositEnabled"`
	WithdrawEnabled bool `json:"withdrawEnabled" yaml:"withdrawEnabled"`

	WithdrawFee      decimal.Decimal `json:"withdrawFee" yaml:"withdrawFee"`
	WithdrawMin      decimal.Decimal `json:"withdrawMin" yaml:"withdrawMin"`
	WithdrawMax      decimal.Decimal `json:"withdrawMax" yaml:"withdrawMax"`
	WithdrawMultiple decimal.Decimal `json:"withdrawMultiple" yaml:"withdrawMultiple"`

	MinConfirm    int `json:"minConfirm" yaml:"minConfirm"`
	UnlockConfirm int `json:"unlockConfirm" yaml:"unlockConfirm"`

	AddressRegex string `json:"addressRegex,omitempty" yaml:"addressRegex,omitempty"`
	MemoRegex    string `json:"memoRegex,omitempty" yaml:"memoRegex,omitempty"`
	SpecialTips  string `json:"specialTips,omitempty" yaml:"specialTips,omitempty"`
}

// Coin describes one asset with its deposit/withdraw networks.
type Coin struct {
	Exchange ExchangeName `json:"exchange" yaml:"exchange"`
	Coin     string       `json:"coin" yaml:"coin"`
	Name     string       `json:"name" yaml:"name"`

	DepositEnabled  bool `json:"depositEnabled" yaml:"depositEnabled"`
	WithdrawEnabled bool `json:"withdrawEnabled" yaml:"withdrawEnabled"`
	Trading         bool `json:"trading" yaml:"trading"`
	IsLegalMoney    bool `json:"isLegalMoney" yaml:"isLegalMoney"`

	Free        decimal.Decimal `json:"free" yaml:"free"`
	Locked      decimal.Decimal `json:"locked" yaml:"locked"`
	Freeze      decimal.Decimal `json:"freeze" yaml:"freeze"`
	Withdrawing decimal.Decimal `json:"withdrawing" yaml:"withdrawing"`

	Networks []CoinNetwork `json:"networks" yaml:"networks"`
}

// DefaultNetwork returns the network used when no network is given.
func (c Coin) DefaultNetwork() (CoinNetwork, bool) {
	for _, n := range c.Networks {
		if n.Default {
			return n, true
		}
	}

	return CoinNetwork{}, false
}

func (c Coin) Network(network string) (CoinNetwork, bool) {
	for _, n := range c.Networks {
		if n.Network == network {
			return n, true
		}
	}

	return CoinNetwork{}, false
}

type AssetDetail struct {
	Asset             string          `json:"asset" yaml:"asset"`
	MinWithdrawAmount decimal.Decimal `json:"minWithdrawAmount" yaml:"minWithdrawAmount"`
	WithdrawFee       decimal.Decimal `json:"withdrawFee" yaml:"withdrawFee"`
	DepositEnabled    bool            `json:"depositEnabled" yaml:"depositEnabled"`
	WithdrawEnabled   bool            `json:"withdrawEnabled" yaml:"withdrawEnabled"`

	// DepositTip is the reason of a suspended deposit, nil when not given
	DepositTip *string `json:"depositTip,omitempty" yaml:"depositTip,omitempty"`
}

// AssetDetailMap maps the asset symbol to its detail.
// Iterate with Assets or Sorted to get a deterministic order.
type AssetDetailMap map[string]AssetDetail

// Assets returns the asset symbols in sorted order.
func (m AssetDetailMap) Assets() []string {
	assets := make([]string, 0, len(m))
	for asset := range m {
		assets = append(assets, asset)
	}

	sort.Strings(assets)
	return assets
}

// Sorted returns the details sorted by the asset symbol.
func (m AssetDetailMap) Sorted() []AssetDetail {
	details := make([]AssetDetail, 0, len(m))
	for _, asset := range m.Assets() {
		details = append(details, m[asset])
	}

	return details
}

type DepositAddress struct {
	Exchange ExchangeName `json:"exchange" yaml:"exchange"`
	Asset    string       `json:"asset" yaml:"asset"`
	Address  string       `json:"address" yaml:"address"`

	// AddressTag is the memo/tag, nil when the network does not use one
	AddressTag *string `json:"addressTag,omitempty" yaml:"addressTag,omitempty"`

	// Network is empty when the default network of the asset is used
	Network string `json:"network,omitempty" yaml:"network,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
}
