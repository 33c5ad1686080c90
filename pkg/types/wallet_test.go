package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestAssetDetailMap_Sorted(t *testing.T) {
	m := AssetDetailMap{
		"USDT": {Asset: "USDT"},
		"BTC":  {Asset: "BTC"},
		"ETH":  {Asset: "ETH"},
	}

	assert.Equal(t, []string{"BTC", "ETH", "USDT"}, m.Assets())

	var assets []string
	for _, d := range m.Sorted() {
		assets = append(assets, d.Asset)
	}
	assert.Equal(t, m.Assets(), assets)

	assert.Empty(t, AssetDetailMap{}.Sorted())
}

func TestCoin_Network(t *testing.T) {
	coin := Coin{
		Coin: "USDT",
		Networks: []CoinNetwork{
			{Network: "ETH", Coin: "USDT"},
			{Network: "TRX", Coin: "USDT", Default: true},
		},
	}

	n, ok := coin.DefaultNetwork()
	assert.True(t, ok)
	assert.Equal(t, "TRX", n.Network)

	n, ok = coin.Network("ETH")
	assert.True(t, ok)
	assert.Equal(t, "ETH", n.Network)

	_, ok = coin.Network("SOL")
	assert.False(t, ok)

	_, ok = Coin{Coin: "XYZ"}.DefaultNetwork()
	assert.False(t, ok)
}

func TestDepositAddress_YAML(t *testing.T) {
	out, err := yaml.Marshal(DepositAddress{
		Exchange: ExchangeBinance,
		Asset:    "ETH",
		Address:  "bc1qxyz",
	})
	assert.NoError(t, err)
	assert.Equal(t, "exchange: binance\nasset: ETH\naddress: bc1qxyz\n", string(out))
}

func TestAssetDetail_YAMLDecimal(t *testing.T) {
	out, err := yaml.Marshal(AssetDetail{
		Asset:       "BTC",
		WithdrawFee: decimal.RequireFromString("0.0005"),
	})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `withdrawFee: "0.0005"`)
}
