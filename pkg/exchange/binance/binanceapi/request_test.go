package binanceapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDepositAddressRequest_Parameters(t *testing.T) {
	client := NewClient("")

	t.Run("without network", func(t *testing.T) {
		query, err := client.NewGetDepositAddressRequest().Coin("ETH").GetParametersQuery()
		require.NoError(t, err)
		assert.Equal(t, "ETH", query.Get("coin"))
		assert.NotContains(t, query, "network")
	})

	t.Run("with network", func(t *testing.T) {
		query, err := client.NewGetDepositAddressRequest().Coin("USDT").Network("TRX").GetParametersQuery()
		require.NoError(t, err)
		assert.Equal(t, []string{"USDT"}, query["coin"])
		assert.Equal(t, []string{"TRX"}, query["network"])
	})

	t.Run("empty network is still sent when given", func(t *testing.T) {
		params, err := client.NewGetDepositAddressRequest().Coin("USDT").Network("").GetParameters()
		require.NoError(t, err)
		assert.Contains(t, params, "network")
	})

	t.Run("coin is required", func(t *testing.T) {
		_, err := client.NewGetDepositAddressRequest().GetParameters()
		assert.Error(t, err)
	})
}

func TestGetAssetDetailRequest_Parameters(t *testing.T) {
	client := NewClient("")

	query, err := client.NewGetAssetDetailRequest().GetParametersQuery()
	require.NoError(t, err)
	assert.Empty(t, query)
	assert.NotContains(t, query, "asset")

	query, err = client.NewGetAssetDetailRequest().Asset("BTC").GetParametersQuery()
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC"}, query["asset"])
	assert.Len(t, query, 1)
}

func TestGetAllCoinsInfoRequest_Parameters(t *testing.T) {
	query, err := NewClient("").NewGetAllCoinsInfoRequest().GetParametersQuery()
	require.NoError(t, err)
	assert.Empty(t, query)
}
