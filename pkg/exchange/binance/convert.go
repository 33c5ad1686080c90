package binance

import (
	"github.com/c9s/bbgo-wallet/pkg/exchange/binance/binanceapi"
	"github.com/c9s/bbgo-wallet/pkg/types"
)

func toGlobalCoinNetwork(n binanceapi.NetworkInfo) types.CoinNetwork {
	return types.CoinNetwork{
		Network:          n.Network,
		Name:             n.Name,
		Coin:             n.Coin,
		Default:          n.IsDefault,
		HasMemo:          len(n.MemoRegex) > 0,
		DepositEnabled:   n.DepositEnable,
		WithdrawEnabled:  n.WithdrawEnable,
		WithdrawFee:      n.WithdrawFee,
		WithdrawMin:      n.WithdrawMin,
		WithdrawMax:      n.WithdrawMax,
		WithdrawMultiple: n.WithdrawIntegerMultiple,
		MinConfirm:       n.MinConfirm,
		UnlockConfirm:    n.UnLockConfirm,
		AddressRegex:     n.AddressRegex,
		MemoRegex:        n.MemoRegex,
		SpecialTips:      n.SpecialTips,
	}
}

func toGlobalCoin(c binanceapi.CoinInfo) types.Coin {
	coin := types.Coin{
		Exchange:        types.ExchangeBinance,
		Coin:            c.Coin,
		Name:            c.Name,
		DepositEnabled:  c.DepositAllEnable,
		WithdrawEnabled: c.WithdrawAllEnable,
		Trading:         c.Trading,
		IsLegalMoney:    c.IsLegalMoney,
		Free:            c.Free,
		Locked:          c.Locked,
		Freeze:          c.Freeze,
		Withdrawing:     c.Withdrawing,
	}

	for _, n := range c.NetworkList {
		coin.Networks = append(coin.Networks, toGlobalCoinNetwork(n))
	}

	return coin
}

func toGlobalAssetDetails(m binanceapi.AssetDetailMap) types.AssetDetailMap {
	details := make(types.AssetDetailMap, len(m))
	for asset, d := range m {
		details[asset] = types.AssetDetail{
			Asset:             asset,
			MinWithdrawAmount: d.MinWithdrawAmount,
			WithdrawFee:       d.WithdrawFee,
			DepositEnabled:    d.DepositStatus,
			WithdrawEnabled:   d.WithdrawStatus,
			DepositTip:        d.DepositTip,
		}
	}

	return details
}

func toGlobalDepositAddress(a *binanceapi.DepositAddress, network *string) *types.DepositAddress {
	address := &types.DepositAddress{
		Exchange:   types.ExchangeBinance,
		Asset:      a.Coin,
		Address:    a.Address,
		AddressTag: a.Tag,
		Network:    a.Network,
		URL:        a.Url,
	}

	if len(address.Network) == 0 && network != nil {
		address.Network = *network
	}

	return address
}
