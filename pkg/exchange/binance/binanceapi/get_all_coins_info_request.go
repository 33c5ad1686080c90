package binanceapi

import (
	"encoding/json"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// NetworkInfo describes one deposit/withdraw network of a coin.
type NetworkInfo struct {
	Network                 string          `json:"network"`
	Name                    string          `json:"name"`
	Coin                    string          `json:"coin"`
	AddressRegex            string          `json:"addressRegex"`
	MemoRegex               string          `json:"memoRegex"`
	DepositEnable           bool            `json:"depositEnable"`
	DepositDesc             string          `json:"depositDesc"`
	WithdrawEnable          bool            `json:"withdrawEnable"`
	WithdrawDesc            string          `json:"withdrawDesc"`
	IsDefault               bool            `json:"isDefault"`
	WithdrawFee             decimal.Decimal `json:"withdrawFee"`
	WithdrawMin             decimal.Decimal `json:"withdrawMin"`
	WithdrawMax             decimal.Decimal `json:"withdrawMax"`
	WithdrawIntegerMultiple decimal.Decimal `json:"withdrawIntegerMultiple"`
	MinConfirm              int             `json:"minConfirm"`
	UnLockConfirm           int             `json:"unLockConfirm"`
	ResetAddressStatus      bool            `json:"resetAddressStatus"`
	SameAddress             bool            `json:"sameAddress"`
	SpecialTips             string          `json:"specialTips"`
	EstimatedArrivalTime    int64           `json:"estimatedArrivalTime"`
	Busy                    bool            `json:"busy"`
}

/*
CoinInfo is one element of the getall response:

	{
	    "coin": "BTC",
	    "depositAllEnable": true,
	    "free": "0.08074558",
	    "freeze": "0.00000000",
	    "ipoable": "0.00000000",
	    "ipoing": "0.00000000",
	    "isLegalMoney": false,
	    "locked": "0.00000000",
	    "name": "Bitcoin",
	    "networkList": [...],
	    "storage": "0.00000000",
	    "trading": true,
	    "withdrawAllEnable": true,
	    "withdrawing": "0.00000000"
	}
*/
type CoinInfo struct {
	Coin              string          `json:"coin"`
	Name              string          `json:"name"`
	DepositAllEnable  bool            `json:"depositAllEnable"`
	WithdrawAllEnable bool            `json:"withdrawAllEnable"`
	Free              decimal.Decimal `json:"free"`
	Freeze            decimal.Decimal `json:"freeze"`
	Locked            decimal.Decimal `json:"locked"`
	Ipoable           decimal.Decimal `json:"ipoable"`
	Ipoing            decimal.Decimal `json:"ipoing"`
	Storage           decimal.Decimal `json:"storage"`
	Withdrawing       decimal.Decimal `json:"withdrawing"`
	IsLegalMoney      bool            `json:"isLegalMoney"`
	Trading           bool            `json:"trading"`
	NetworkList       []NetworkInfo   `json:"networkList"`
}

// AllCoinsInfo is the getall response
type AllCoinsInfo []CoinInfo

func (l *AllCoinsInfo) Unmarshal(data []byte) error {
	var coins []CoinInfo
	if err := json.Unmarshal(data, &coins); err != nil {
		return newDecodeError(data, err)
	}

	if coins == nil {
		return newDecodeError(data, errors.New("coins info: expect an array"))
	}

	*l = coins
	return nil
}

func (l *AllCoinsInfo) Validate() error {
	for i, coin := range *l {
		if len(coin.Coin) == 0 {
			return newDecodeError(nil, errors.Errorf("coins info: missing coin at index %d", i))
		}
	}

	return nil
}

//go:generate GetRequest -url "/sapi/v1/capital/config/getall" -type GetAllCoinsInfoRequest -responseType .AllCoinsInfo
type GetAllCoinsInfoRequest struct {
	client requestgen.AuthenticatedAPIClient
}

func (c *RestClient) NewGetAllCoinsInfoRequest() *GetAllCoinsInfoRequest {
	return &GetAllCoinsInfoRequest{client: c}
}
