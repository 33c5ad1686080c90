package binanceapi

import (
	"encoding/json"
	"sort"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

/*
AssetDetail is one value of the assetDetail response, keyed by the asset:

	{
	    "CTR": {
	        "minWithdrawAmount": "70.00000000",
	        "depositStatus": false,
	        "withdrawFee": 35,
	        "withdrawStatus": true,
	        "depositTip": "Delisted, Deposit Suspended"
	    }
	}
*/
type AssetDetail struct {
	MinWithdrawAmount decimal.Decimal `json:"minWithdrawAmount"`
	DepositStatus     bool            `json:"depositStatus"`
	WithdrawFee       decimal.Decimal `json:"withdrawFee"`
	WithdrawStatus    bool            `json:"withdrawStatus"`

	// DepositTip is only sent when the deposit is suspended
	DepositTip *string `json:"depositTip,omitempty"`
}

type AssetDetailMap map[string]AssetDetail

func (m *AssetDetailMap) Unmarshal(data []byte) error {
	var details map[string]AssetDetail
	if err := json.Unmarshal(data, &details); err != nil {
		return newDecodeError(data, err)
	}

	if details == nil {
		return newDecodeError(data, errors.New("asset detail: expect an object"))
	}

	*m = details
	return nil
}

// Assets returns the asset symbols in sorted order.
func (m AssetDetailMap) Assets() []string {
	assets := make([]string, 0, len(m))
	for asset := range m {
		assets = append(assets, asset)
	}

	sort.Strings(assets)
	return assets
}

//go:generate GetRequest -url "/sapi/v1/asset/assetDetail" -type GetAssetDetailRequest -responseType .AssetDetailMap
type GetAssetDetailRequest struct {
	client requestgen.AuthenticatedAPIClient

	asset *string `param:"asset"`
}

func (c *RestClient) NewGetAssetDetailRequest() *GetAssetDetailRequest {
	return &GetAssetDetailRequest{client: c}
}
