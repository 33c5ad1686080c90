package binanceapi

import (
	"encoding/json"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
)

//go:generate -command GetRequest requestgen -method GET
//go:generate -command PostRequest requestgen -method POST
//go:generate -command DeleteRequest requestgen -method DELETE

type DepositAddress struct {
	Address string `json:"address"`
	Coin    string `json:"coin"`

	// Tag is the memo of the address, nil when the network does not use memos.
	Tag *string `json:"tag,omitempty"`

	Url     string `json:"url"`
	Network string `json:"network,omitempty"`
}

// Unmarshal decodes the response body, an empty tag is treated as absent.
func (a *DepositAddress) Unmarshal(data []byte) error {
	type depositAddress DepositAddress
	var v depositAddress
	if err := json.Unmarshal(data, &v); err != nil {
		return newDecodeError(data, err)
	}

	if v.Tag != nil && len(*v.Tag) == 0 {
		v.Tag = nil
	}

	*a = DepositAddress(v)
	return nil
}

func (a *DepositAddress) Validate() error {
	if len(a.Address) == 0 {
		return newDecodeError(nil, errors.New("deposit address: missing address"))
	}

	if len(a.Coin) == 0 {
		return newDecodeError(nil, errors.New("deposit address: missing coin"))
	}

	return nil
}

//go:generate GetRequest -url "/sapi/v1/capital/deposit/address" -type GetDepositAddressRequest -responseType .DepositAddress
type GetDepositAddressRequest struct {
	client requestgen.AuthenticatedAPIClient

	coin string `param:"coin,required"`

	network *string `param:"network"`
}

func (c *RestClient) NewGetDepositAddressRequest() *GetDepositAddressRequest {
	return &GetDepositAddressRequest{client: c}
}
