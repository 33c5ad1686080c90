package binanceapi

import (
	"encoding/json"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"

	"github.com/c9s/bbgo-wallet/pkg/types"
)

type ServerTime struct {
	ServerTime types.MillisecondTimestamp `json:"serverTime"`
}

func (t *ServerTime) Unmarshal(data []byte) error {
	type serverTime ServerTime
	var v serverTime
	if err := json.Unmarshal(data, &v); err != nil {
		return newDecodeError(data, err)
	}

	*t = ServerTime(v)
	return nil
}

func (t *ServerTime) Validate() error {
	if t.ServerTime.Time().IsZero() {
		return newDecodeError(nil, errors.New("server time: missing serverTime"))
	}

	return nil
}

//go:generate GetRequest -url "/api/v3/time" -type GetServerTimeRequest -responseType .ServerTime
type GetServerTimeRequest struct {
	client requestgen.APIClient
}

func (c *RestClient) NewGetServerTimeRequest() *GetServerTimeRequest {
	return &GetServerTimeRequest{client: c}
}
