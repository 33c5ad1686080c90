package binanceapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/c9s/bbgo-wallet/pkg/testing/httptesting"
	"github.com/c9s/bbgo-wallet/pkg/testutil"
)

func getTestClientOrSkip(t *testing.T) *RestClient {
	key, secret, ok := testutil.IntegrationTestConfigured(t, "BINANCE")
	if !ok {
		t.SkipNow()
		return nil
	}

	client := NewClient("")
	client.Auth(key, secret)
	return client
}

// tickingClock returns a clock that advances one millisecond on every call
func tickingClock() func() time.Time {
	var ms atomic.Int64
	ms.Store(1700000000000)
	return func() time.Time {
		return time.UnixMilli(ms.Add(1))
	}
}

func newMockClient(transport *httptesting.MockTransport, options ...Option) *RestClient {
	options = append([]Option{
		WithHTTPClient(&http.Client{Transport: transport}),
		WithClock(tickingClock()),
		WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }),
	}, options...)

	client := NewClient("", options...)
	client.Auth("test-key", "test-secret")
	return client
}

func replyString(code int, body string) httptesting.RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(code, body), nil
	}
}

func TestClient_GetDepositAddressRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/capital/deposit/address", replyString(http.StatusOK, `{"address":"0xabc","coin":"ETH","network":"ETH"}`))

	client := newMockClient(transport)
	address, err := client.NewGetDepositAddressRequest().Coin("ETH").Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &DepositAddress{
		Address: "0xabc",
		Coin:    "ETH",
		Network: "ETH",
	}, address)
	assert.Nil(t, address.Tag)

	requests := transport.Requests()
	require.Len(t, requests, 1)

	req := requests[0]
	query := req.URL.Query()
	assert.Equal(t, "test-key", req.Header.Get("X-MBX-APIKEY"))
	assert.Equal(t, "ETH", query.Get("coin"))
	assert.NotContains(t, query, "network")
	assert.Equal(t, "5000", query.Get("recvWindow"))
	assert.NotEmpty(t, query.Get("timestamp"))

	// the signature covers everything sent before it
	signature := query.Get("signature")
	query.Del("signature")
	assert.Equal(t, signHMAC("test-secret", query.Encode()), signature)
}

func TestClient_GetDepositAddressRequest_WithNetworkAndTag(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/capital/deposit/address", replyString(http.StatusOK, `{
		"address": "bnb136ns6lfw4zs5hg4n85vdthaad7hq5m4gtkgf23",
		"coin": "BNB",
		"tag": "101254983",
		"url": "https://explorer.binance.org/address/bnb136ns6lfw4zs5hg4n85vdthaad7hq5m4gtkgf23"
	}`))

	client := newMockClient(transport, WithRecvWindow(10*time.Second))
	address, err := client.NewGetDepositAddressRequest().Coin("BNB").Network("BNB").Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, address.Tag)
	assert.Equal(t, "101254983", *address.Tag)

	query := transport.Requests()[0].URL.Query()
	assert.Equal(t, "BNB", query.Get("network"))
	assert.Equal(t, "10000", query.Get("recvWindow"))
}

func TestClient_GetDepositAddressRequest_EmptyTag(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/capital/deposit/address", replyString(http.StatusOK, `{"address":"1HPn8Rx2y6nNSfagQBKy27GB99Vbzg89wv","coin":"BTC","tag":"","url":""}`))

	address, err := newMockClient(transport).NewGetDepositAddressRequest().Coin("BTC").Do(context.Background())
	require.NoError(t, err)
	assert.Nil(t, address.Tag)
}

func TestClient_DecodeError(t *testing.T) {
	cases := []struct {
		name string
		path string
		body string
		do   func(client *RestClient) error
	}{
		{
			name: "malformed deposit address",
			path: "/sapi/v1/capital/deposit/address",
			body: `{"address":`,
			do: func(client *RestClient) error {
				_, err := client.NewGetDepositAddressRequest().Coin("ETH").Do(context.Background())
				return err
			},
		},
		{
			name: "deposit address without address",
			path: "/sapi/v1/capital/deposit/address",
			body: `{"coin":"ETH"}`,
			do: func(client *RestClient) error {
				_, err := client.NewGetDepositAddressRequest().Coin("ETH").Do(context.Background())
				return err
			},
		},
		{
			name: "coins info is not an array",
			path: "/sapi/v1/capital/config/getall",
			body: `{"coin":"BTC"}`,
			do: func(client *RestClient) error {
				_, err := client.NewGetAllCoinsInfoRequest().Do(context.Background())
				return err
			},
		},
		{
			name: "coins info null",
			path: "/sapi/v1/capital/config/getall",
			body: `null`,
			do: func(client *RestClient) error {
				_, err := client.NewGetAllCoinsInfoRequest().Do(context.Background())
				return err
			},
		},
		{
			name: "coin fee is not a number",
			path: "/sapi/v1/capital/config/getall",
			body: `[{"coin":"BTC","networkList":[{"network":"BTC","withdrawFee":"abc"}]}]`,
			do: func(client *RestClient) error {
				_, err := client.NewGetAllCoinsInfoRequest().Do(context.Background())
				return err
			},
		},
		{
			name: "asset detail is an array",
			path: "/sapi/v1/asset/assetDetail",
			body: `[]`,
			do: func(client *RestClient) error {
				_, err := client.NewGetAssetDetailRequest().Do(context.Background())
				return err
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			transport := &httptesting.MockTransport{}
			transport.GET(c.path, replyString(http.StatusOK, c.body))

			err := c.do(newMockClient(transport, WithMaxRetries(3)))
			require.Error(t, err)
			assert.True(t, IsDecodeError(err), "expect decode error, got %T: %v", err, err)

			// decode errors are never retried
			assert.Len(t, transport.Requests(), 1)
		})
	}
}

func TestClient_GetAllCoinsInfoRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/capital/config/getall", replyString(http.StatusOK, `[
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
			"networkList": [
				{
					"addressRegex": "^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$|^(bc1)[0-9A-Za-z]{39,59}$",
					"coin": "BTC",
					"depositEnable": true,
					"isDefault": true,
					"memoRegex": "",
					"minConfirm": 1,
					"name": "BTC",
					"network": "BTC",
					"resetAddressStatus": false,
					"specialTips": "",
					"unLockConfirm": 2,
					"withdrawEnable": true,
					"withdrawFee": "0.00050000",
					"withdrawIntegerMultiple": "0.00000001",
					"withdrawMax": "750",
					"withdrawMin": "0.00100000",
					"sameAddress": false
				}
			],
			"storage": "0.00000000",
			"trading": true,
			"withdrawAllEnable": true,
			"withdrawing": "0.00000000"
		}
	]`))

	coins, err := newMockClient(transport).NewGetAllCoinsInfoRequest().Do(context.Background())
	require.NoError(t, err)
	require.Len(t, coins, 1)

	coin := coins[0]
	assert.Equal(t, "BTC", coin.Coin)
	assert.Equal(t, "Bitcoin", coin.Name)
	assert.True(t, coin.DepositAllEnable)
	assert.True(t, coin.Free.Equal(decimal.RequireFromString("0.08074558")))
	require.Len(t, coin.NetworkList, 1)

	network := coin.NetworkList[0]
	assert.Equal(t, "BTC", network.Network)
	assert.True(t, network.IsDefault)
	assert.Equal(t, 2, network.UnLockConfirm)
	assert.True(t, network.WithdrawFee.Equal(decimal.RequireFromString("0.0005")))
	assert.True(t, network.WithdrawMax.Equal(decimal.NewFromInt(750)))

	query := transport.Requests()[0].URL.Query()
	assert.ElementsMatch(t, []string{"recvWindow", "timestamp", "signature"}, keys(query))
}

func TestClient_GetAssetDetailRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/asset/assetDetail", replyString(http.StatusOK, `{
		"SKY": {"minWithdrawAmount": "0.02000000", "depositStatus": true, "withdrawFee": 0.01, "withdrawStatus": true},
		"CTR": {"minWithdrawAmount": "70.00000000", "depositStatus": false, "withdrawFee": 35, "withdrawStatus": true, "depositTip": "Delisted, Deposit Suspended"},
		"BTC": {"minWithdrawAmount": "0.00100000", "depositStatus": true, "withdrawFee": "0.0005", "withdrawStatus": true}
	}`))

	details, err := newMockClient(transport).NewGetAssetDetailRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC", "CTR", "SKY"}, details.Assets())

	ctr := details["CTR"]
	assert.False(t, ctr.DepositStatus)
	assert.True(t, ctr.WithdrawFee.Equal(decimal.NewFromInt(35)))
	require.NotNil(t, ctr.DepositTip)
	assert.Equal(t, "Delisted, Deposit Suspended", *ctr.DepositTip)
	assert.Nil(t, details["BTC"].DepositTip)

	assert.NotContains(t, transport.Requests()[0].URL.Query(), "asset")
}

func TestClient_ErrorClassification(t *testing.T) {
	cases := []struct {
		name     string
		code     int
		body     string
		check    func(err error) bool
		attempts int
	}{
		{"invalid api key", http.StatusUnauthorized, `{"code":-2015,"msg":"Invalid API-key, IP, or permissions for action."}`, IsAuthError, 1},
		{"invalid signature", http.StatusBadRequest, `{"code":-1022,"msg":"Signature for this request is not valid."}`, IsAuthError, 1},
		{"timestamp outside recvWindow", http.StatusBadRequest, `{"code":-1021,"msg":"Timestamp for this request is outside of the recvWindow."}`, IsAuthError, 1},
		{"unknown coin", http.StatusBadRequest, `{"code":-1121,"msg":"Invalid symbol."}`, IsNotFound, 1},
		{"not found", http.StatusNotFound, `<html>not found</html>`, IsNotFound, 1},
		{"server error", http.StatusInternalServerError, `internal error`, IsTransportError, 3},
		{"rate limited", http.StatusTooManyRequests, `{"code":-1003,"msg":"Too many requests."}`, IsTransportError, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			transport := &httptesting.MockTransport{}
			transport.GET("/sapi/v1/capital/deposit/address", replyString(c.code, c.body))

			client := newMockClient(transport, WithMaxRetries(2))
			address, err := client.NewGetDepositAddressRequest().Coin("ETH").Do(context.Background())
			assert.Nil(t, address)
			require.Error(t, err)
			assert.True(t, c.check(err), "unexpected error %T: %v", err, err)
			assert.Len(t, transport.Requests(), c.attempts)
		})
	}
}

func TestClient_APIError(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/capital/deposit/address", replyString(http.StatusBadRequest, `{"code":-1102,"msg":"Mandatory parameter 'coin' was not sent."}`))

	_, err := newMockClient(transport).NewGetDepositAddressRequest().Coin("ETH").Do(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, -1102, apiErr.Code)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.False(t, IsAuthError(err) || IsNotFound(err) || IsTransportError(err) || IsDecodeError(err))
}

func TestClient_TransportErrorRecovered(t *testing.T) {
	var calls atomic.Int32
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/capital/deposit/address", func(req *http.Request) (*http.Response, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("connection reset by peer")
		}
		return httptesting.BuildResponseString(http.StatusOK, `{"address":"0xabc","coin":"ETH"}`), nil
	})

	address, err := newMockClient(transport, WithMaxRetries(1)).NewGetDepositAddressRequest().Coin("ETH").Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xabc", address.Address)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NoRetryByDefault(t *testing.T) {
	client := NewClient("", WithHTTPClient(httptesting.HttpClientWithError(errors.New("dial tcp: i/o timeout"))))
	client.Auth("key", "secret")

	_, err := client.NewGetAllCoinsInfoRequest().Do(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
}

func TestClient_MissingCredentials(t *testing.T) {
	transport := &httptesting.MockTransport{}
	client := NewClient("", WithHTTPClient(&http.Client{Transport: transport}))

	_, err := client.NewGetAllCoinsInfoRequest().Do(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.Empty(t, transport.Requests(), "nothing is sent without credentials")
}

func TestClient_IndependentSignedRequests(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/asset/assetDetail", replyString(http.StatusOK, `{"BTC":{"minWithdrawAmount":"0.001","depositStatus":true,"withdrawFee":"0.0005","withdrawStatus":true}}`))

	client := newMockClient(transport)
	for i := 0; i < 2; i++ {
		_, err := client.NewGetAssetDetailRequest().Asset("BTC").Do(context.Background())
		require.NoError(t, err)
	}

	requests := transport.Requests()
	require.Len(t, requests, 2)

	q1, q2 := requests[0].URL.Query(), requests[1].URL.Query()
	assert.Equal(t, q1.Get("asset"), q2.Get("asset"))
	assert.NotEqual(t, q1.Get("timestamp"), q2.Get("timestamp"))
	assert.NotEqual(t, q1.Get("signature"), q2.Get("signature"))
}

func TestClient_SetTimeOffsetFromServer(t *testing.T) {
	const local = int64(1700000000000)
	serverTime := local + 1500

	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/time", replyString(http.StatusOK, `{"serverTime":`+strconv.FormatInt(serverTime, 10)+`}`))
	transport.GET("/sapi/v1/capital/config/getall", replyString(http.StatusOK, `[]`))

	client := NewClient("",
		WithHTTPClient(&http.Client{Transport: transport}),
		WithClock(fixedClock(local)))
	client.Auth("key", "secret")

	require.NoError(t, client.SetTimeOffsetFromServer(context.Background()))
	assert.Equal(t, 1500*time.Millisecond, client.TimeOffset())

	_, err := client.NewGetAllCoinsInfoRequest().Do(context.Background())
	require.NoError(t, err)

	requests := transport.Requests()
	require.Len(t, requests, 2)
	assert.Empty(t, requests[0].Header.Get("X-MBX-APIKEY"), "server time is a public endpoint")
	assert.Equal(t, strconv.FormatInt(serverTime, 10), requests[1].URL.Query().Get("timestamp"))
}

func TestClient_RateLimiterCanceled(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/sapi/v1/capital/config/getall", replyString(http.StatusOK, `[]`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newMockClient(transport, WithRateLimiter(rate.NewLimiter(rate.Every(time.Second), 1)))
	_, err := client.NewGetAllCoinsInfoRequest().Do(ctx)
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.Empty(t, transport.Requests())
}

func TestClient_GetDepositAddressRequest_Live(t *testing.T) {
	client := getTestClientOrSkip(t)
	ctx := context.Background()

	err := client.SetTimeOffsetFromServer(ctx)
	assert.NoError(t, err)

	address, err := client.NewGetDepositAddressRequest().Coin("BTC").Do(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, address)
	assert.NotEmpty(t, address.Address)
	t.Logf("deposit address: %+v", address)
}

func TestClient_GetAllCoinsInfoRequest_Live(t *testing.T) {
	client := getTestClientOrSkip(t)
	ctx := context.Background()

	err := client.SetTimeOffsetFromServer(ctx)
	assert.NoError(t, err)

	coins, err := client.NewGetAllCoinsInfoRequest().Do(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, coins)
}

func keys(m map[string][]string) []string {
	var ks []string
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}

func TestClient_GetAllCoinsInfoRequest_FromFile(t *testing.T) {
	client := NewClient("", WithHTTPClient(httptesting.HttpClientFromFile("testdata/get_all_coins_info.json")))
	client.Auth("key", "secret")

	coins, err := client.NewGetAllCoinsInfoRequest().Do(context.Background())
	require.NoError(t, err)
	require.Len(t, coins, 1)
	require.Len(t, coins[0].NetworkList, 2)
	assert.Equal(t, "TRX", coins[0].NetworkList[1].Network)
	assert.True(t, coins[0].NetworkList[1].IsDefault)
	assert.True(t, coins[0].Free.Equal(decimal.RequireFromString("120.5")))

	client = NewClient("", WithHTTPClient(httptesting.HttpClientFromFile("testdata/not-found.json")))
	client.Auth("key", "secret")

	_, err = client.NewGetAllCoinsInfoRequest().Do(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
}

func TestClient_HttpStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		content    string
		check      func(error) bool
	}{
		{"forbidden", http.StatusForbidden, `{"code":-2015,"msg":"Invalid API-key, IP, or permissions for action."}`, IsAuthError},
		{"not found", http.StatusNotFound, ``, IsNotFound},
		{"service unavailable", http.StatusServiceUnavailable, `Service Unavailable`, IsTransportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("", WithHTTPClient(httptesting.HttpClientWithStatus(tt.statusCode, tt.content)))
			client.Auth("key", "secret")

			_, err := client.NewGetAssetDetailRequest().Do(context.Background())
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error %T: %v", err, err)
		})
	}
}

func TestClient_GetServerTimeRequest(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int64
		decode  bool
	}{
		{name: "number", content: `{"serverTime":1499827319559}`, want: 1499827319559},
		{name: "string", content: `{"serverTime":"1499827319559"}`, want: 1499827319559},
		{name: "truncated", content: `{"serverTime":`, decode: true},
		{name: "not a timestamp", content: `{"serverTime":"abc"}`, decode: true},
		{name: "missing", content: `{}`, decode: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("", WithHTTPClient(httptesting.HttpClientWithContent(tt.content)))

			serverTime, err := client.NewGetServerTimeRequest().Do(context.Background())
			if tt.decode {
				require.Error(t, err)
				assert.True(t, IsDecodeError(err), "expect decode error, got %T: %v", err, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, serverTime.ServerTime.Time().UnixMilli())
		})
	}
}
