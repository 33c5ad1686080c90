package binanceapi

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/c9s/requestgen"
	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const defaultHTTPTimeout = time.Second * 15
const RestBaseURL = "https://api.binance.com"

// DefaultRecvWindow is the receive window binance applies when none is sent.
const DefaultRecvWindow = 5 * time.Second

// MaxRecvWindow is the largest receive window binance accepts.
const MaxRecvWindow = 60 * time.Second

var log = logrus.WithFields(logrus.Fields{
	"exchange": "binance",
})

type RestClient struct {
	requestgen.BaseAPIClient

	signer     *Signer
	recvWindow time.Duration

	// timeOffset is the server time minus the local time in milliseconds
	timeOffset atomic.Int64

	clock      func() time.Time
	limiter    *rate.Limiter
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

type Option func(c *RestClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *RestClient) {
		c.HttpClient = client
	}
}

func WithRecvWindow(recvWindow time.Duration) Option {
	return func(c *RestClient) {
		c.recvWindow = recvWindow
	}
}

// WithRateLimiter makes SendRequest wait on the limiter before each request.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *RestClient) {
		c.limiter = limiter
	}
}

// WithMaxRetries sets how many times a transport failure is retried, 0 disables retry.
func WithMaxRetries(maxRetries uint64) Option {
	return func(c *RestClient) {
		c.maxRetries = maxRetries
	}
}

func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *RestClient) {
		c.newBackOff = newBackOff
	}
}

// WithClock replaces the local clock used for request timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *RestClient) {
		c.clock = clock
	}
}

func NewClient(baseURL string, options ...Option) *RestClient {
	if len(baseURL) == 0 {
		baseURL = RestBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		panic(err)
	}

	client := &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: defaultHTTPTimeout,
			},
		},
		recvWindow: DefaultRecvWindow,
		clock:      time.Now,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Auth configures HMAC-SHA256 signing with the api key and secret.
func (c *RestClient) Auth(key, secret string) {
	c.signer = NewHMACSigner(key, secret, c.serverTime)
}

// AuthEd25519 configures Ed25519 signing with the api key and the private key registered for it.
func (c *RestClient) AuthEd25519(key string, privateKey ed25519.PrivateKey) {
	c.signer = NewEd25519Signer(key, privateKey, c.serverTime)
}

func (c *RestClient) RecvWindow() time.Duration {
	return c.recvWindow
}

func (c *RestClient) TimeOffset() time.Duration {
	return time.Duration(c.timeOffset.Load()) * time.Millisecond
}

func (c *RestClient) SetTimeOffset(offset time.Duration) {
	c.timeOffset.Store(offset.Milliseconds())
}

// SetTimeOffsetFromServer measures the server clock so that request timestamps
// fall inside the receive window even when the local clock drifts.
func (c *RestClient) SetTimeOffsetFromServer(ctx context.Context) error {
	before := c.clock()
	serverTime, err := c.NewGetServerTimeRequest().Do(ctx)
	if err != nil {
		return err
	}
	after := c.clock()

	local := before.Add(after.Sub(before) / 2)
	offset := serverTime.ServerTime.Time().Sub(local)
	c.SetTimeOffset(offset)

	log.Debugf("server time offset: %s", offset)
	return nil
}

func (c *RestClient) serverTime() time.Time {
	return c.clock().Add(c.TimeOffset())
}

// NewRequest creates new http request for public routes.
func (c *RestClient) NewRequest(ctx context.Context, method, refURL string, params url.Values, payload interface{}) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	pathURL := c.BaseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")
	return req, nil
}

// NewAuthenticatedRequest creates new http request for signed (USER_DATA) routes.
// The query string is signed together with the body and sent exactly as signed.
func (c *RestClient) NewAuthenticatedRequest(ctx context.Context, method, refURL string, params url.Values, payload interface{}) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	signed, err := c.signer.SignWithBody(params, body, c.recvWindow)
	if err != nil {
		return nil, err
	}

	rel.RawQuery = signed.Encode()
	pathURL := c.BaseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")
	if len(body) > 0 {
		req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	}

	req.Header.Add("X-MBX-APIKEY", c.signer.APIKey())
	return req, nil
}

// SendRequest sends the request with the rate limit and retry policy of the client.
// Only transport errors are retried.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	ctx := req.Context()
	method, path := req.Method, req.URL.Path

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			err = &TransportError{Err: errors.Wrap(err, "rate limiter wait error")}
			recordRequestError(method, path, err)
			return nil, err
		}
	}

	var response *requestgen.Response
	var attempts = 0
	op := func() error {
		if attempts > 0 {
			requestRetryMetrics.WithLabelValues(method, path).Inc()
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return backoff.Permanent(err)
				}
				req.Body = body
			}
		}
		attempts++

		var err error
		response, err = c.sendOnce(req)
		if err != nil {
			if IsTransportError(err) {
				log.WithError(err).Warnf("%s %s failed, attempt %d", method, path, attempts)
				return err
			}

			return backoff.Permanent(err)
		}

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		if !isClassified(err) {
			err = &TransportError{Err: err}
		}

		recordRequestError(method, path, err)
		return response, err
	}

	return response, nil
}

func (c *RestClient) sendOnce(req *http.Request) (*requestgen.Response, error) {
	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	recordRequestMetrics(req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	if response.IsError() {
		return response, classifyResponseError(response.StatusCode, response.Body)
	}

	return response, nil
}

func isClassified(err error) bool {
	var apiErr *APIError
	return IsAuthError(err) || IsTransportError(err) || IsDecodeError(err) || IsNotFound(err) || errors.As(err, &apiErr)
}

func castPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	switch v := payload.(type) {
	case string:
		return []byte(v), nil

	case []byte:
		return v, nil

	case url.Values:
		return []byte(v.Encode()), nil

	}
	return json.Marshal(payload)
}
