package binanceapi

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// SignedRequest is the parameter set augmented with recvWindow, timestamp and signature.
type SignedRequest struct {
	// Query contains the caller parameters plus recvWindow and timestamp.
	Query url.Values

	// Body is the signed request body, empty for GET requests.
	Body []byte

	Timestamp int64
	Signature string
}

// Encode returns the query string that must be sent as-is, the signature is
// always the last parameter.
func (r *SignedRequest) Encode() string {
	return r.Query.Encode() + "&signature=" + url.QueryEscape(r.Signature)
}

type signFunc func(payload string) (string, error)

// Signer signs the request parameters with the api secret (HMAC-SHA256) or
// with an Ed25519 private key.
type Signer struct {
	key  string
	sign signFunc

	// clock returns the server-relative current time
	clock func() time.Time
}

// NewHMACSigner creates a signer that signs the payload with HMAC-SHA256 and
// encodes the signature in hex.
func NewHMACSigner(key, secret string, clock func() time.Time) *Signer {
	s := &Signer{key: key, clock: clock}
	if len(secret) > 0 {
		s.sign = func(payload string) (string, error) {
			return signHMAC(secret, payload), nil
		}
	}

	return s
}

// NewEd25519Signer creates a signer that signs the payload with an Ed25519
// private key and encodes the signature in base64.
func NewEd25519Signer(key string, privateKey ed25519.PrivateKey, clock func() time.Time) *Signer {
	s := &Signer{key: key, clock: clock}
	if len(privateKey) == ed25519.PrivateKeySize {
		s.sign = func(payload string) (string, error) {
			return GenerateSignatureEd25519(payload, privateKey), nil
		}
	}

	return s
}

func (s *Signer) APIKey() string {
	return s.key
}

// Sign copies params, appends recvWindow and timestamp and signs the
// canonical (key sorted) encoding. params is never modified.
func (s *Signer) Sign(params url.Values, recvWindow time.Duration) (*SignedRequest, error) {
	return s.SignWithBody(params, nil, recvWindow)
}

func (s *Signer) SignWithBody(params url.Values, body []byte, recvWindow time.Duration) (*SignedRequest, error) {
	if s == nil || len(s.key) == 0 {
		return nil, &AuthError{Err: errors.New("empty api key")}
	}

	if s.sign == nil {
		return nil, &AuthError{Err: errors.New("empty api secret")}
	}

	if recvWindow <= 0 {
		return nil, &AuthError{Err: errors.Errorf("invalid recvWindow %s", recvWindow)}
	}

	query := url.Values{}
	for k, vs := range params {
		query[k] = append([]string(nil), vs...)
	}

	timestamp := s.now().UnixMilli()
	query.Set("recvWindow", strconv.FormatInt(recvWindow.Milliseconds(), 10))
	query.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := s.sign(query.Encode() + string(body))
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	return &SignedRequest{
		Query:     query,
		Body:      body,
		Timestamp: timestamp,
		Signature: signature,
	}, nil
}

func (s *Signer) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}

	return time.Now()
}

func signHMAC(secret, payload string) string {
	var sig = hmac.New(sha256.New, []byte(secret))
	sig.Write([]byte(payload))
	return hex.EncodeToString(sig.Sum(nil))
}

// GenerateSignatureEd25519 generates a signature for the given string with the provided private key.
func GenerateSignatureEd25519(paramString string, privateKey ed25519.PrivateKey) string {
	signatureBytes := ed25519.Sign(privateKey, []byte(paramString))
	return base64.StdEncoding.EncodeToString(signatureBytes)
}
