package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

func NewValidLimiter(r rate.Limit, b int) (*rate.Limiter, error) {
	if b <= 0 || r <= 0 {
		return nil, fmt.Errorf("bad rate limit config, insufficient tokens (rate=%f, b=%d)", r, b)
	}
	return rate.NewLimiter(r, b), nil
}

// ParseRateLimitSyntax parses the rate limit syntax into the rate.Limiter parameters
// sample inputs:
//
//	2+1/5s (2 initial tokens, 1 token per 5 seconds)
//	5+3/1m (5 initial tokens, 3 tokens per minute)
//	3/1s   (3 tokens per second, burst 1)
//	3m     (1 token per 3 minutes, burst 1)
func ParseRateLimitSyntax(desc string) (*rate.Limiter, error) {
	desc = strings.TrimSpace(desc)
	if len(desc) == 0 {
		return nil, errors.New("empty rate limit syntax")
	}

	var b = 1
	var r = 1.0
	var durStr = desc

	if idx := strings.Index(desc, "/"); idx >= 0 {
		head := desc[:idx]
		durStr = desc[idx+1:]

		if strings.Contains(head, "+") {
			if _, err := fmt.Sscanf(head, "%d+%f", &b, &r); err != nil {
				return nil, errors.Wrapf(err, "invalid rate limit syntax %q, expect b+n/duration", desc)
			}
		} else if _, err := fmt.Sscanf(head, "%f", &r); err != nil {
			return nil, errors.Wrapf(err, "invalid rate limit syntax %q, expect n/duration", desc)
		}
	}

	duration, err := time.ParseDuration(durStr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rate limit duration %q", durStr)
	}

	if duration <= 0 || r <= 0 {
		return nil, errors.Errorf("invalid rate limit syntax %q", desc)
	}

	return NewValidLimiter(rate.Every(time.Duration(float64(duration)/r)), b)
}
