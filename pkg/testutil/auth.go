package testutil

import (
	"os"
	"regexp"
	"strconv"
	"testing"
)

var secretRE = regexp.MustCompile(`\b(\w{4})\w+\b`)

func maskSecret(s string) string {
	return secretRE.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether the live api test of the exchange
// is enabled, i.e. TEST_<PREFIX>=1 and <PREFIX>_API_KEY, <PREFIX>_API_SECRET are set.
// Live tests are always skipped on CI.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	if b, _ := strconv.ParseBool(os.Getenv("CI")); b {
		return "", "", false
	}

	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s", maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}
