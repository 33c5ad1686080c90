package util

import "strings"

// MaskKey keeps the first 5 characters of the api key for logging.
func MaskKey(key string) string {
	if len(key) <= 5 {
		return strings.Repeat("*", len(key))
	}

	return key[0:5] + strings.Repeat("*", len(key)-5)
}
