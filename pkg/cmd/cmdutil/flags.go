package cmdutil

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// PersistentFlags defines the global flags
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file")
	flags.String("dotenv", ".env.local", "the dotenv file to load the api credentials from")
	flags.Bool("debug", false, "debug flag")
	flags.StringP("output", "o", "table", "output format: table, json or yaml")
	flags.Duration("recv-window", 0, "the receive window of the signed requests, e.g. 5s")
	flags.String("metrics-listen", "", "serve the prometheus metrics on the address, e.g. :9090")
	flags.String("binance-api-key", "", "binance api key")
	flags.String("binance-api-secret", "", "binance api secret")
}

// flagKeys maps the flag names to the config keys
var flagKeys = map[string]string{
	"debug":              "logging.debug",
	"recv-window":        "binance.recvWindow",
	"metrics-listen":     "metrics.listen",
	"binance-api-key":    "binance.key",
	"binance-api-secret": "binance.secret",
}

// BindFlags binds the flags that were set on the command line to their config keys,
// so that they override the config file and the env vars.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", name)
		}
	}

	return nil
}
