package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/bbgo-wallet/pkg/types"
)

func init() {
	depositAddressesCmd.Flags().StringSlice("coins", nil, "the coins to query, like BTC,ETH,USDT")
	depositAddressesCmd.Flags().Int("concurrency", 3, "the number of concurrent requests")
	RootCmd.AddCommand(depositAddressesCmd)
}

// go run ./cmd/binance-wallet deposit-addresses --coins=BTC,ETH,USDT
var depositAddressesCmd = &cobra.Command{
	Use:          "deposit-addresses",
	Short:        "show the default network deposit addresses of several coins",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, err := outputFormatFromFlags(cmd)
		if err != nil {
			return err
		}

		coins, err := cmd.Flags().GetStringSlice("coins")
		if err != nil {
			return err
		}

		if len(coins) == 0 {
			return errors.New("--coins option is required")
		}

		concurrency, err := cmd.Flags().GetInt("concurrency")
		if err != nil {
			return err
		}

		service, err := newWalletService(ctx, userConfig)
		if err != nil {
			return err
		}

		addresses, err := queryDepositAddresses(ctx, service, coins, concurrency)
		if err != nil {
			return err
		}

		return renderDepositAddresses(cmd.OutOrStdout(), format, addresses)
	},
}

// queryDepositAddresses sends one independent request per coin, the result keeps the order of coins.
func queryDepositAddresses(ctx context.Context, service types.ExchangeWalletService, coins []string, concurrency int) ([]*types.DepositAddress, error) {
	addresses := make([]*types.DepositAddress, len(coins))

	eg, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}

	for i, coin := range coins {
		i, coin := i, strings.ToUpper(strings.TrimSpace(coin))
		eg.Go(func() error {
			address, err := service.QueryDepositAddress(ctx, coin, nil)
			if err != nil {
				return errors.Wrapf(err, "unable to query %s deposit address", coin)
			}

			log.Debugf("%s deposit address: %s", coin, address.Address)
			addresses[i] = address
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return addresses, nil
}

func renderDepositAddresses(w io.Writer, format OutputFormat, addresses []*types.DepositAddress) error {
	return render(w, format, addresses, func(t table.Writer, colored bool) {
		t.AppendHeader(table.Row{"Asset", "Network", "Address", "Tag"})
		for _, address := range addresses {
			tag := ""
			if address.AddressTag != nil {
				tag = *address.AddressTag
			}

			t.AppendRow(table.Row{address.Asset, address.Network, address.Address, tag})
		}
	})
}
