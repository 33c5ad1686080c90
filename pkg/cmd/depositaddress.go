package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	depositAddressCmd.Flags().String("coin", "", "the coin of the deposit address, like BTC")
	depositAddressCmd.Flags().String("network", "", "the network of the deposit address, the default network of the coin is used when omitted")
	RootCmd.AddCommand(depositAddressCmd)
}

// go run ./cmd/binance-wallet deposit-address --coin=USDT --network=TRX
var depositAddressCmd = &cobra.Command{
	Use:          "deposit-address",
	Short:        "show the deposit address of a coin",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, err := outputFormatFromFlags(cmd)
		if err != nil {
			return err
		}

		coin, err := cmd.Flags().GetString("coin")
		if err != nil {
			return err
		}

		if len(coin) == 0 {
			return errors.New("--coin option is required")
		}

		var network *string
		if cmd.Flags().Changed("network") {
			s, err := cmd.Flags().GetString("network")
			if err != nil {
				return err
			}

			s = strings.ToUpper(s)
			network = &s
		}

		service, err := newWalletService(ctx, userConfig)
		if err != nil {
			return err
		}

		address, err := service.QueryDepositAddress(ctx, strings.ToUpper(coin), network)
		if err != nil {
			return err
		}

		return renderDepositAddress(cmd.OutOrStdout(), format, address)
	},
}
