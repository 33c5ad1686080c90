package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c9s/bbgo-wallet/pkg/types"
)

func init() {
	coinsCmd.Flags().String("coin", "", "only show the given coin, like BTC")
	RootCmd.AddCommand(coinsCmd)
}

// go run ./cmd/binance-wallet coins --coin=USDT
var coinsCmd = &cobra.Command{
	Use:          "coins",
	Short:        "list the deposit/withdraw networks of all coins",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, err := outputFormatFromFlags(cmd)
		if err != nil {
			return err
		}

		service, err := newWalletService(ctx, userConfig)
		if err != nil {
			return err
		}

		coins, err := service.QueryAllCoins(ctx)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("coin") {
			coin, err := cmd.Flags().GetString("coin")
			if err != nil {
				return err
			}

			coins = filterCoins(coins, coin)
			if len(coins) == 0 {
				return fmt.Errorf("coin %s not found", coin)
			}
		}

		return renderCoins(cmd.OutOrStdout(), format, coins)
	},
}

func filterCoins(coins []types.Coin, coin string) []types.Coin {
	var filtered []types.Coin
	for _, c := range coins {
		if strings.EqualFold(c.Coin, coin) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
