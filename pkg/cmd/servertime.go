package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/bbgo-wallet/pkg/types"
)

func init() {
	RootCmd.AddCommand(serverTimeCmd)
}

// go run ./cmd/binance-wallet server-time
var serverTimeCmd = &cobra.Command{
	Use:          "server-time",
	Short:        "show the offset between the local clock and the binance server clock",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := newWalletService(ctx, userConfig)
		if err != nil {
			return err
		}

		timeService, ok := service.(types.ExchangeTimeService)
		if !ok {
			return fmt.Errorf("exchange %s does not support server time sync", service.Name())
		}

		offset, err := timeService.SyncServerTime(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s server time offset: %s\n", service.Name(), offset)
		return nil
	},
}
