package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	assetDetailCmd.Flags().String("asset", "", "the asset to query, like BTC. all assets are listed when omitted")
	RootCmd.AddCommand(assetDetailCmd)
}

// go run ./cmd/binance-wallet asset-detail --asset=BTC
var assetDetailCmd = &cobra.Command{
	Use:          "asset-detail",
	Short:        "show the withdraw fee, minimum and deposit/withdraw status of assets",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, err := outputFormatFromFlags(cmd)
		if err != nil {
			return err
		}

		var asset *string
		if cmd.Flags().Changed("asset") {
			s, err := cmd.Flags().GetString("asset")
			if err != nil {
				return err
			}

			s = strings.ToUpper(s)
			asset = &s
		}

		service, err := newWalletService(ctx, userConfig)
		if err != nil {
			return err
		}

		details, err := service.QueryAssetDetails(ctx, asset)
		if err != nil {
			return err
		}

		return renderAssetDetails(cmd.OutOrStdout(), format, details)
	},
}
