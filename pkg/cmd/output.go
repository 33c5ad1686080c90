package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c9s/bbgo-wallet/pkg/style"
	"github.com/c9s/bbgo-wallet/pkg/types"
)

type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

func outputFormatFromFlags(cmd *cobra.Command) (OutputFormat, error) {
	s, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", err
	}

	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("unsupported output format %q, valid formats: table, json, yaml", s)
}

// render writes v as json or yaml, or calls renderTable for the table format
func render(w io.Writer, format OutputFormat, v interface{}, renderTable func(t table.Writer, colored bool)) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)

	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	}

	colored := w == io.Writer(os.Stdout)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	if colored {
		t.SetStyle(*style.NewDefaultTableStyle())
	} else {
		t.SetStyle(*style.NewPlainTableStyle())
	}

	renderTable(t, colored)
	t.Render()
	return nil
}

func renderCoins(w io.Writer, format OutputFormat, coins []types.Coin) error {
	return render(w, format, coins, func(t table.Writer, colored bool) {
		t.AppendHeader(table.Row{"Coin", "Network", "Default", "Deposit", "Withdraw", "Withdraw Fee", "Withdraw Min", "Memo", "Confirms"})
		for _, c := range coins {
			if len(c.Networks) == 0 {
				t.AppendRow(table.Row{c.Coin, "-", "", style.Status(c.DepositEnabled, colored), style.Status(c.WithdrawEnabled, colored), "", "", "", ""})
				continue
			}

			for _, n := range c.Networks {
				t.AppendRow(table.Row{
					c.Coin,
					n.Network,
					defaultMark(n.Default),
					style.Status(n.DepositEnabled, colored),
					style.Status(n.WithdrawEnabled, colored),
					n.WithdrawFee.String(),
					n.WithdrawMin.String(),
					style.Status(n.HasMemo, colored),
					strconv.Itoa(n.MinConfirm),
				})
			}
		}
	})
}

func renderAssetDetails(w io.Writer, format OutputFormat, details types.AssetDetailMap) error {
	sorted := details.Sorted()
	return render(w, format, sorted, func(t table.Writer, colored bool) {
		t.AppendHeader(table.Row{"Asset", "Deposit", "Withdraw", "Withdraw Fee", "Min Withdraw", "Deposit Tip"})
		for _, d := range sorted {
			tip := ""
			if d.DepositTip != nil {
				tip = *d.DepositTip
			}

			t.AppendRow(table.Row{
				d.Asset,
				style.Status(d.DepositEnabled, colored),
				style.Status(d.WithdrawEnabled, colored),
				d.WithdrawFee.String(),
				d.MinWithdrawAmount.String(),
				tip,
			})
		}
	})
}

func renderDepositAddress(w io.Writer, format OutputFormat, address *types.DepositAddress) error {
	return render(w, format, address, func(t table.Writer, colored bool) {
		t.AppendHeader(table.Row{"Asset", "Network", "Address", "Tag", "URL"})

		network := address.Network
		if len(network) == 0 {
			network = "(default)"
		}

		tag := ""
		if address.AddressTag != nil {
			tag = *address.AddressTag
		}

		t.AppendRow(table.Row{address.Asset, network, address.Address, tag, address.URL})
	})
}

func defaultMark(b bool) string {
	if b {
		return "*"
	}
	return ""
}
