package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewPlainTableStyle is used when the output is not a terminal.
func NewPlainTableStyle() *table.Style {
	style := table.StyleLight
	style.Color = table.ColorOptions{}
	return &style
}

// Status renders an enabled/disabled flag.
func Status(enabled bool, colored bool) string {
	if !colored {
		if enabled {
			return "yes"
		}
		return "no"
	}

	if enabled {
		return text.FgGreen.Sprint("yes")
	}
	return text.FgRed.Sprint("no")
}
