package main

import (
	"github.com/c9s/bbgo-wallet/pkg/cmd"
)

func main() {
	cmd.Execute()
}
