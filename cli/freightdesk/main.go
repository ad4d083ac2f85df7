package main

import (
	"os"

	freightdeskcmder "github.com/haulflow/freightdesk/cmd/freightdesk"
)

func main() {
	cmd := freightdeskcmder.NewFreightdeskCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
