package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecmacst",
		Short: "A recursive-descent ECMAScript parser",
	}

	rootCmd.AddCommand(newParseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
