package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/gopointbc/fields"
)

// TypesCmd lists the boundary condition types selectable from a case file
var TypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered boundary condition types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range fields.Types() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(TypesCmd)
}
