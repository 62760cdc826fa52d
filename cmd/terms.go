package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List the designator term catalog in priority order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cleaner, err := buildCleaner()
		if err != nil {
			return err
		}

		countOnly, _ := cmd.Flags().GetBool("count")
		terms := cleaner.Catalog()
		if countOnly {
			fmt.Fprintln(cmd.OutOrStdout(), len(terms))
			return nil
		}
		for _, t := range terms {
			fmt.Fprintln(cmd.OutOrStdout(), t.Text)
		}
		return nil
	},
}

func init() {
	termsCmd.Flags().Bool("count", false, "print only the number of cataloged terms")
	rootCmd.AddCommand(termsCmd)
}
