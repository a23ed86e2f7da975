// Merge command: update one table's token in a fragment, leaving every other
// table's entry untouched.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tablekeep/pkg/fragment"
)

var (
	flagMergeTable  string
	flagMergeToken  string
	flagMergeRemove bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge <url-or-fragment>",
	Short: "Merge a table token into a fragment",
	Long: `Write (or remove) one table's token in a fragment. All other tables'
entries pass through byte-for-byte.`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&flagMergeTable, "table", "", "table identifier (required)")
	mergeCmd.Flags().StringVar(&flagMergeToken, "token", "", "token to store for the table")
	mergeCmd.Flags().BoolVar(&flagMergeRemove, "remove", false, "remove the table's entry instead")
	_ = mergeCmd.MarkFlagRequired("table")
}

func runMerge(cmd *cobra.Command, args []string) error {
	loc, err := locationOf(args[0])
	if err != nil {
		return err
	}

	gw := fragment.NewGateway(loc)
	gw.SetLogger(logger)

	if flagMergeRemove {
		gw.Remove(flagMergeTable)
	} else {
		gw.Write(flagMergeTable, flagMergeToken)
	}

	if flagJSON {
		return printJSON(cmd, map[string]string{
			"fragment": gw.Raw(),
			"address":  gw.Address(),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), gw.Address())
	return nil
}
