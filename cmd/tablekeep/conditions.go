// Conditions command: list the condition catalog.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tablekeep/pkg/conditions"
)

var conditionsCmd = &cobra.Command{
	Use:   "conditions",
	Short: "List the condition catalog",
	Long:  "Print every registered condition with its token key and trigger events.",
	Args:  cobra.NoArgs,
	RunE:  runConditions,
}

// conditionInfo is the JSON output shape for one condition.
type conditionInfo struct {
	Name   string   `json:"name"`
	Key    string   `json:"key"`
	Events []string `json:"events"`
}

func runConditions(cmd *cobra.Command, args []string) error {
	registry := conditions.Default()

	if flagJSON {
		infos := make([]conditionInfo, 0, len(registry.Conditions()))
		for _, c := range registry.Conditions() {
			infos = append(infos, conditionInfo{
				Name:   c.Name(),
				Key:    string(c.Key()),
				Events: c.Events(),
			})
		}
		return printJSON(cmd, infos)
	}

	for _, c := range registry.Conditions() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-9s triggers: %s\n",
			string(c.Key()), c.Name(), strings.Join(c.Events(), ", "))
	}
	return nil
}
