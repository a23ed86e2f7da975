// Decode command: pretty-print the table tokens stored in a fragment.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tablekeep/pkg/conditions"
	"github.com/mesh-intelligence/tablekeep/pkg/fragment"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <url-or-fragment>",
	Short: "Decode every table token in a fragment",
	Long:  "Parse a URL or fragment and print each table's persisted conditions by name.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	raw := fragmentOf(args[0])
	vals := fragment.Decode(raw)
	registry := conditions.Default()

	// Walk entries in encounter order, first token per table wins.
	out := make(map[string]map[string]string)
	var order []string
	for _, e := range fragment.DecodeEntries(raw) {
		if _, done := out[e.ID]; done {
			logger.Warn().Str("table", e.ID).Msg("duplicate fragment entry, using first")
			continue
		}
		token, _ := vals.First(e.ID)
		out[e.ID] = decodeToken(registry, e.ID, token)
		order = append(order, e.ID)
	}

	if flagJSON {
		return printJSON(cmd, out)
	}
	for _, id := range order {
		fmt.Fprintln(cmd.OutOrStdout(), id)
		for _, c := range registry.Conditions() {
			if val, ok := out[id][c.Name()]; ok {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", c.Name(), val)
			}
		}
	}
	return nil
}

// decodeToken resolves a token's entries to condition names. Entries with no
// matching condition are logged and skipped.
func decodeToken(registry *conditions.Registry, id, token string) map[string]string {
	decoded := make(map[string]string)
	for entry := range strings.SplitSeq(token, ":") {
		if entry == "" {
			continue
		}
		c, ok := registry.ByKey(entry[0])
		if !ok {
			logger.Warn().
				Str("table", id).
				Str("key", string(entry[0])).
				Msg("token entry has no matching condition, skipping")
			continue
		}
		decoded[c.Name()] = entry[1:]
	}
	return decoded
}
