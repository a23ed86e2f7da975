// Shared helpers for tablekeep CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tablekeep/pkg/fragment"
)

// fragmentOf extracts the raw fragment from an argument that may be a full
// URL, a '#'-prefixed fragment, or a bare fragment string.
func fragmentOf(arg string) string {
	if i := strings.Index(arg, "#"); i >= 0 {
		return arg[i+1:]
	}
	if strings.Contains(arg, "://") {
		return ""
	}
	return arg
}

// locationOf wraps an argument in the right Location: full URLs keep their
// non-fragment parts, anything else becomes an in-memory fragment.
func locationOf(arg string) (fragment.Location, error) {
	if strings.Contains(arg, "://") {
		loc, err := fragment.ParseURLLocation(arg)
		if err != nil {
			return nil, fmt.Errorf("parse url: %w", err)
		}
		return loc, nil
	}
	return fragment.NewMemoryLocation(fragmentOf(arg)), nil
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
