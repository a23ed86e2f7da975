package conditions

import (
	"fmt"
	"strconv"
	"strings"
)

// compressIndices serializes a column index sequence, collapsing maximal
// ascending or descending runs of length >= 3 to "first-last". Runs of
// exactly two stay as two dotted entries: "first-last" for a pair would be
// indistinguishable from a negative index on decode.
func compressIndices(order []int) string {
	var parts []string
	for i := 0; i < len(order); {
		j := i
		step := 0
		if j+1 < len(order) {
			switch order[j+1] {
			case order[j] + 1:
				step = 1
			case order[j] - 1:
				step = -1
			}
		}
		if step != 0 {
			for j+1 < len(order) && order[j+1] == order[j]+step {
				j++
			}
		}
		if j-i+1 >= 3 {
			parts = append(parts, fmt.Sprintf("%d-%d", order[i], order[j]))
			i = j + 1
			continue
		}
		parts = append(parts, strconv.Itoa(order[i]))
		i++
	}
	return strings.Join(parts, ".")
}

// expandIndices reverses compressIndices. "a-b" expands to the inclusive
// ascending or descending run from a to b; bare entries are single indices.
func expandIndices(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	var order []int
	for part := range strings.SplitSeq(raw, ".") {
		first, last, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("column index %q: %w", part, err)
			}
			order = append(order, n)
			continue
		}

		from, err := strconv.Atoi(first)
		if err != nil {
			return nil, fmt.Errorf("run start %q: %w", first, err)
		}
		to, err := strconv.Atoi(last)
		if err != nil {
			return nil, fmt.Errorf("run end %q: %w", last, err)
		}

		step := 1
		if to < from {
			step = -1
		}
		for n := from; n != to; n += step {
			order = append(order, n)
		}
		order = append(order, to)
	}
	return order, nil
}
