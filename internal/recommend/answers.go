package recommend

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateCode means two response keys name the same question once case
// and surrounding space are ignored.
var ErrDuplicateCode = errors.New("duplicate question code")

// NormalizeCode lowercases and trims a question code.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// NormalizeResponses returns responses keyed by normalized code. Keys that
// collide after normalization are an error, so the result never depends on
// map iteration order.
func NormalizeResponses(raw map[string]int) (map[string]int, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]int, len(raw))
	dupSet := map[string]struct{}{}
	var dups []string
	for _, k := range keys {
		code := NormalizeCode(k)
		if _, seen := out[code]; seen {
			if _, listed := dupSet[code]; !listed {
				dupSet[code] = struct{}{}
				dups = append(dups, code)
			}
			continue
		}
		out[code] = raw[k]
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, strings.Join(dups, ", "))
	}
	return out, nil
}
