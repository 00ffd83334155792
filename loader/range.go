package loader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseRange parses the sentence-range flag syntax: a comma-separated list
// of either a single 1-based sentence id ("a") or an inclusive range
// ("a:b"). The result is the sorted, deduplicated union of every id named.
func ParseRange(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, err := parseRangePart(part)
		if err != nil {
			return nil, fmt.Errorf("%w: range %q: %v", ErrMalformedLine, spec, err)
		}
		for id := lo; id <= hi; id++ {
			seen[id] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out, nil
}

func parseRangePart(part string) (lo, hi int, err error) {
	if i := strings.IndexByte(part, ':'); i >= 0 {
		lo, err = strconv.Atoi(part[:i])
		if err != nil {
			return 0, 0, err
		}
		hi, err = strconv.Atoi(part[i+1:])
		if err != nil {
			return 0, 0, err
		}
		if hi < lo {
			return 0, 0, fmt.Errorf("range end %d before start %d", hi, lo)
		}
		return lo, hi, nil
	}
	v, err := strconv.Atoi(part)
	if err != nil {
		return 0, 0, err
	}
	return v, v, nil
}
