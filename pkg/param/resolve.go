package param

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobResolver resolves a path pattern into the sorted list of matching files.
// With multi set the default is every match, otherwise the first one (nil when
// nothing matches).
func GlobResolver(multi bool) PathResolver {
	return func(path string) (*Options, any, error) {
		pattern := strings.TrimSpace(path)
		if pattern == "" {
			return NewOptions(), emptyDefault(multi), nil
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, nil, err
		}
		sort.Strings(matches)

		values := make([]any, len(matches))
		for i, match := range matches {
			values[i] = match
		}
		objects := NamedOptions(values...)

		if multi {
			return objects, values, nil
		}
		if len(values) == 0 {
			return objects, nil, nil
		}
		return objects, values[0], nil
	}
}

func emptyDefault(multi bool) any {
	if multi {
		return []any{}
	}
	return nil
}
