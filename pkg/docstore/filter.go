package docstore

import (
	"github.com/getmockd/mockdb/pkg/jsontree"
)

// matchesAll reports whether every query argument equals the stringified
// field of the same name on elem. A missing field stringifies as "null".
func matchesAll(elem *jsontree.Value, args map[string]string) bool {
	for field, want := range args {
		if jsontree.Stringify(elem.Field(field)) != want {
			return false
		}
	}
	return true
}

// filterElements returns the elements that match all args when keep is true,
// or the ones that do not when keep is false. Order is preserved.
func filterElements(elems []*jsontree.Value, args map[string]string, keep bool) []*jsontree.Value {
	result := make([]*jsontree.Value, 0, len(elems))
	for _, elem := range elems {
		if matchesAll(elem, args) == keep {
			result = append(result, elem)
		}
	}
	return result
}
