package docstore

import (
	"strconv"
	"strings"

	"github.com/getmockd/mockdb/pkg/jsontree"
)

// segments splits a document path on "/" and drops empty segments, so
// leading, trailing and doubled slashes are transparent.
func segments(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolve walks segs from root and returns the node they address.
//
// In an array a segment first selects the first element whose "id" field
// stringifies to the segment, and only then an element by numeric index. In an
// object it selects a field. Scalars cannot be walked into.
func resolve(root *jsontree.Value, segs []string) (*jsontree.Value, bool) {
	node := root
	for _, seg := range segs {
		switch node.Kind() {
		case jsontree.KindArray:
			i, ok := elementIndex(node, seg)
			if !ok {
				return nil, false
			}
			node = node.Index(i)
		case jsontree.KindObject:
			next, ok := node.Get(seg)
			if !ok {
				return nil, false
			}
			node = next
		default:
			return nil, false
		}
	}
	return node, true
}

// elementIndex locates seg in an array, by id field first and index second.
func elementIndex(arr *jsontree.Value, seg string) (int, bool) {
	for i, elem := range arr.Elements() {
		id, ok := elem.Get("id")
		if ok && jsontree.Stringify(id) == seg {
			return i, true
		}
	}
	return arrayIndex(arr, seg)
}

// arrayIndex parses seg as a non-negative, in-bounds index into arr.
func arrayIndex(arr *jsontree.Value, seg string) (int, bool) {
	n, err := strconv.ParseUint(seg, 10, 0)
	if err != nil || n >= uint64(arr.Len()) {
		return 0, false
	}
	return int(n), true
}
