// Package jsontree is a mutable JSON document model.
//
// A document is a tree of *Value nodes. Each node is one of null, bool,
// number, string, array or object; arrays and objects own their children by
// pointer, so code that walks to a node can edit it in place:
//
//	doc := jsontree.MustParse(`{"users":[{"id":"1","name":"Ada"}]}`)
//	users := doc.Field("users")
//	users.Append(jsontree.MustParse(`{"id":"2","name":"Lin"}`))
//	out, _ := jsontree.Marshal(doc)
//
// Numbers keep their literal text and objects keep key insertion order, so a
// document that is parsed and marshaled again comes back the same apart from
// whitespace.
package jsontree
