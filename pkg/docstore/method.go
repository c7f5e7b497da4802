package docstore

import "strings"

// Method is an HTTP request method.
type Method uint8

// Methods known to the store. Only GET, POST, PATCH and DELETE operate on a
// document; the rest are rejected with 405.
const (
	MethodUnknown Method = iota
	MethodGet
	MethodPost
	MethodPatch
	MethodDelete
	MethodPut
	MethodHead
	MethodOptions
)

var methodNames = [...]string{
	MethodUnknown: "UNKNOWN",
	MethodGet:     "GET",
	MethodPost:    "POST",
	MethodPatch:   "PATCH",
	MethodDelete:  "DELETE",
	MethodPut:     "PUT",
	MethodHead:    "HEAD",
	MethodOptions: "OPTIONS",
}

// ParseMethod maps a method name to a Method, ignoring case.
// Names it does not know map to MethodUnknown.
func ParseMethod(s string) Method {
	switch strings.ToUpper(s) {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	case "PATCH":
		return MethodPatch
	case "DELETE":
		return MethodDelete
	case "PUT":
		return MethodPut
	case "HEAD":
		return MethodHead
	case "OPTIONS":
		return MethodOptions
	default:
		return MethodUnknown
	}
}

func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return methodNames[MethodUnknown]
}
