package output

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tw := Table(&buf)
	fmt.Fprintln(tw, "METHOD\tPATH")
	fmt.Fprintln(tw, "GET\t/users/{id}")
	require.NoError(t, tw.Flush())
	assert.Equal(t, "METHOD  PATH\nGET     /users/{id}\n", buf.String())
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "mount %s skipped", "/db")
	assert.Equal(t, "Warning: mount /db skipped\n", buf.String())
}
