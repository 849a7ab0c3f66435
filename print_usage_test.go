package args

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema("v,o*,n#,r##,i[*]")
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintUsage(&buf, "myApp", schema)
	require.Equal(t,
		"Usage of myApp:\n"+
			"  -v\n"+
			"  -o string\n"+
			"  -n integer\n"+
			"  -r double\n"+
			"  -i string-array\n",
		buf.String(),
	)

	buf.Reset()
	PrintUsage(&buf, "", nil)
	require.Equal(t, "Usage:\n", buf.String())
}
