package args

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		schema   string
		expected Schema
		expErr   *Error
	}{
		{
			name:     "empty",
			schema:   "",
			expected: nil,
		},
		{
			name:   "all kinds",
			schema: "x,y*,z#,w##,v[*]",
			expected: Schema{
				{Name: "x", Kind: Boolean},
				{Name: "y", Kind: String},
				{Name: "z", Kind: Integer},
				{Name: "w", Kind: Double},
				{Name: "v", Kind: StringArray},
			},
		},
		{
			name:     "spaces",
			schema:   " x, y ",
			expected: Schema{{Name: "x", Kind: Boolean}, {Name: "y", Kind: Boolean}},
		},
		{
			name:     "no separators",
			schema:   "xy",
			expected: Schema{{Name: "x", Kind: Boolean}, {Name: "y", Kind: Boolean}},
		},
		{
			name:     "markers without separators",
			schema:   "x#y*z",
			expected: Schema{{Name: "x", Kind: Integer}, {Name: "y", Kind: String}, {Name: "z", Kind: Boolean}},
		},
		{
			name:     "unicode letter",
			schema:   "ж*",
			expected: Schema{{Name: "ж", Kind: String}},
		},
		{
			name:   "non letter name",
			schema: "*",
			expErr: NewError(InvalidArgumentName, "*", ""),
		},
		{
			name:   "digit name",
			schema: "x,1",
			expErr: NewError(InvalidArgumentName, "1", ""),
		},
		{
			name:   "invalid format",
			schema: "f~",
			expErr: NewError(InvalidArgumentFormat, "f", "~"),
		},
		{
			name:   "invalid long format",
			schema: "x,f##*",
			expErr: NewError(InvalidArgumentFormat, "f", "##*"),
		},
		{
			name:   "unclosed array format",
			schema: "f[*",
			expErr: NewError(InvalidArgumentFormat, "f", "[*"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			schema, err := ParseSchema(tc.schema)
			if tc.expErr != nil {
				require.Equal(t, tc.expErr, err)
				require.Nil(t, schema)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, schema); diff != "" {
				t.Errorf("ParseSchema(%q) mismatch (-want +got):\n%s", tc.schema, diff)
			}
		})
	}
}

func TestSchema_String(t *testing.T) {
	t.Parallel()
	schema := Schema{
		{Name: "x", Kind: Boolean},
		{Name: "y", Kind: String},
		{Name: "z", Kind: Integer},
		{Name: "w", Kind: Double},
		{Name: "v", Kind: StringArray},
	}
	require.Equal(t, "x,y*,z#,w##,v[*]", schema.String())

	parsed, err := ParseSchema(schema.String())
	require.NoError(t, err)
	if diff := cmp.Diff(schema, parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "", Schema{}.String())
}

func TestSchema_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		schema Schema
		expErr error
	}{
		{name: "empty", schema: nil},
		{name: "valid", schema: Schema{{Name: "x", Kind: Boolean}, {Name: "y", Kind: StringArray}}},
		{
			name:   "multi char name",
			schema: Schema{{Name: "xy", Kind: Boolean}},
			expErr: NewError(InvalidArgumentName, "xy", ""),
		},
		{
			name:   "empty name",
			schema: Schema{{Name: "", Kind: Boolean}},
			expErr: NewError(InvalidArgumentName, "", ""),
		},
		{
			name:   "non letter name",
			schema: Schema{{Name: "#", Kind: Integer}},
			expErr: NewError(InvalidArgumentName, "#", ""),
		},
		{
			name:   "duplicate name",
			schema: Schema{{Name: "x", Kind: Boolean}, {Name: "x", Kind: String}},
			expErr: NewError(InvalidArgumentName, "x", ""),
		},
		{
			name:   "unknown kind",
			schema: Schema{{Name: "x", Kind: Kind(42)}},
			expErr: NewError(InvalidArgumentFormat, "x", "Kind(42)"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.schema.Validate()
			if tc.expErr == nil {
				require.NoError(t, err)
				return
			}
			require.Equal(t, tc.expErr, err)
		})
	}
}

func TestKind_Text(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{Boolean, String, Integer, Double, StringArray} {
		text, err := kind.MarshalText()
		require.NoError(t, err)
		var decoded Kind
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, kind, decoded)
	}

	var kind Kind
	require.NoError(t, kind.UnmarshalText([]byte(" String-Array ")))
	require.Equal(t, StringArray, kind)
	require.Error(t, kind.UnmarshalText([]byte("map")))
	_, err := Kind(-1).MarshalText()
	require.Error(t, err)
}

func TestEntry_JSON(t *testing.T) {
	t.Parallel()
	var schema Schema
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"x","kind":"integer"},{"name":"y","kind":"boolean"}]`), &schema))
	require.Equal(t, Schema{{Name: "x", Kind: Integer}, {Name: "y", Kind: Boolean}}, schema)

	data, err := json.Marshal(Schema{{Name: "d", Kind: Double}})
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"d","kind":"double"}]`, string(data))
}
