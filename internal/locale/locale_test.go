package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	t.Parallel()

	langs := Supported()
	require.Len(t, langs, 2)
	assert.Equal(t, "Hungarian", langs[0].Name())
	assert.Equal(t, "German", langs[1].Name())

	langs[0] = nil
	assert.NotNil(t, Supported()[0], "Supported returns a copy")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"hu", "Hungarian"},
		{"hu-HU", "Hungarian"},
		{"de", "German"},
		{"de-AT", "German"},
		{"de-CH", "German"},
		{"German", "German"},
		{"hungarian", "Hungarian"},
		{" de ", "German"},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			lang, err := Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lang.Name())
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "ja", "xx-invalid-tag-!!", "Klingon"} {
		_, err := Lookup(in)
		assert.ErrorIs(t, err, ErrUnknownLanguage, "Lookup(%q)", in)
	}
}
