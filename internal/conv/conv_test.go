package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type input struct {
	Args []string `json:"args,omitempty"`
}

func TestConvert(t *testing.T) {
	var testCases = []struct {
		description string
		in          any
		expect      input
	}{
		{description: "map", in: map[string]interface{}{"args": []interface{}{"ls", "-a"}}, expect: input{Args: []string{"ls", "-a"}}},
		{description: "assignable", in: input{Args: []string{"x"}}, expect: input{Args: []string{"x"}}},
		{description: "nil", in: nil, expect: input{}},
	}
	for _, tc := range testCases {
		var actual input
		require.NoError(t, Convert(tc.in, &actual), tc.description)
		assert.Equal(t, tc.expect, actual, tc.description)
	}

	var actual input
	assert.Error(t, Convert(map[string]interface{}{"args": 1}, &actual))
	assert.Error(t, Convert(nil, nil))
	assert.Error(t, Convert(nil, actual))
}

func TestPointer(t *testing.T) {
	p := Pointer(true)
	assert.True(t, *p)
	assert.True(t, Dereference(p))
	assert.Equal(t, "", Dereference[string](nil))
}
