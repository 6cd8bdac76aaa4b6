package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmittedAnswerUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SubmittedAnswer
	}{
		{name: "标量", input: `"A"`, want: SubmittedAnswer{Value: "A"}},
		{name: "空字符串", input: `""`, want: SubmittedAnswer{}},
		{name: "数组", input: `["A","C"]`, want: SubmittedAnswer{Values: []string{"A", "C"}, IsList: true}},
		{name: "空数组", input: `[]`, want: SubmittedAnswer{Values: []string{}, IsList: true}},
		{name: "null", input: `null`, want: SubmittedAnswer{Invalid: true}},
		{name: "数字", input: `42`, want: SubmittedAnswer{Invalid: true}},
		{name: "对象", input: `{"a":1}`, want: SubmittedAnswer{Invalid: true}},
		{name: "混合数组", input: `["A",1]`, want: SubmittedAnswer{Invalid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SubmittedAnswer
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubmittedAnswerStorage(t *testing.T) {
	scalar := SubmittedAnswer{Value: "B"}
	assert.Equal(t, "B", scalar.Storage())

	list := SubmittedAnswer{Values: []string{"A", "C"}, IsList: true}
	assert.Equal(t, `["A","C"]`, list.Storage())
}

func TestSubmittedAnswerMarshalRoundTrip(t *testing.T) {
	list := SubmittedAnswer{Values: []string{"B", "D"}, IsList: true}
	b, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `["B","D"]`, string(b))

	b, err = json.Marshal(SubmittedAnswer{Value: "A"})
	require.NoError(t, err)
	assert.Equal(t, `"A"`, string(b))
}
