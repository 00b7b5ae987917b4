package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

func TestDecode_Sequence(t *testing.T) {
	c, err := Decode[int]([]byte(`[1,2,3]`))
	require.NoError(t, err)
	assert.Equal(t, Sequence, c.Shape)
	assert.Equal(t, []int{1, 2, 3}, c.Items)
}

func TestDecode_WrappedSequence(t *testing.T) {
	c, err := Decode[record]([]byte(`{"accounts":[{"id":1}]}`), "accounts")
	require.NoError(t, err)
	assert.Equal(t, WrappedSequence, c.Shape)
	assert.Equal(t, []record{{ID: 1}}, c.Items)
}

func TestDecode_SingleRecord(t *testing.T) {
	c, err := Decode[record]([]byte(`{"id":1,"name":"x"}`), "accounts")
	require.NoError(t, err)
	assert.Equal(t, SingleRecord, c.Shape)
	assert.Equal(t, []record{{ID: 1, Name: "x"}}, c.Items)
}

func TestDecode_Empty(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "null", payload: `null`},
		{name: "empty object", payload: `{}`},
		{name: "empty body", payload: ``},
		{name: "whitespace", payload: "  \n"},
		{name: "scalar", payload: `42`},
		{name: "string", payload: `"accounts"`},
		{name: "malformed", payload: `{"accounts":[`},
		{name: "unrelated object", payload: `{"message":"ok"}`},
		{name: "null id", payload: `{"id":null,"name":"x"}`},
		{name: "wrapped field is not an array", payload: `{"accounts":{"x":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode[record]([]byte(tt.payload), "accounts")
			require.NoError(t, err)
			assert.Equal(t, Empty, c.Shape)
			assert.NotNil(t, c.Items)
			assert.Empty(t, c.Items)
		})
	}
}

func TestDecode_WrappedFieldTakesPrecedenceOverID(t *testing.T) {
	c, err := Decode[record]([]byte(`{"id":9,"transactions":[{"id":1},{"id":2}]}`), "transactions")
	require.NoError(t, err)
	assert.Equal(t, WrappedSequence, c.Shape)
	assert.Equal(t, []record{{ID: 1}, {ID: 2}}, c.Items)
}

func TestDecode_FieldOrder(t *testing.T) {
	c, err := Decode[int]([]byte(`{"data":[1],"items":[2]}`), "items", "data")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, c.Items)
}

func TestDecode_WithoutFieldsObjectFallsToRecord(t *testing.T) {
	c, err := Decode[record]([]byte(`{"accounts":[{"id":1}],"id":5}`))
	require.NoError(t, err)
	assert.Equal(t, SingleRecord, c.Shape)
	assert.Equal(t, []record{{ID: 5}}, c.Items)
}

func TestDecode_ItemTypeMismatch(t *testing.T) {
	_, err := Decode[record]([]byte(`[{"id":"not-a-number"}]`))
	assert.ErrorIs(t, err, ErrDecodeItem)
}

func TestClassify_KeepsRawRecord(t *testing.T) {
	shape, raw := Classify([]byte(` {"id":1,"extra":true} `))
	require.Equal(t, SingleRecord, shape)
	require.Len(t, raw, 1)
	assert.JSONEq(t, `{"id":1,"extra":true}`, string(raw[0]))
}

func TestSlice(t *testing.T) {
	items, err := Slice[json.RawMessage]([]byte(`[{"a":1},{"b":2}]`))
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "sequence", Sequence.String())
	assert.Equal(t, "wrapped_sequence", WrappedSequence.String())
	assert.Equal(t, "single_record", SingleRecord.String())
}
