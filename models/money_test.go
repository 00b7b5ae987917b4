package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "12.34", want: 1234},
		{in: "-50,25", want: -5025},
		{in: "+7", want: 700},
		{in: "5.", want: 500},
		{in: ".5", want: 50},
		{in: "12.345", want: 1235},
		{in: "12.344", want: 1234},
		{in: "-0.005", want: -1},
		{in: "  3.1  ", want: 310},
		{in: "", wantErr: true},
		{in: "-", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "1e3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "12.30", Money(1230).String())
	assert.Equal(t, "-12.30", Money(-1230).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-0.05", Money(-5).String())
	assert.Equal(t, "0.00", Money(0).String())
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Money
		wantErr bool
	}{
		{name: "integer", in: `-800`, want: -80000},
		{name: "decimal", in: `12.34`, want: 1234},
		{name: "exponent", in: `1.5e2`, want: 15000},
		{name: "string with comma", in: `"50,25"`, want: 5025},
		{name: "null", in: `null`, want: 0},
		{name: "bool", in: `true`, wantErr: true},
		{name: "bad string", in: `"ten"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			err := json.Unmarshal([]byte(tt.in), &m)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Amount Money `json:"amount"`
	}{Amount: -1205})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": -12.05}`, string(b))
}

func TestTransaction_SignedAmount(t *testing.T) {
	assert.Equal(t, Money(-500), Transaction{Amount: 500, Type: Expense}.SignedAmount())
	assert.Equal(t, Money(-500), Transaction{Amount: -500, Type: Expense}.SignedAmount())
	assert.Equal(t, Money(500), Transaction{Amount: -500, Type: Income}.SignedAmount())
}
