package br

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"1234.5", "R$ 1.234,50"},
		{"-5", "R$ -5,00"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"999.999", "R$ 1.000,00"},
		{"-0.001", "R$ 0,00"},
		{"100", "R$ 100,00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatBRL(decimal.RequireFromString(c.in)), c.in)
	}
}

func TestParseMoney_RegraUnica(t *testing.T) {
	cases := map[string]string{
		"1.234,56":    "1234.56",
		"1234,56":     "1234.56",
		"R$ 1.234,56": "1234.56",
		"1234.56":     "1234.56",
		"12.5":        "12.5",
		"1.234":       "1234",
		"1.234.567":   "1234567",
		"0.500":       "0.5",
		"-5,00":       "-5",
		"-R$ 5,00":    "-5",
		"42":          "42",
		" 7,9 ":       "7.9",
	}
	for in, want := range cases {
		got, err := ParseMoney(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%s => %s", in, got)
	}
}

func TestParseMoney_Invalidos(t *testing.T) {
	for _, in := range []string{"", "abc", "1,2,3", "12a", ".", "R$"} {
		_, err := ParseMoney(in)
		assert.ErrorIs(t, err, ErrInvalidNumber, in)
	}
}

func TestMaskMoneyBR(t *testing.T) {
	assert.Equal(t, "0,00", MaskMoneyBR(""))
	assert.Equal(t, "0,05", MaskMoneyBR("5"))
	assert.Equal(t, "123,45", MaskMoneyBR("12345"))
	assert.Equal(t, "1.234,56", MaskMoneyBR("R$ 1234,56"))
	assert.Equal(t, "0,12", MaskMoneyBR("0012"))
}

func TestNumber_JSON(t *testing.T) {
	var in struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 10.5, "b": "1.234,50", "c": null, "d": ""}`), &in))
	assert.True(t, decimal.RequireFromString("10.5").Equal(in.A.Decimal))
	assert.True(t, decimal.RequireFromString("1234.5").Equal(in.B.Decimal))
	assert.True(t, in.C.IsZero())
	assert.True(t, in.D.IsZero())

	out, err := json.Marshal(struct {
		V Number `json:"v"`
	}{NewNumber(decimal.RequireFromString("40.25"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v": 40.25}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a": "doze"}`), &in))
}
