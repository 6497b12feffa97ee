package br

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Number é um decimal que, no JSON de entrada, aceita número, string em notação
// brasileira ou simples (via ParseMoney), null e "" (zero). Na saída é sempre número.
type Number struct {
	decimal.Decimal
}

func NewNumber(d decimal.Decimal) Number { return Number{Decimal: d} }

// NumberFromInt atalho usado em testes e seeds.
func NumberFromInt(v int64) Number { return Number{Decimal: decimal.NewFromInt(v)} }

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		n.Decimal = decimal.Zero
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			n.Decimal = decimal.Zero
			return nil
		}
		d, err := ParseMoney(s)
		if err != nil {
			return err
		}
		n.Decimal = d
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return ErrInvalidNumber
	}
	n.Decimal = d
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}
