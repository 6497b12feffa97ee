package br

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidNumber = errors.New("número inválido")

// FormatBRL formata em "R$ 1.234,50". Negativos ficam "R$ -5,00".
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + FormatDecimalBR(d, 2)
}

// FormatDecimalBR formata com separador de milhar "." e decimal ",".
func FormatDecimalBR(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}
	if sign == "-" && strings.Trim(intPart+frac, "0") == "" {
		sign = ""
	}
	out := groupThousands(intPart)
	if frac != "" {
		out += "," + frac
	}
	return sign + out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// MaskMoneyBR é a máscara de digitação de moeda: só dígitos, os dois últimos são centavos.
func MaskMoneyBR(s string) string {
	var digits []byte
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	v := strings.TrimLeft(string(digits), "0")
	for len(v) < 3 {
		v = "0" + v
	}
	return groupThousands(v[:len(v)-2]) + "," + v[len(v)-2:]
}

// ParseMoney é a única regra de leitura de valores digitados:
//   - com vírgula: "." é milhar e "," é decimal ("1.234,56");
//   - sem vírgula e com vários ".": todos são milhar ("1.234.567");
//   - um único "." seguido de exatamente 3 dígitos é milhar ("1.234");
//   - qualquer outro "." único é decimal ("12.5", "1234.56").
//
// Aceita prefixo "R$", espaços e sinal "-".
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return decimal.Zero, ErrInvalidNumber
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	// "-R$ 5,00" também aparece em planilhas
	s = strings.TrimPrefix(s, "R$")

	switch {
	case strings.Contains(s, ","):
		if strings.Count(s, ",") > 1 {
			return decimal.Zero, ErrInvalidNumber
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case strings.Count(s, ".") == 1:
		if i := strings.IndexByte(s, '.'); len(s)-i-1 == 3 && i > 0 && s[:i] != "0" {
			s = s[:i] + s[i+1:]
		}
	}

	if !validNumeric(s) {
		return decimal.Zero, ErrInvalidNumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidNumber
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

func validNumeric(s string) bool {
	if s == "" || s == "." {
		return false
	}
	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}
