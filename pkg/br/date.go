// Package br concentra as convenções brasileiras de data e dinheiro usadas pela API:
// datas DD/MM/AAAA na exibição e AAAA-MM-DD no fio, valores em BRL com vírgula decimal.
package br

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	LayoutISO = "2006-01-02"
	LayoutBR  = "02/01/2006"
)

var (
	ErrInvalidDate = errors.New("data inválida")

	isoShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	brShape  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// ParseISO interpreta AAAA-MM-DD validando o calendário (2025-02-31 é rejeitado).
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !isoShape.MatchString(s) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(LayoutISO, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseBR interpreta DD/MM/AAAA validando o calendário.
func ParseBR(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !brShape.MatchString(s) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(LayoutBR, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseDate aceita AAAA-MM-DD, DD/MM/AAAA ou um timestamp RFC 3339 (usa só a parte da data).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch {
	case isoShape.MatchString(s):
		return ParseISO(s)
	case brShape.MatchString(s):
		return ParseBR(s)
	case len(s) > 10 && isoShape.MatchString(s[:10]):
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return time.Time{}, ErrInvalidDate
		}
		return ParseISO(s[:10])
	}
	return time.Time{}, ErrInvalidDate
}

// ISOToBR converte AAAA-MM-DD em DD/MM/AAAA.
func ISOToBR(iso string) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return t.Format(LayoutBR), nil
}

// BRToISO converte DD/MM/AAAA em AAAA-MM-DD.
func BRToISO(s string) (string, error) {
	t, err := ParseBR(s)
	if err != nil {
		return "", err
	}
	return t.Format(LayoutISO), nil
}

func FormatISO(t time.Time) string { return t.Format(LayoutISO) }

func FormatBR(t time.Time) string { return t.Format(LayoutBR) }

// MaskDateBR aplica a máscara de digitação: mantém até 8 dígitos e insere "/"
// depois do 2º e do 4º. Reaplicar sobre a própria saída não muda nada.
func MaskDateBR(s string) string {
	digits := make([]byte, 0, 8)
	for i := 0; i < len(s) && len(digits) < 8; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	d := string(digits)
	switch {
	case len(d) >= 5:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	case len(d) >= 3:
		return d[:2] + "/" + d[2:]
	}
	return d
}

// Today devolve a data civil corrente em loc, à meia-noite UTC, comparável com datas do banco.
func Today(loc *time.Location) time.Time {
	return DateOf(time.Now().In(loc))
}

// DateOf descarta hora e fuso, mantendo ano/mês/dia.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LoadLocation devolve o fuso pedido ou UTC se ele não existir na máquina.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
