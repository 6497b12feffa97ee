package br

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBRToISO_IdaEVoltaEmIntervalo(t *testing.T) {
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		iso := d.Format(LayoutISO)
		brs, err := ISOToBR(iso)
		require.NoError(t, err, iso)
		back, err := BRToISO(brs)
		require.NoError(t, err, brs)
		require.Equal(t, iso, back)
	}
}

func TestISOToBR_RejeitaDataImpossivel(t *testing.T) {
	for _, s := range []string{"2025-02-31", "2025-13-01", "2023-02-29", "2025-00-10", "2025-2-3", "25-02-03", ""} {
		_, err := ISOToBR(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
	out, err := ISOToBR("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "29/02/2024", out)
}

func TestBRToISO_RejeitaDataImpossivel(t *testing.T) {
	for _, s := range []string{"31/02/2025", "00/01/2025", "10/13/2025", "1/1/2025", "2025-01-01"} {
		_, err := BRToISO(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestParseDate_AceitaOsDoisFormatos(t *testing.T) {
	want := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2025-03-07", "07/03/2025", " 07/03/2025 ", "2025-03-07T15:04:05-04:00"} {
		got, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), s)
	}
	_, err := ParseDate("07-03-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

var maskShape = regexp.MustCompile(`^\d{0,2}(/\d{0,2})?(/\d{0,4})?$`)

func TestMaskDateBR_FormatoEIdempotencia(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(8)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
		out := MaskDateBR(b.String())
		require.Regexp(t, maskShape, out, b.String())
		require.Equal(t, out, MaskDateBR(out), b.String())
	}
}

func TestMaskDateBR_Casos(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"1":          "1",
		"12":         "12",
		"123":        "12/3",
		"1203":       "12/03",
		"12032":      "12/03/2",
		"12032025":   "12/03/2025",
		"1203202599": "12/03/2025",
		"12/03/2025": "12/03/2025",
		"ab12cd03":   "12/03",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskDateBR(in), in)
	}
}

func TestDateOf_DescartaHora(t *testing.T) {
	loc := time.FixedZone("cuiaba", -4*3600)
	got := DateOf(time.Date(2025, 5, 10, 23, 30, 0, 0, loc))
	assert.Equal(t, "2025-05-10", FormatISO(got))
	assert.Equal(t, "10/05/2025", FormatBR(got))
}
