package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestFold_RemoveAcentos(t *testing.T) {
	assert.Equal(t, "acoes promocionais", Fold("  Ações Promocionais "))
	assert.Equal(t, "sinaleiros/pedestres", Fold("SINALEIROS/Pedestres"))
}

func TestMatchText(t *testing.T) {
	assert.True(t, MatchText("", "qualquer"))
	assert.True(t, MatchText("joao", "Cliente", "João da Silva"))
	assert.True(t, MatchText("SILVA", "João da Silva"))
	assert.False(t, MatchText("maria", "João", "Pedro"))
}

func TestInRange_Inclusivo(t *testing.T) {
	from, to := d("2025-01-10"), d("2025-01-20")
	assert.True(t, InRange(d("2025-01-10"), &from, &to))
	assert.True(t, InRange(d("2025-01-20"), &from, &to))
	assert.False(t, InRange(d("2025-01-21"), &from, &to))
	assert.False(t, InRange(d("2025-01-09"), &from, nil))
	assert.True(t, InRange(d("1999-01-01"), nil, &to))
}

func TestParams_MatchDateComMes(t *testing.T) {
	p := Params{Month: "2025-02"}
	assert.True(t, p.MatchDate(d("2025-02-28")))
	assert.False(t, p.MatchDate(d("2025-03-01")))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Paginate(items, 0, 0))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 10, 4))
	assert.Equal(t, []int{}, Paginate(items, 2, 9))
}

func TestFilter(t *testing.T) {
	out := Filter([]string{"ativo", "inativo", "Ativo"}, func(s string) bool { return MatchEqual("ATIVO", s) })
	assert.Equal(t, []string{"ativo", "Ativo"}, out)
}
