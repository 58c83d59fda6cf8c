package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
)

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var res tea.Model
		res, cmd = m.Update(k)
		m = res.(Model)
	}
	return m, cmd
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelAdvance(t *testing.T) {
	m := New(polifin.New(polifin.IncomeStatementKind))
	require.Len(t, m.inputs, 3)
	assert.Contains(t, m.View(), "1/7")

	m, _ = press(t, m,
		typed("1,000"),
		tea.KeyMsg{Type: tea.KeyTab},
		typed("50"),
		tea.KeyMsg{Type: tea.KeyPgDown},
	)

	w := m.Wizard()
	assert.Equal(t, polifin.State("compras"), w.State())
	assert.True(t, w.Values()["ventas totales"].Equal(polifin.Coerce("1000")))
	assert.True(t, w.Values()["devoluciones sobre ventas"].Equal(polifin.Coerce("50")))
	assert.Len(t, m.inputs, 6)
	assert.Contains(t, m.View(), "Compras totales o brutas")
}

func TestModelRetreatPrefills(t *testing.T) {
	m := New(polifin.New(polifin.BalanceSheetKind))
	m, _ = press(t, m, typed("100"), tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgUp})

	assert.Equal(t, polifin.State("activo_circulante"), m.Wizard().State())
	assert.Equal(t, "100", m.inputs[0].Value())
	assert.Equal(t, "", m.inputs[1].Value())
}

func TestModelEnterOnLastField(t *testing.T) {
	m := New(polifin.New(polifin.IncomeStatementKind))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.focus)
	assert.Equal(t, polifin.State("ventas"), m.Wizard().State())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, polifin.State("compras"), m.Wizard().State())
}

func TestModelFinish(t *testing.T) {
	m := New(polifin.New(polifin.IncomeStatementKind))
	var cmd tea.Cmd
	for i := 0; i < 7; i++ {
		m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Wizard().IsReportReady())
	assert.False(t, m.Aborted())
	assert.Equal(t, "", m.View())
}

func TestModelAbandon(t *testing.T) {
	m := New(polifin.New(polifin.BalanceSheetKind))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd), "a clean run quits at once")
	assert.True(t, m.Aborted())

	m = New(polifin.New(polifin.BalanceSheetKind))
	m, cmd = press(t, m, typed("5"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, isQuit(cmd))
	assert.True(t, m.confirm)
	assert.Contains(t, m.View(), "Abandonar")

	m, _ = press(t, m, typed("n"))
	assert.False(t, m.confirm)
	assert.False(t, m.Aborted())
	assert.Equal(t, "5", m.inputs[0].Value())

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, typed("s"))
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Aborted())
}
