// Package debug provides an interactive single-step viewer for the CPU,
// built on bubbletea. It never mutates CPU state except by calling Step,
// the same entry point a headless caller would use.
package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nes6502/cpu"
	"nes6502/mem"
)

type model struct {
	cpu *cpu.Cpu
	mem *mem.MemoryMap

	prevPC uint16
	quit   bool
}

// New builds the debugger model wired to an already-reset CPU and its bus.
func New(c *cpu.Cpu, m *mem.MemoryMap) tea.Model {
	return model{cpu: c, mem: m, prevPC: c.PC}
}

func (m model) Init() tea.Cmd { return nil }

// Update steps the CPU by one full instruction on space or "j", and quits
// on "q". Every other key is ignored.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.cpu.PC
		m.cpu.Step()
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as a line, highlighting the
// byte the PC currently points at.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.mem.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01X  ", b)
	}
	rows := []string{header}
	base := m.cpu.PC &^ 0x00FF
	for page := 0; page < 5; page++ {
		rows = append(rows, m.renderPage(base+uint16(page*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	c := m.cpu
	flagChar := func(set bool, ch byte) byte {
		if set {
			return ch
		}
		return '-'
	}
	flags := []byte{
		flagChar(c.P&cpu.FlagNegative != 0, 'N'),
		flagChar(c.P&cpu.FlagOverflow != 0, 'V'),
		flagChar(c.P&cpu.FlagUnused != 0, 'U'),
		flagChar(c.P&cpu.FlagBreak != 0, 'B'),
		flagChar(c.P&cpu.FlagDecimal != 0, 'D'),
		flagChar(c.P&cpu.FlagInterrupt != 0, 'I'),
		flagChar(c.P&cpu.FlagZero != 0, 'Z'),
		flagChar(c.P&cpu.FlagCarry != 0, 'C'),
	}
	return fmt.Sprintf(
		"PC: %04X (was %04X)\nA: %02X  X: %02X  Y: %02X  SP: %02X\n%s\nCYC: %d",
		c.PC, m.prevPC, c.A, c.X, c.Y, c.S, string(flags), c.Cycles(),
	)
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), "   "+strings.ReplaceAll(m.status(), "\n", "\n   ")),
		"",
		spew.Sdump(m.cpu.CurrentInstruction()),
		"space/j: step    q: quit",
	)
}

// Run launches the interactive viewer and blocks until the user quits.
func Run(c *cpu.Cpu, m *mem.MemoryMap) error {
	_, err := tea.NewProgram(New(c, m)).Run()
	return err
}
