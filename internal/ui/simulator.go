package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumibag/lumibag/internal/pattern"
)

// FrameMsg delivers one complete LED frame to the simulator.
type FrameMsg pattern.Frame

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	offStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	title string
	frame pattern.Frame
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.frame = pattern.Frame(msg)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model. The blades hang with row 0 at the bottom, so
// rows render top-down from the highest index.
func (m model) View() string {
	var rows []string
	for y := pattern.Rows - 1; y >= 0; y-- {
		var cells []string
		for x := 0; x < pattern.Columns; x++ {
			cells = append(cells, renderPixel(m.frame.At(x, y)))
		}
		rows = append(rows, strings.Join(cells, "  "))
	}
	grid := frameStyle.Render(strings.Join(rows, "\n"))
	return titleStyle.Render(m.title) + "\n" + grid + "\n" + helpStyle.Render("q: quit") + "\n"
}

func renderPixel(c pattern.Color) string {
	if c == pattern.Off {
		return offStyle.Render("··")
	}
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}

// Simulator renders frames in the terminal in place of the LED strip.
type Simulator struct {
	prog *tea.Program
}

// NewSimulator creates a simulator titled after the show it displays.
func NewSimulator(title string) *Simulator {
	return &Simulator{prog: tea.NewProgram(model{title: title})}
}

// Run blocks until the user quits. Call it from the main goroutine while
// frames arrive through Apply from the playback goroutine.
func (s *Simulator) Run() error {
	if _, err := s.prog.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// Apply implements show.Surface.
func (s *Simulator) Apply(f *pattern.Frame) error {
	s.prog.Send(FrameMsg(*f))
	return nil
}

// Quit stops the simulator program.
func (s *Simulator) Quit() {
	s.prog.Quit()
}
