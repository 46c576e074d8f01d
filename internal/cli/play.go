package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/notation"
	"github.com/SeamusWaldron/nxncube/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively",
	Long: `Start an interactive TUI showing the cube net. The layer that will move
is highlighted.

Keyboard shortcuts:
  u d f b r l  - Select the side to turn
  1-9          - Select the layer, counted from the selected side
  left/right   - Turn the layer 90 degrees counter-clockwise/clockwise
  c            - Reset to a solved cube
  q/Esc        - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	turnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// historyTail is how many recent turns the status area shows.
const historyTail = 8

// Model
type playModel struct {
	cube     *nxncube.Cube
	renderer *render.Renderer
	logger   logrus.FieldLogger
	session  string

	// Selection
	side  nxncube.Side
	layer int

	history  []nxncube.Turn
	err      error
	quitting bool
}

func newPlayModel(c *nxncube.Cube, r *render.Renderer, logger logrus.FieldLogger) *playModel {
	session := uuid.NewString()
	return &playModel{
		cube:     c,
		renderer: r,
		logger:   logger.WithField("session", session),
		session:  session,
		side:     nxncube.Front,
		layer:    1,
	}
}

func (m *playModel) Init() tea.Cmd {
	m.logger.WithField("order", m.cube.Order()).Info("play session started")
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.logger.WithField("turns", len(m.history)).Info("play session ended")
		return m, tea.Quit

	case "u", "d", "f", "b", "r", "l":
		side, err := nxncube.ParseSide(k)
		if err == nil {
			m.side = side
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if n := int(k[0] - '0'); n <= m.cube.Order() {
			m.layer = n
			m.err = nil
		} else {
			m.err = fmt.Errorf("%w: %d not in [1, %d]", nxncube.ErrInvalidLayer, n, m.cube.Order())
		}

	case "left":
		m.turn(nxncube.Turn{Side: m.side, Layer: m.layer, Degree: 90})

	case "right":
		m.turn(nxncube.Turn{Side: m.side, Layer: m.layer, Degree: -90})

	case "c":
		m.cube.Reset()
		m.history = nil
		m.err = nil
		m.logger.Debug("cube reset")
	}

	return m, nil
}

func (m *playModel) turn(t nxncube.Turn) {
	if err := m.cube.Apply(t); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.history = append(m.history, t)
	m.logger.WithField("turn", t.String()).Debug("turn applied")
}

// marked highlights the stickers that the selected layer would move.
func (m *playModel) marked(side nxncube.Side, row, col int) bool {
	return nxncube.InLayer(m.cube.Order(), m.side, m.layer, side, row, col)
}

func (m *playModel) View() string {
	if m.quitting {
		return fmt.Sprintf("%d turns, session %s\n", len(m.history), m.session)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("nxncube %dx%d", m.cube.Order(), m.cube.Order())))
	b.WriteString(statusStyle.Render("  session " + m.session[:8]))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Net(m.cube, m.marked))
	b.WriteString("\n\n")

	b.WriteString("Side: " + selectStyle.Render(m.side.Name()))
	b.WriteString("  Layer: " + selectStyle.Render(fmt.Sprintf("%d", m.layer)))
	if m.cube.IsSolved() {
		b.WriteString("  " + turnStyle.Render("solved"))
	}
	b.WriteString("\n")

	tail := m.history
	if len(tail) > historyTail {
		tail = tail[len(tail)-historyTail:]
	}
	b.WriteString(fmt.Sprintf("Turns (%d): %s\n", len(m.history), turnStyle.Render(notation.FormatSequence(tail))))
	if n := len(m.history); n > 0 {
		b.WriteString("Last: " + notation.Describe(m.history[n-1]) + "\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[udfbrl] side  [1-9] layer  [←/→] turn  [c] reset  [q] quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := newCube(cfg, logger, nil)
	if err != nil {
		return err
	}

	r := render.New(cfg.Hex, plainOutput(cfg, false, cmd.OutOrStdout()))
	p := tea.NewProgram(newPlayModel(c, r, logger), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
