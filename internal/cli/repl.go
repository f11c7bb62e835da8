package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cupstack/pkg/buildinfo"
	"github.com/matzehuels/cupstack/pkg/canvas"
	"github.com/matzehuels/cupstack/pkg/command"
	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/sink"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// maxLogLines is how many past commands the REPL keeps on screen.
const maxLogLines = 8

var (
	replPromptStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	replNoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorYellow).
			Foreground(colorYellow).
			Padding(0, 1)
)

// replCommand creates the interactive session command.
func (c *CLI) replCommand() *cobra.Command {
	var (
		hidden bool
		script string
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drive a tower interactively",
		Long: `Drive a tower interactively.

Type commands such as "pushCup 3" or "cover" and press enter. While the tower
is visible, failed commands raise a notice. Type "help" for the command list
and "exit" or press esc to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			scene := canvas.NewScene()
			notices := &noticeBuffer{}
			t := c.newTower(cfg, scene, notices)
			if !hidden {
				if err := t.MakeVisible(); err != nil {
					return err
				}
			}

			m := newReplModel(t, scene, notices)
			if script != "" {
				data, _, err := readScript(script)
				if err != nil {
					return err
				}
				for _, line := range strings.Split(string(data), "\n") {
					m = m.execute(line)
				}
			}

			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "start with the tower hidden")
	cmd.Flags().StringVar(&script, "script", "", "run this script before handing over")

	return cmd
}

// noticeBuffer collects the messages a visible tower raises.
type noticeBuffer struct {
	msgs []string
}

func (n *noticeBuffer) NotifyError(msg string) {
	n.msgs = append(n.msgs, msg)
}

// last returns the newest notice, or "".
func (n *noticeBuffer) last() string {
	if len(n.msgs) == 0 {
		return ""
	}
	return n.msgs[len(n.msgs)-1]
}

// =============================================================================
// replModel
// =============================================================================

// replLine is one entry in the REPL log.
type replLine struct {
	input  string
	output string
	failed bool
}

// replModel is the bubbletea model for the interactive session.
type replModel struct {
	t       *tower.Tower
	scene   *canvas.Scene
	notices *noticeBuffer

	input   string
	history []string
	histIdx int
	log     []replLine
	notice  string
	done    bool
}

func newReplModel(t *tower.Tower, scene *canvas.Scene, notices *noticeBuffer) replModel {
	return replModel{t: t, scene: scene, notices: notices}
}

func (m replModel) Init() tea.Cmd {
	return nil
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.done = true
		return m, tea.Quit
	case "enter":
		m = m.execute(m.input)
		m.input = ""
		if m.done {
			return m, tea.Quit
		}
	case "backspace":
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case "up":
		if m.histIdx > 0 {
			m.histIdx--
			m.input = m.history[m.histIdx]
		}
	case "down":
		if m.histIdx < len(m.history)-1 {
			m.histIdx++
			m.input = m.history[m.histIdx]
		} else {
			m.histIdx = len(m.history)
			m.input = ""
		}
	default:
		switch key.Type {
		case tea.KeyRunes:
			m.input += string(key.Runes)
		case tea.KeySpace:
			m.input += " "
		}
	}
	return m, nil
}

// execute runs one input line and records the outcome.
func (m replModel) execute(line string) replModel {
	line = strings.TrimSpace(line)
	if line == "" {
		return m
	}
	m.history = append(m.history, line)
	m.histIdx = len(m.history)
	m.notice = ""

	switch line {
	case "help":
		return m.record(replLine{input: line, output: helpText()})
	case "clear":
		m.log = nil
		return m
	}

	cmd, ok, err := command.Parse(line)
	if err != nil {
		return m.record(replLine{input: line, output: errors.UserMessage(err), failed: true})
	}
	if !ok {
		return m
	}

	before := len(m.notices.msgs)
	res := command.Exec(m.t, cmd)
	if res.Exit {
		m.done = true
		return m
	}
	if len(m.notices.msgs) > before {
		m.notice = m.notices.last()
	}

	entry := replLine{input: cmd.String(), output: res.Output}
	if res.Err != nil {
		entry.failed = true
		entry.output = errors.UserMessage(res.Err)
	}
	return m.record(entry)
}

func (m replModel) record(l replLine) replModel {
	m.log = append(m.log, l)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
	return m
}

func (m replModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName) + " " + StyleDim.Render(buildinfo.Short()))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.status()))
	b.WriteString("\n\n")

	if m.t.Visible() {
		if art := sink.RenderTerminal(m.scene.Rects()); art != "" {
			b.WriteString(art)
			b.WriteString("\n\n")
		}
	} else {
		b.WriteString(StyleDim.Render("tower hidden, type makeVisible to show it"))
		b.WriteString("\n\n")
	}

	for _, l := range m.log {
		icon := styleIconSuccess.Render(iconSuccess)
		if l.failed {
			icon = styleIconError.Render(iconError)
		}
		b.WriteString(icon + " " + StyleValue.Render(l.input) + "\n")
		if l.output != "" {
			for _, out := range strings.Split(l.output, "\n") {
				b.WriteString("  " + StyleDim.Render(out) + "\n")
			}
		}
	}

	if m.notice != "" {
		b.WriteString(replNoticeStyle.Render(iconWarning + " " + m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(replPromptStyle.Render(iconInfo) + " " + m.input + "█\n")
	b.WriteString(StyleDim.Render("⏎ run  ↑/↓ history  help  esc quit"))
	return b.String()
}

func (m replModel) status() string {
	state := "ok"
	if !m.t.Ok() {
		state = "failed"
	}
	return fmt.Sprintf("height %d/%d · %d cups · %s", m.t.Height(), m.t.MaxHeight(), m.t.Len(), state)
}

// helpText lists every command with its usage.
func helpText() string {
	lines := make([]string, 0, len(command.Ops)+2)
	for _, op := range command.Ops {
		lines = append(lines, op.Usage())
	}
	return strings.Join(append(lines, "help", "clear"), "\n")
}
