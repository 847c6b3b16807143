package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"linetrace/traceparse"
)

var followKeep int

func init() {
	followCmd.Flags().IntVar(&followKeep, "keep", 20, "number of recent lines to keep on screen")
}

var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Render a live view of trace lines read from stdin",
	Long:  `Follow reads trace-format lines from stdin and renders a live view with per-tag counters, e.g. "someprog 2>&1 | linetrace follow"`,
	RunE:  runFollow,
}

func runFollow(cmd *cobra.Command, args []string) error {
	lines := make(chan traceparse.Record, 64)

	go func() {
		defer close(lines)
		sc := newLineScanner(cmd.InOrStdin())
		for sc.Scan() {
			rec, err := traceparse.ParseLine(sc.Text())
			if err != nil {
				continue
			}
			lines <- rec
		}
	}()

	model := newFollowModel(followKeep, lines)
	program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("follow view failed: %w", err)
	}
	return nil
}

type followModel struct {
	spinner spinner.Model
	lines   <-chan traceparse.Record
	recent  []traceparse.Record
	counts  map[byte]int
	total   int
	keep    int
	width   int
	done    bool
}

type lineMsg traceparse.Record
type eofMsg struct{}

func newFollowModel(keep int, lines <-chan traceparse.Record) *followModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	if keep <= 0 {
		keep = 20
	}
	return &followModel{
		spinner: sp,
		lines:   lines,
		counts:  make(map[byte]int),
		keep:    keep,
		width:   80,
	}
}

func (m *followModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForLine())
}

func (m *followModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lineMsg:
		rec := traceparse.Record(msg)
		m.counts[rec.Tag]++
		m.total++
		m.recent = append(m.recent, rec)
		if len(m.recent) > m.keep {
			m.recent = m.recent[len(m.recent)-m.keep:]
		}
		return m, m.listenForLine()
	case eofMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *followModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))

	header := fmt.Sprintf("%d trace lines%s", m.total, countSummary(m.counts))
	if m.done {
		header = "done: " + header
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for _, rec := range m.recent {
		line := truncate(rec.Format(), m.width-2)
		prefix := line
		body := ""
		if len(line) > traceparse.PrefixLen {
			prefix, body = line[:traceparse.PrefixLen], line[traceparse.PrefixLen:]
		}
		b.WriteString("  ")
		b.WriteString(tagStyle(rec.Tag).Render(prefix))
		b.WriteString(body)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *followModel) listenForLine() tea.Cmd {
	return func() tea.Msg {
		rec, ok := <-m.lines
		if !ok {
			return eofMsg{}
		}
		return lineMsg(rec)
	}
}

func countSummary(counts map[byte]int) string {
	if len(counts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(counts))
	for _, tag := range []byte{'E', 'O', 'L', 'T'} {
		if n, ok := counts[tag]; ok {
			parts = append(parts, fmt.Sprintf("%c:%d", tag, n))
		}
	}
	other := 0
	for tag, n := range counts {
		switch tag {
		case 'E', 'O', 'L', 'T':
		default:
			other += n
		}
	}
	if other > 0 {
		parts = append(parts, fmt.Sprintf("other:%d", other))
	}
	return " (" + strings.Join(parts, " ") + ")"
}

func tagStyle(tag byte) lipgloss.Style {
	switch tag {
	case 'E':
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	case 'L':
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	case 'T':
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
