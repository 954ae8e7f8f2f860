package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zenmetrics/zenmon/internal/config"
	"github.com/zenmetrics/zenmon/internal/model"
	"github.com/zenmetrics/zenmon/internal/smu"
)

// Model renders live PM table readings in a dashboard.
type Model struct {
	reader     *smu.Reader
	th         config.Thresholds
	smuVersion string

	reading  *model.Reading
	err      error
	interval time.Duration

	showTemps bool
	showPower bool
	showFreq  bool

	width  int
	height int
}

func New(reader *smu.Reader, cfg config.Config) *Model {
	smuVersion, err := reader.Version()
	if err != nil {
		smuVersion = "Unknown"
	}
	return &Model{
		reader:     reader,
		th:         cfg.Thresholds,
		smuVersion: smuVersion,
		interval:   cfg.Interval,
		showTemps:  true,
		showPower:  true,
		showFreq:   true,
		width:      120,
		height:     40,
	}
}

// Messages
type (
	tickMsg struct{}
	readMsg struct {
		reading *model.Reading
		err     error
	}
)

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) readCmd() tea.Cmd {
	reader := m.reader
	return func() tea.Msg {
		reading, err := reader.Read()
		return readMsg{reading: reading, err: err}
	}
}

func (m *Model) Init() tea.Cmd { return m.readCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.showTemps = !m.showTemps
		case "p":
			m.showPower = !m.showPower
		case "f":
			m.showFreq = !m.showFreq
		case "+", "=":
			m.interval += 100 * time.Millisecond
		case "-":
			if m.interval-100*time.Millisecond >= 100*time.Millisecond {
				m.interval -= 100 * time.Millisecond
			}
		}
	case tickMsg:
		return m, m.readCmd()
	case readMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.reading = msg.reading
			m.err = nil
		}
		return m, m.tickCmd()
	}
	return m, nil
}

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	critStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)
)

func (m *Model) View() string {
	r := m.reading

	familyName := "Unknown"
	version := "?"
	if r != nil {
		familyName = r.FamilyName
		version = fmt.Sprintf("%#x", r.Version)
	}
	header := titleStyle.Render(fmt.Sprintf("AMD Ryzen (%s)", familyName)) + "  " +
		subtleStyle.Render(fmt.Sprintf("%s | PM Table v%s | Refresh: %dms",
			m.smuVersion, version, m.interval.Milliseconds()))

	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			card("Error", errorStyle.Render(m.err.Error())),
			footer())
	}
	if r == nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, card("Status", "Loading..."), footer())
	}

	var rows []string
	if m.showPower {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			m.limitCard("PPT (Power)", r.PPTValue, r.PPTLimit, "W"),
			m.limitCard("TDC (Current)", r.TDCValue, r.TDCLimit, "A"),
			m.limitCard("EDC (Peak)", r.EDCValue, r.EDCLimit, "A")))
	}
	if m.showTemps {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			m.tempCard("Tctl (Junction)", r.Tctl, r.THMLimit, m.th.TctlWarn, m.th.TctlCrit),
			m.tempCard("SoC Temperature", r.SocTemp, 80, m.th.SocWarn, m.th.SocCrit)))
	}
	rows = append(rows, m.coresCard(r))

	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{header}, append(rows, footer())...)...)
}

func (m *Model) limitCard(title string, value, limit float64, unit string) string {
	p := ratio(value, limit)
	bar := m.coloredGauge(p, p, m.th.LimitWarn, m.th.LimitCrit)
	return card(title, fmt.Sprintf("%s\n%.1f%s / %.1f%s", bar, value, unit, limit, unit))
}

func (m *Model) tempCard(title string, value, scale, warn, crit float64) string {
	p := ratio(value, scale)
	bar := m.coloredGauge(p, value, warn, crit)
	return card(title, fmt.Sprintf("%s\n%.1f°C", bar, value))
}

// coloredGauge renders a bar at pct full, colored by comparing level
// against the warn/crit thresholds.
func (m *Model) coloredGauge(pct, level, warn, crit float64) string {
	bar := gaugeBar(pct, 24)
	switch {
	case level >= crit:
		return critStyle.Render(bar)
	case level >= warn:
		return warnStyle.Render(bar)
	default:
		return okStyle.Render(bar)
	}
}

func (m *Model) coresCard(r *model.Reading) string {
	var lines []string

	if m.showTemps && len(r.CoreTemps) > 0 {
		var b strings.Builder
		b.WriteString("Temps:  ")
		for i, t := range r.CoreTemps {
			if t > 0 {
				s := fmt.Sprintf("C%d: %5.1f°C  ", i, t)
				switch {
				case t >= m.th.TctlCrit:
					b.WriteString(critStyle.Render(s))
				case t >= m.th.TctlWarn:
					b.WriteString(warnStyle.Render(s))
				default:
					b.WriteString(okStyle.Render(s))
				}
			}
		}
		lines = append(lines, b.String())
	}

	if m.showFreq && len(r.CoreFreqs) > 0 {
		var b strings.Builder
		b.WriteString("Freqs:  ")
		for i, f := range r.CoreFreqs {
			if f > 0 {
				fmt.Fprintf(&b, "C%d: %4.0fMHz  ", i, f)
			}
		}
		lines = append(lines, b.String())
	}

	if m.showPower && len(r.CorePower) > 0 {
		var b strings.Builder
		b.WriteString("Power:  ")
		for i, p := range r.CorePower {
			if p > 0 {
				b.WriteString(warnStyle.Render(fmt.Sprintf("C%d: %5.2fW  ", i, p)))
			}
		}
		lines = append(lines, b.String())
	}

	if len(r.CoreC0) > 0 {
		var b strings.Builder
		b.WriteString("C0:     ")
		for i, c0 := range r.CoreC0 {
			fmt.Fprintf(&b, "C%d: %5.1f%%  ", i, c0)
		}
		lines = append(lines, b.String())
	}

	if len(lines) == 0 {
		lines = append(lines, subtleStyle.Render("no per-core telemetry"))
	}
	return card("Per-Core Metrics", strings.Join(lines, "\n"))
}

func footer() string {
	return subtleStyle.Render(" [q] Quit  [t] Temps  [p] Power  [f] Freq  [+/-] Interval ")
}

// Helpers
func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

func card(title, body string) string {
	titleStr := labelStyle.Render(title)
	return cardStyle.Render(titleStr + "\n" + body)
}

func ratio(value, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	p := value * 100 / limit
	if p > 100 {
		p = 100
	}
	return p
}

// Run starts the Bubble Tea program.
func Run(reader *smu.Reader, cfg config.Config) error {
	prog := tea.NewProgram(New(reader, cfg), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
