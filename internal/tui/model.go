package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"arcadia/internal/catalog"
	"arcadia/internal/engine"
	"arcadia/internal/storage"
	"arcadia/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *storage.Profile
	expBar  progress.Model

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile *storage.Profile
	err     error
}

type spunMsg struct {
	res *engine.SpinResult
	err error
}

type tickMsg time.Time

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		expBar:  bar,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd())
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		return loadedMsg{profile: p, err: err}
	}
}

func (m boardModel) spinCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Spin(m.ctx)
		return spunMsg{res: res, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		// Keeps the wheel countdown moving.
		return m, tickCmd()
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case spunMsg:
		if msg.err != nil {
			m.lastLog = "Spin failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		seg := msg.res.Segment
		switch {
		case seg.Shards > 0:
			m.lastLog = fmt.Sprintf("The wheel stops on %s: +%d MS!", seg.Label, seg.Shards)
		case seg.ItemID != "":
			m.lastLog = fmt.Sprintf("The wheel stops on %s: you win %s!", seg.Label, catalog.Name(seg.ItemID))
		default:
			m.lastLog = seg.Message
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "w":
			if m.profile == nil {
				return m, nil
			}
			m.lastLog = "Spinning…"
			return m, m.spinCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.profile == nil {
		return "Arcadia — loading…\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	p := m.profile
	var bar string
	if p.Level >= engine.LevelCap {
		bar = ui.Gold.Render("MAX")
	} else {
		bar = m.expBar.ViewAs(float64(p.Exp) / float64(p.ExpToNext))
	}
	return fmt.Sprintf("%s %s | Level %d | EXP %s | %s %d MS",
		p.Avatar, p.Name, p.Level, bar, ui.IconShard, p.Shards)
}

func (m boardModel) renderSidebar() string {
	p := m.profile
	lines := []string{ui.IconBag + " Equipment"}
	for _, slot := range catalog.Slots {
		id := p.Equipped[string(slot)]
		name := "(empty)"
		if id != "" {
			name = catalog.Name(id)
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", slot, name))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- w: spin the wheel")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	p := m.profile
	var out []string

	out = append(out, ui.IconWheel+" Prize Wheel")
	if rem := m.svc.WheelRemaining(p); rem > 0 {
		out = append(out, fmt.Sprintf("- next spin in %s", rem.Round(time.Second)))
	} else {
		out = append(out, fmt.Sprintf("- ready (spin costs %d MS)", m.svc.Balance().WheelSpinCost))
	}
	out = append(out, "")

	out = append(out, fmt.Sprintf("%s Arcade (%s %d)", ui.IconArcade, ui.IconKey, p.ArcadeKeys))
	for _, g := range engine.Games() {
		state := ui.IconOpen
		if engine.Locked(p, g) {
			state = ui.IconLock
		}
		cleared := ""
		if p.HasCleared(g.ID) {
			cleared = " " + ui.IconTrophy
		}
		out = append(out, fmt.Sprintf("- %s %s (%d %s)%s", state, g.Title, g.RequiredKeys, ui.IconKey, cleared))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
