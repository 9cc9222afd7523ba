package status

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
	"github.com/charmbracelet/listadapter/internal/tui/util"
)

const defaultMessageTTL = 5 * time.Second

type StatusCmp interface {
	util.Model
	Info() util.InfoMsg
}

type statusCmp struct {
	info       util.InfoMsg
	width      int
	messageTTL time.Duration
	help       help.Model
	keyMap     help.KeyMap
}

// clearMessageCmd clears the status message after ttl.
func (m *statusCmp) clearMessageCmd(ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return util.ClearStatusMsg{}
	})
}

func (m *statusCmp) Init() tea.Cmd {
	return nil
}

func (m *statusCmp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case util.InfoMsg:
		m.info = msg
		ttl := msg.TTL
		if ttl == 0 {
			ttl = m.messageTTL
		}
		return m, m.clearMessageCmd(ttl)
	case util.ClearStatusMsg:
		m.info = util.InfoMsg{}
	}
	return m, nil
}

func (m *statusCmp) Info() util.InfoMsg {
	return m.info
}

func (m *statusCmp) View() string {
	t := styles.CurrentTheme()
	status := t.S().Base.Padding(0, 1).Render(m.help.View(m.keyMap))
	if m.info.Msg != "" {
		base := t.S().Base.Foreground(t.FgSelected).Padding(0, 1).Width(m.width).MaxHeight(1)
		switch m.info.Type {
		case util.InfoTypeError:
			status = base.Background(t.Error).Render(m.info.Msg)
		case util.InfoTypeWarn:
			status = base.Background(t.Warning).Render(m.info.Msg)
		default:
			status = base.Background(t.Info).Render(m.info.Msg)
		}
	}
	return status
}

// NewStatusCmp returns a one line status bar showing short help for keyMap,
// replaced by info messages until they expire.
func NewStatusCmp(keyMap help.KeyMap) StatusCmp {
	t := styles.CurrentTheme()
	h := help.New()
	h.Styles = t.S().Help
	return &statusCmp{
		messageTTL: defaultMessageTTL,
		help:       h,
		keyMap:     keyMap,
	}
}
