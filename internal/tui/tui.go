package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/listadapter/internal/adapter"
	"github.com/charmbracelet/listadapter/internal/catalog"
	"github.com/charmbracelet/listadapter/internal/config"
	"github.com/charmbracelet/listadapter/internal/highlight"
	"github.com/charmbracelet/listadapter/internal/tui/components/cells"
	"github.com/charmbracelet/listadapter/internal/tui/components/status"
	"github.com/charmbracelet/listadapter/internal/tui/list"
	"github.com/charmbracelet/listadapter/internal/tui/util"
)

const (
	appName = "listadapter"

	bannerHint = "Keys: h hides this banner, b folds this text, r reloads the catalog, enter selects."
)

// Options configure the application model.
type Options struct {
	Config  *config.Config
	Catalog *catalog.Document
	// Reload fetches the catalog again. Nil disables reloading.
	Reload func() (*catalog.Document, error)
}

// ReloadMsg asks the application to read the catalog again, the same as
// pressing the reload key.
type ReloadMsg struct{}

type (
	catalogLoadedMsg struct {
		doc *catalog.Document
		err error
	}
	highlightedMsg struct {
		count int
	}
)

// appModel drives a single list: the host renders and scrolls, the adapter
// feeds it rows built from the catalog.
type appModel struct {
	width, height int
	keyMap        KeyMap

	list    list.List
	adapter *adapter.Adapter
	status  status.StatusCmp

	cfg     *config.Config
	doc     *catalog.Document
	reload  func() (*catalog.Document, error)
	builder *catalog.Builder
	cache   *highlight.Cache

	banner   *cells.Banner
	expanded bool

	// commands produced by row callbacks during the current update
	pending []tea.Cmd
}

func (a *appModel) Init() tea.Cmd {
	return tea.Batch(
		a.list.Init(),
		a.status.Init(),
		a.warmHighlights(),
	)
}

func (a *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.handleWindowResize(msg)
	case tea.KeyPressMsg:
		return a, a.handleKeyPressMsg(msg)
	case ReloadMsg:
		return a, a.startReload()
	case catalogLoadedMsg:
		a.list.Focus()
		if msg.err != nil {
			return a, util.ReportError(msg.err)
		}
		a.setCatalog(msg.doc)
		return a, tea.Batch(
			a.warmHighlights(),
			util.ReportInfo(fmt.Sprintf("Reloaded %d rows", msg.doc.RowCount())),
		)
	case highlightedMsg:
		slog.Debug("Highlighted snippets", "count", msg.count)
		if msg.count > 0 {
			a.list.Refresh()
		}
		return a, nil
	case util.InfoMsg, util.ClearStatusMsg:
		_, cmd := a.status.Update(msg)
		return a, cmd
	}

	_, cmd := a.list.Update(msg)
	return a, tea.Batch(cmd, a.flush())
}

// handleWindowResize gives the list everything but the status bar and
// lets the adapter measure the banner for the new width.
func (a *appModel) handleWindowResize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width, a.height = msg.Width, max(msg.Height-1, 0)
	cmd := a.list.SetSize(a.width, a.height)
	a.adapter.ReconcileHeader()
	_, statusCmd := a.status.Update(msg)
	return tea.Batch(cmd, statusCmd)
}

func (a *appModel) handleKeyPressMsg(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keyMap.Quit):
		return tea.Quit
	case key.Matches(msg, a.keyMap.ToggleBanner):
		a.banner.SetHidden(!a.banner.Hidden())
		a.adapter.ReconcileHeader()
		return nil
	case key.Matches(msg, a.keyMap.ExpandBanner):
		a.expanded = !a.expanded
		a.banner.SetText(a.bannerText())
		a.adapter.ReloadHeaderView()
		return nil
	case key.Matches(msg, a.keyMap.Reload):
		return a.startReload()
	default:
		_, cmd := a.list.Update(msg)
		return tea.Batch(cmd, a.flush())
	}
}

// startReload reads the catalog off the update loop.
func (a *appModel) startReload() tea.Cmd {
	if a.reload == nil {
		return util.ReportWarn("Nothing to reload")
	}
	if !a.list.IsFocused() {
		// A reload is already running.
		return nil
	}
	// The rows are about to be replaced, so the list ignores input until
	// the new catalog arrives.
	a.list.Blur()
	reload := a.reload
	return func() tea.Msg {
		doc, err := reload()
		return catalogLoadedMsg{doc: doc, err: err}
	}
}

func (a *appModel) flush() tea.Cmd {
	if len(a.pending) == 0 {
		return nil
	}
	cmds := a.pending
	a.pending = nil
	return tea.Batch(cmds...)
}

func (a *appModel) onSelect(e catalog.Entry, pos adapter.Position) {
	msg := fmt.Sprintf("Opened %s", e.Title)
	if e.Sticky {
		msg = fmt.Sprintf("Selected %s", e.Title)
	}
	slog.Debug("Row selected", "position", pos, "title", e.Title, "sticky", e.Sticky)
	a.pending = append(a.pending, util.ReportInfo(msg))
}

func (a *appModel) onDeselect(e catalog.Entry, pos adapter.Position) {
	slog.Debug("Row deselected", "position", pos, "title", e.Title)
	a.pending = append(a.pending, util.ReportInfo(fmt.Sprintf("Deselected %s", e.Title)))
}

// setCatalog replaces every section at once and refreshes the banner.
func (a *appModel) setCatalog(doc *catalog.Document) {
	a.doc = doc
	header := a.cfg.Options.Header
	hidden := doc.Header.Hidden
	if header.Hidden != nil {
		hidden = *header.Hidden
	}
	a.banner.SetText(a.bannerText())
	a.banner.SetHidden(hidden)
	a.adapter.SetSections(a.builder.Sections(doc))
}

func (a *appModel) bannerText() string {
	text := a.doc.Header.Text
	if override := a.cfg.Options.Header.Text; override != "" {
		text = override
	}
	if a.expanded {
		if text == "" {
			return bannerHint
		}
		return text + "\n\n" + bannerHint
	}
	return text
}

// warmHighlights highlights every snippet off the update loop so code rows
// show colors as soon as they are filled.
func (a *appModel) warmHighlights() tea.Cmd {
	snippets := a.doc.Snippets()
	if len(snippets) == 0 {
		return nil
	}
	cache := a.cache
	return func() tea.Msg {
		return highlightedMsg{count: cache.Warm(snippets)}
	}
}

func (a *appModel) View() string {
	listView := lipgloss.NewStyle().
		Height(a.height).
		MaxHeight(a.height).
		Render(a.list.View())
	return lipgloss.JoinVertical(lipgloss.Left, listView, a.status.View())
}

func listOptions(cfg *config.Config) []list.ListOption {
	l := cfg.Options.List
	opts := []list.ListOption{list.WithGap(l.Gap)}
	if d := l.SettleDelay(); d > 0 {
		opts = append(opts, list.WithSettleDelay(d))
	}
	if d := l.DecelerationFrame(); d > 0 {
		opts = append(opts, list.WithDecelerationFrame(d))
	}
	return opts
}

func newModel(opts Options) *appModel {
	a := &appModel{
		cfg:    opts.Config,
		doc:    opts.Catalog,
		reload: opts.Reload,
		cache:  highlight.NewCache(),
		list:   list.New(listOptions(opts.Config)...),
	}
	a.keyMap = DefaultKeyMap(a.list.KeyMap())
	a.status = status.NewStatusCmp(a.keyMap)
	a.builder = catalog.NewBuilder(a.cache,
		catalog.WithOnSelect(a.onSelect),
		catalog.WithOnDeselect(a.onDeselect),
	)
	a.banner = cells.NewBanner(appName, "")
	a.adapter = adapter.New(a.list, adapter.WithHeaderView(a.banner))
	a.setCatalog(opts.Catalog)
	return a
}

// New creates the application model.
func New(opts Options) tea.Model {
	return newModel(opts)
}

// Snapshot renders the list once at the given size, without a terminal.
func Snapshot(opts Options, width, height int) string {
	a := newModel(opts)
	a.handleWindowResize(tea.WindowSizeMsg{Width: width, Height: height + 1})
	return a.list.View()
}
