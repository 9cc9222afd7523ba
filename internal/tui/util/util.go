// Package util holds the messages and helpers shared by the components of
// the terminal interface.
package util

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

type Model interface {
	tea.Model
	tea.ViewModel
}

func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// InfoType is the severity of a status message.
type InfoType int

const (
	InfoTypeInfo InfoType = iota
	InfoTypeWarn
	InfoTypeError
)

func (t InfoType) String() string {
	switch t {
	case InfoTypeWarn:
		return "warn"
	case InfoTypeError:
		return "error"
	default:
		return "info"
	}
}

// InfoMsg asks the status bar to show Msg. A zero TTL uses the status bar
// default.
type InfoMsg struct {
	Type InfoType
	Msg  string
	TTL  time.Duration
}

// ClearStatusMsg removes the current status message.
type ClearStatusMsg struct{}

func report(t InfoType, msg string) tea.Cmd {
	slog.Debug("Status reported", "type", t, "msg", msg)
	return CmdHandler(InfoMsg{Type: t, Msg: msg})
}

func ReportError(err error) tea.Cmd {
	slog.Error("Error reported", "error", err)
	return report(InfoTypeError, err.Error())
}

func ReportWarn(warn string) tea.Cmd {
	return report(InfoTypeWarn, warn)
}

func ReportInfo(info string) tea.Cmd {
	return report(InfoTypeInfo, info)
}

// Clamp limits v to [low, high]. The bounds may be given in either order.
func Clamp(v, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return min(high, max(low, v))
}
