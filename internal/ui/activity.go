package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/insights/internal/logging"
	"github.com/five82/insights/internal/logtail"
)

type activityMsg struct {
	entries []logtail.Entry
}

type activityErrMsg struct {
	err error
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, ActivityLineLimit)
		if err != nil {
			return activityErrMsg{err: err}
		}
		return activityMsg{entries: logtail.ParseLines(lines)}
	}
}

// renderActivity renders the log tail view.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()

	title := styles.Text.Bold(true).Render("Activity") + "  " +
		styles.FaintText.Render(truncate(m.config.LogFile, max(m.width-16, 10)))
	if m.activityErr != nil {
		title += "  " + styles.DangerText.Render(m.activityErr.Error())
	}

	body := m.activity.View()
	if strings.TrimSpace(body) == "" {
		body = styles.MutedText.Render("No activity yet")
	}
	return styles.Panel.Width(max(m.width-2, 20)).Render(title + "\n" + body)
}

// renderActivityLines formats parsed log entries, oldest first.
func (m Model) renderActivityLines(entries []logtail.Entry) string {
	styles := m.theme.Styles()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, formatActivityLine(e, styles))
	}
	return strings.Join(lines, "\n")
}

func formatActivityLine(e logtail.Entry, styles Styles) string {
	if e.Level == "" && e.Message == "" {
		return styles.MutedText.Render(e.Raw)
	}

	var parts []string
	if !e.Time.IsZero() {
		parts = append(parts, styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
	}

	level := strings.ToUpper(e.Level)
	switch e.Level {
	case "error", "fatal", "panic":
		parts = append(parts, styles.DangerText.Render(padRight(level, 5)))
	case "warning", "warn":
		parts = append(parts, styles.WarningText.Render(padRight("WARN", 5)))
	case "debug", "trace":
		parts = append(parts, styles.InfoText.Render(padRight(level, 5)))
	default:
		parts = append(parts, styles.SuccessText.Render(padRight(level, 5)))
	}

	if e.Component != "" {
		parts = append(parts, styles.AccentText.Render("["+e.Component+"]"))
	}
	parts = append(parts, styles.Text.Render(e.Message))

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		if k == logging.SessionField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, styles.FaintText.Render(k+"="+e.Fields[k]))
	}
	return strings.Join(parts, " ")
}
