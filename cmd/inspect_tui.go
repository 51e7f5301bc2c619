// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"strings"

	"github.com/Thermoquad/ev3uart/pkg/ev3uart"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

//////////////////////////////////////////////////////////////
// Types
//////////////////////////////////////////////////////////////

// entryItem is a bitstream entry in the message list
type entryItem struct {
	entry ev3uart.Entry
}

// Implement list.Item interface
func (i entryItem) Title() string {
	return fmt.Sprintf("[%04d] %s", i.entry.Offset, ev3uart.FormatKind(i.entry.Kind))
}
func (i entryItem) Description() string { return ev3uart.FormatMessage(i.entry.Message) }
func (i entryItem) FilterValue() string { return ev3uart.FormatKind(i.entry.Kind) }

// inspectModel is the Bubble Tea model for the inspect TUI
type inspectModel struct {
	profile   string
	stream    *ev3uart.Bitstream
	stats     *ev3uart.Statistics
	anomalies map[int][]ev3uart.ValidationError // By entry index

	entryList list.Model
	showDump  bool

	width    int
	height   int
	quitting bool
}

//////////////////////////////////////////////////////////////
// Model Initialization
//////////////////////////////////////////////////////////////

func initialInspectModel(profile string, b *ev3uart.Bitstream) inspectModel {
	entries := b.Entries()
	items := make([]list.Item, len(entries))
	anomalies := make(map[int][]ev3uart.ValidationError)
	for i, e := range entries {
		items[i] = entryItem{entry: e}
		if errs := ev3uart.ValidateMessage(e.Message); len(errs) > 0 {
			anomalies[i] = errs
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.SetHeight(2)
	entryList := list.New(items, delegate, 50, 20)
	entryList.Title = "Messages"
	entryList.SetShowStatusBar(false)
	entryList.SetShowHelp(false)
	entryList.SetFilteringEnabled(false)

	return inspectModel{
		profile:   profile,
		stream:    b,
		stats:     ev3uart.Collect(b),
		anomalies: anomalies,
		entryList: entryList,
		width:     100,
		height:    30,
	}
}

//////////////////////////////////////////////////////////////
// Bubble Tea Interface
//////////////////////////////////////////////////////////////

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.showDump = !m.showDump
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateListSize()
	}

	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	return m, cmd
}

func (m *inspectModel) updateListSize() {
	m.entryList.SetSize(m.leftWidth()-4, max(m.height-6, 4))
}

func (m inspectModel) leftWidth() int {
	return max(m.width*2/5, 30)
}

// selected returns the highlighted entry and its index
func (m inspectModel) selected() (ev3uart.Entry, int, bool) {
	item, ok := m.entryList.SelectedItem().(entryItem)
	if !ok {
		return ev3uart.Entry{}, -1, false
	}
	return item.entry, m.entryList.Index(), true
}

func (m inspectModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("ev3uart inspect"))
	s.WriteString(headerStyle.Render(fmt.Sprintf("  profile %s, %d messages, %d bytes",
		m.profile, len(m.stream.Entries()), m.stream.Len())))
	s.WriteString("\n\n")

	left := boxStyle.Width(m.leftWidth()).Render(m.entryList.View())

	var detail strings.Builder
	if m.showDump {
		detail.WriteString(labelStyle.Render("Bitstream") + "\n")
		detail.WriteString(ev3uart.HexDump(m.stream.Bytes()))
	} else if e, idx, ok := m.selected(); ok {
		detail.WriteString(labelStyle.Render("Kind:    ") + valueStyle.Render(ev3uart.FormatKind(e.Kind)) + "\n")
		detail.WriteString(labelStyle.Render("Header:  ") + valueStyle.Render(fmt.Sprintf("0x%02X (length class %d)", e.Header(), ev3uart.LengthClass(e.Header()))) + "\n")
		detail.WriteString(labelStyle.Render("Offset:  ") + valueStyle.Render(fmt.Sprintf("%d", e.Offset)) + "\n")
		detail.WriteString(labelStyle.Render("Length:  ") + valueStyle.Render(fmt.Sprintf("%d bytes", len(e.Raw))) + "\n")
		detail.WriteString(labelStyle.Render("Args:    ") + ev3uart.FormatMessage(e.Message) + "\n\n")
		detail.WriteString(labelStyle.Render("Bytes") + "\n")
		detail.WriteString(ev3uart.HexDump(e.Raw))

		if errs := m.anomalies[idx]; len(errs) > 0 {
			detail.WriteString("\n" + labelStyle.Render("Anomalies") + "\n")
			for _, v := range errs {
				detail.WriteString(warningStyle.Render("  ! "+v.Message) + "\n")
			}
		}
	}

	detail.WriteString("\n" + labelStyle.Render("Statistics") + "\n")
	detail.WriteString(m.stats.String())

	rightWidth := max(m.width-m.leftWidth()-6, 30)
	right := boxStyle.Width(rightWidth).Render(detail.String())

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render("up/down select  tab toggle dump  q quit"))
	return s.String()
}
