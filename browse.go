// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/phonebook/contact"
)

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusList
	focusDetail
)

// Model is the state of the contact browser.
type Model struct {
	ready bool

	searchInput    textinput.Model
	recordsList    list.Model
	detailViewport viewport.Model

	// Data
	book  *contact.Book
	order contact.Order

	// State
	focusIndex int
	lastQuery  string
	status     string
	statusErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the browser
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// recordItem is a list entry titled by the active ordering's key.
type recordItem struct {
	record contact.Record
	order  contact.Order
}

func (i recordItem) FilterValue() string { return i.order.Key(i.record) }
func (i recordItem) Title() string       { return i.order.Key(i.record) }
func (i recordItem) Description() string { return i.order.Other().Key(i.record) }

// InitialModel creates the browser state over book.
func InitialModel(book *contact.Book, order contact.Order) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a name or number prefix..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 50

	recordsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	recordsList.SetShowTitle(false)
	recordsList.SetShowHelp(false)
	recordsList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a contact to see its details...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		searchInput:     ti,
		recordsList:     recordsList,
		detailViewport:  detailViewport,
		book:            book,
		order:           order,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.updateRecords("")
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
		if m.focusIndex == focusInput {
			m.searchInput.Focus()
		} else {
			m.searchInput.Blur()
		}
		return m, nil

	case "f2":
		m.order = m.order.Other()
		m.updateRecords(m.searchInput.Value())
		m.setStatus(fmt.Sprintf("Ordered by %s", m.order), false)
		return m, nil

	case "enter":
		if r, ok := m.selectedRecord(); ok {
			if err := clipboard.WriteAll(r.String()); err != nil {
				m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("Copied %s to clipboard", r.Name), false)
			}
		}
		return m, nil

	case "ctrl+d":
		m.deleteSelected()
		return m, nil
	}

	switch m.focusIndex {
	case focusInput:
		m.searchInput, cmd = m.searchInput.Update(msg)
		if query := m.searchInput.Value(); query != m.lastQuery {
			m.updateRecords(query)
		}
	case focusList:
		m.recordsList, cmd = m.recordsList.Update(msg)
		m.updateDetail()
	case focusDetail:
		m.detailViewport, cmd = m.detailViewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) selectedRecord() (contact.Record, bool) {
	item, ok := m.recordsList.SelectedItem().(recordItem)
	if !ok {
		return contact.Record{}, false
	}
	return item.record, true
}

func (m *Model) deleteSelected() {
	r, ok := m.selectedRecord()
	if !ok {
		return
	}
	if !m.book.DeleteRecord(r) {
		m.setStatus(fmt.Sprintf("%s is already gone", r.Name), true)
		return
	}
	idx := m.recordsList.Index()
	m.updateRecords(m.searchInput.Value())
	if n := len(m.recordsList.Items()); idx >= n && n > 0 {
		idx = n - 1
	}
	m.recordsList.Select(idx)
	m.updateDetail()
	m.setStatus(fmt.Sprintf("Deleted %s (%s)", r.Name, r.Phone), false)
}

// matchingRecords returns the records whose key in the active ordering
// starts with query, case-insensitively, in tree order.
func matchingRecords(book *contact.Book, order contact.Order, query string) []contact.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []contact.Record
	for r := range book.All(order) {
		if strings.HasPrefix(strings.ToLower(order.Key(r)), query) {
			out = append(out, r)
		}
	}
	return out
}

// updateRecords refreshes the list for query
func (m *Model) updateRecords(query string) {
	m.lastQuery = query
	matches := matchingRecords(m.book, m.order, query)

	items := make([]list.Item, len(matches))
	for i, r := range matches {
		items[i] = recordItem{record: r, order: m.order}
	}
	m.recordsList.SetItems(items)
	m.recordsList.Select(0)
	m.updateDetail()
}

// recordMarkdown renders a record as a small markdown document.
func recordMarkdown(r contact.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.Name)
	sb.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Phone Number | %s |\n", r.Phone)
	fmt.Fprintf(&sb, "| Address | %s |\n", r.Address)
	return sb.String()
}

// updateDetail shows the selected record in the detail viewport
func (m *Model) updateDetail() {
	r, ok := m.selectedRecord()
	if !ok {
		m.detailViewport.SetContent("No contact matches the search.")
		return
	}
	md := recordMarkdown(r)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(md); err == nil {
			m.detailViewport.SetContent(rendered)
			return
		}
	}
	// Fall back to the plain three-line form
	m.detailViewport.SetContent(r.String())
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.searchInput.Width = leftWidth - 4
	m.recordsList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = listHeight + inputHeight
}

func (m Model) border(focus int) lipgloss.Style {
	if m.focusIndex == focus {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

func (m Model) title(text string, focus int) string {
	if m.focusIndex == focus {
		return text + " (Active) "
	}
	return text + " "
}

// View renders the browser
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.border(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(m.title(fmt.Sprintf(" 🔍 Search by %s", m.order), focusInput)),
			m.searchInput.View(),
		))

	listBox := m.border(focusList).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(m.title(fmt.Sprintf(" 📇 Contacts (%d)", len(m.recordsList.Items())), focusList)),
			m.recordsList.View(),
		))

	detailBox := m.border(focusDetail).
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(m.title(" 📖 Details", focusDetail)),
			m.detailViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		detailBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter())
}

func (m Model) renderFooter() string {
	keys := []string{"enter", "ctrl+d", "f2", "tab", "esc"}
	descs := []string{"copy contact", "delete contact", "toggle order", "switch focus", "quit"}

	var parts []string
	for i := range keys {
		parts = append(parts, m.styles.HelpKey.Render(keys[i])+" "+m.styles.HelpDesc.Render(descs[i]))
	}
	footer := strings.Join(parts, " • ")

	if m.status != "" {
		style := m.styles.SuccessMessage
		if m.statusErr {
			style = m.styles.ErrorMessage
		}
		footer = style.Render(m.status) + "  " + footer
	}
	return footer
}

// runBrowser starts the Bubble Tea application
func runBrowser(book *contact.Book, order contact.Order) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(book, order),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
