package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-relations-map/internal/app"
	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/service"
	"github.com/MKhiriev/go-relations-map/internal/utils"
	"github.com/MKhiriev/go-relations-map/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusPersonA
	focusPersonB
	focusType
	focusSubmit
	focusCount
)

const statusTTL = 2 * time.Second

// relationsModel is the single screen of the terminal front end. All state is
// owned by the Update loop; fetches run as commands and report back through
// searchDoneMsg and submitDoneMsg.
type relationsModel struct {
	ctx       context.Context
	services  *service.Services
	layout    service.Layout
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	traceIDs  *utils.UUIDGenerator
	copyText  func(string) error

	search  textinput.Model
	spinner spinner.Model
	focus   focusArea
	cursorA int
	cursorB int

	people        service.PeopleSearch
	initialSearch service.SearchRequest
	form          service.RelationshipForm

	message       string
	messageIsErr  bool
	hint          string
	status        string
	showBuildInfo bool
	quitByUser    bool
}

func newRelationsModel(
	ctx context.Context,
	services *service.Services,
	layout service.Layout,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) relationsModel {
	search := textinput.New()
	search.Placeholder = app.PlaceholderSearch
	search.Width = 40
	search.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	people := service.NewPeopleSearch(layout.SearchErrorPolicy())
	initial, _ := people.SetQuery("")

	return relationsModel{
		ctx:       ctx,
		services:  services,
		layout:    layout,
		buildInfo: buildInfo,
		logger:    log,
		traceIDs:  utils.NewUUIDGenerator(),
		copyText:  clipboard.WriteAll,
		search:    search,
		spinner:   s,
		people:    people,
		form:      service.NewRelationshipForm(),

		initialSearch: initial,
	}
}

// Init loads the unfiltered list.
func (m relationsModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.cmdSearch(m.initialSearch))
}

func (m relationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case searchDoneMsg:
		return m.onSearchDone(msg)
	case submitDoneMsg:
		return m.onSubmitDone(msg)
	case copiedMsg:
		if msg.err != nil {
			m.status = humanizeClipboardError(msg.err)
		} else {
			m.status = app.MsgCopied
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m relationsModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.esc):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopySummary()
	}

	switch m.focus {
	case focusSearch:
		return m.updateSearch(msg)
	case focusPersonA:
		m.cursorA = m.moveCursor(msg, m.cursorA)
		if key.Matches(msg, keys.enter) {
			if p, ok := m.optionAt(m.cursorA); ok {
				m.form.SelectA(p)
			}
		}
	case focusPersonB:
		m.cursorB = m.moveCursor(msg, m.cursorB)
		if key.Matches(msg, keys.enter) {
			if p, ok := m.optionAt(m.cursorB); ok {
				m.form.SelectB(p)
			}
		}
	case focusType:
		if key.Matches(msg, keys.left, keys.right, keys.enter) {
			m.form.ToggleType()
		}
	case focusSubmit:
		if key.Matches(msg, keys.enter) {
			return m.submit()
		}
	}

	return m, nil
}

// updateSearch feeds the key to the search box and issues a fetch when the
// term changed.
func (m relationsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var inputCmd tea.Cmd
	m.search, inputCmd = m.search.Update(msg)

	req, changed := m.people.SetQuery(m.search.Value())
	if !changed {
		return m, inputCmd
	}
	return m, tea.Batch(inputCmd, m.cmdSearch(req))
}

func (m relationsModel) onSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	message, applied := m.people.Apply(msg.result)
	if !applied {
		m.logger.Debug().
			Uint64("generation", msg.result.Request.Generation).
			Str("search", msg.result.Request.Query).
			Msg("stale search result dropped")
		return m, nil
	}

	if message != "" {
		m.setMessage(message, true, msg.result.Err)
	}

	m.cursorA = clampCursor(m.cursorA, len(m.options()))
	m.cursorB = clampCursor(m.cursorB, len(m.options()))
	return m, nil
}

func (m relationsModel) submit() (tea.Model, tea.Cmd) {
	if m.form.Submitting() {
		return m, nil
	}

	draft, err := m.form.Prepare()
	if err != nil {
		m.setMessage(service.UserMessage(err), true, nil)
		return m, nil
	}

	m.message = ""
	m.hint = ""
	return m, m.cmdSubmit(draft)
}

func (m relationsModel) onSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.setMessage(m.form.Complete(msg.err), msg.err != nil, msg.err)
	return m, nil
}

func (m *relationsModel) setMessage(message string, isErr bool, cause error) {
	m.message = message
	m.messageIsErr = isErr
	m.hint = ""
	if isServerUnavailable(cause) {
		m.hint = app.MsgServerUnavailable
	}
}

func (m *relationsModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusSearch {
		m.search.Focus()
		return
	}
	m.search.Blur()
}

func (m relationsModel) options() []models.Person {
	return m.layout.Options(m.people.People())
}

func (m relationsModel) optionAt(i int) (models.Person, bool) {
	opts := m.options()
	if i < 0 || i >= len(opts) {
		return models.Person{}, false
	}
	return opts[i], true
}

func (m relationsModel) moveCursor(msg tea.KeyMsg, cursor int) int {
	switch {
	case key.Matches(msg, keys.up):
		cursor--
	case key.Matches(msg, keys.down):
		cursor++
	}
	return clampCursor(cursor, len(m.options()))
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// traceContext returns m.ctx tagged with a fresh trace id so each request can
// be followed in the logs. A trace id already present in m.ctx is kept.
func (m relationsModel) traceContext() context.Context {
	return m.traceIDs.NewTraceContext(m.ctx)
}

func (m relationsModel) cmdSearch(req service.SearchRequest) tea.Cmd {
	ctx := m.traceContext()
	people := m.services.PeopleService

	return func() tea.Msg {
		return searchDoneMsg{result: people.Search(ctx, req)}
	}
}

func (m relationsModel) cmdSubmit(draft models.RelationshipDraft) tea.Cmd {
	ctx := m.traceContext()
	relationships := m.services.RelationshipService

	return func() tea.Msg {
		created, err := relationships.Create(ctx, draft)
		return submitDoneMsg{relationship: created, err: err}
	}
}

func (m relationsModel) cmdCopySummary() tea.Cmd {
	summary, ok := m.form.Summary()
	copyText := m.copyText

	return func() tea.Msg {
		if !ok {
			return copiedMsg{err: errNothingToCopy}
		}
		if err := copyText(summary); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m relationsModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(subtitleStyle.Render(app.AppSubtitle))
	b.WriteString("\n\n")

	b.WriteString(m.label(focusSearch, app.LabelSearch))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	if m.people.Loading() {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(app.MsgLoadingPeople)
	}
	b.WriteString("\n\n")

	personA, okA := m.form.PersonA()
	personB, okB := m.form.PersonB()
	b.WriteString(m.renderPicker(focusPersonA, app.LabelPersonA, m.cursorA, personA, okA))
	b.WriteString("\n")
	b.WriteString(m.renderPicker(focusPersonB, app.LabelPersonB, m.cursorB, personB, okB))
	b.WriteString("\n")

	b.WriteString(m.label(focusType, app.LabelType))
	b.WriteString("\n")
	for _, t := range models.RelationTypes() {
		mark := "( )"
		if t == m.form.Type() {
			mark = "(•)"
		}
		b.WriteString(fmt.Sprintf("  %s %s", mark, t.Label()))
	}
	b.WriteString("\n\n")

	button := app.LabelSubmit
	if m.form.Submitting() {
		button = m.spinner.View() + " " + app.MsgSavingRelationship
	}
	if m.focus == focusSubmit {
		b.WriteString(buttonStyle.BorderForeground(focusedStyle.GetForeground()).Render(button))
	} else {
		b.WriteString(buttonStyle.Render(button))
	}
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		if m.messageIsErr {
			b.WriteString(errorStyle.Render(m.message))
		} else {
			b.WriteString(successStyle.Render(m.message))
		}
		b.WriteString("\n")
	}
	if m.hint != "" {
		b.WriteString(helpStyle.Render(m.hint))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "tab: siguiente │ ↑/↓: mover │ enter: elegir │ ctrl+s: guardar │ ctrl+y: copiar │ f1: info │ " + m.buildInfo.Short()
	return appStyle.Render(renderPage(app.AppTitle, strings.TrimRight(b.String(), "\n"), hotKeys))
}

func (m relationsModel) label(area focusArea, text string) string {
	if m.focus == area {
		return focusedStyle.Render("> " + text)
	}
	return "  " + text
}

func (m relationsModel) renderPicker(area focusArea, title string, cursor int, selected models.Person, hasSelected bool) string {
	var b strings.Builder

	header := title + ": "
	if hasSelected {
		header += selectedStyle.Render(m.layout.PersonLabel(selected))
	} else {
		header += app.LabelSelect
	}
	b.WriteString(m.label(area, header))
	b.WriteString("\n")

	opts := m.options()
	if len(opts) == 0 && !m.people.Loading() {
		b.WriteString("    ")
		b.WriteString(helpStyle.Render(app.MsgNoPeople))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range opts {
		pointer := "    "
		if m.focus == area && i == cursor {
			pointer = "  > "
		}
		line := pointer + fitText(m.layout.PersonLabel(p), 48)
		if hasSelected && p.ID == selected.ID {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
