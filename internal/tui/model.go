// Package tui provides the interactive collection browser.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/feedback"
	"github.com/cristianoliveira/jobdeck/internal/logging"
	"github.com/cristianoliveira/jobdeck/internal/query"
	"github.com/cristianoliveira/jobdeck/internal/search"
	"github.com/cristianoliveira/jobdeck/internal/settings"
	"github.com/cristianoliveira/jobdeck/internal/storage"
)

const (
	// title, column header, page footer and help line
	chromeLines           = 4
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeCommand
)

// Options configures a Model.
type Options struct {
	Store storage.Store
	// Settings are the saved preferences. Nil means defaults.
	Settings *settings.Settings
	// SettingsPath is where :w and quit save preferences. Empty disables saving.
	SettingsPath string
	// PageSize is the configured page size, used when a list has none saved.
	PageSize int
	// SearchMode selects the search provider (substring, token, regex).
	SearchMode string
	// Kind overrides the saved active collection when set.
	Kind domain.Kind
	Logger logging.Logger
}

// Model is the bubbletea model of the browser. It keeps one pipeline per
// collection, loaded on first visit.
type Model struct {
	ctx       context.Context
	store     storage.Store
	prefs     *settings.Settings
	prefsPath string
	pageSize  int
	searchBy  string
	logger    logging.Logger

	kind      domain.Kind
	pipelines map[domain.Kind]*query.Pipeline
	viewMode  string

	viewport viewport.Model
	width    int
	height   int
	cursor   int

	mode  inputMode
	input string

	status *feedback.StatusLine
}

// NewModel creates the model and loads the active collection.
func NewModel(ctx context.Context, opts Options) (*Model, error) {
	if opts.Store == nil {
		return nil, errors.New("tui: store is required")
	}
	prefs := opts.Settings
	if prefs == nil {
		prefs = settings.DefaultSettings()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = query.DefaultPageSize
	}
	if opts.Logger == nil {
		opts.Logger = logging.Noop()
	}

	kind := opts.Kind
	if !kind.IsValid() {
		kind = settings.NormalizeKind(prefs.ActiveKind)
	}
	viewMode := prefs.ViewMode
	if viewMode != settings.ViewModeCompact {
		viewMode = settings.ViewModeTable
	}

	m := &Model{
		ctx:       ctx,
		store:     opts.Store,
		prefs:     prefs,
		prefsPath: opts.SettingsPath,
		pageSize:  opts.PageSize,
		searchBy:  opts.SearchMode,
		logger:    opts.Logger,
		kind:      kind,
		pipelines: map[domain.Kind]*query.Pipeline{},
		viewMode:  viewMode,
		viewport:  viewport.New(defaultViewportWidth, defaultViewportHeight-chromeLines),
		width:     defaultViewportWidth,
		height:    defaultViewportHeight,
	}
	logger := opts.Logger
	m.status = feedback.NewStatusLine(func(msg feedback.Message) {
		logger.Info("tui message", "severity", msg.Level.String(), "text", msg.Text, "kind", m.kind.String())
	})
	if _, err := m.load(kind); err != nil {
		return nil, err
	}
	m.updateViewportContent()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case clearStatusMsg:
		m.status.ClearIf(msg.seq)
		return m, nil
	}
	return m, nil
}

// load returns the pipeline of kind, reading the collection from the store
// on first use.
func (m *Model) load(kind domain.Kind) (*query.Pipeline, error) {
	if p, ok := m.pipelines[kind]; ok {
		return p, nil
	}
	items, err := m.store.LoadItems(m.ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	schema := domain.MustSchema(kind)
	p := query.New(schema,
		query.WithProvider(m.provider(schema)),
		query.WithState(m.prefs.ListState(kind, m.pageSize)),
	)
	p.Load(items)
	m.pipelines[kind] = p
	m.logger.Debug("collection loaded", "kind", kind.String(), "items", len(items))
	return p, nil
}

func (m *Model) provider(schema domain.Schema) search.Provider {
	p, err := search.New(m.searchBy, search.ForSchema(schema))
	if err != nil {
		return search.NewSubstringProvider(search.ForSchema(schema))
	}
	return p
}

// pipeline returns the pipeline of the active collection.
func (m *Model) pipeline() *query.Pipeline {
	return m.pipelines[m.kind]
}

// Kind returns the active collection.
func (m *Model) Kind() domain.Kind {
	return m.kind
}

// CurrentView returns the current page of the active collection.
func (m *Model) CurrentView() query.View {
	return m.pipeline().View()
}

// State returns the query state of the active collection.
func (m *Model) State() query.State {
	return m.pipeline().State()
}

// selected returns the item under the cursor.
func (m *Model) selected() (domain.Item, bool) {
	items := m.pipeline().View().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return domain.Item{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.pipeline().View().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// switchKind makes kind the active collection.
func (m *Model) switchKind(kind domain.Kind) tea.Cmd {
	if _, err := m.load(kind); err != nil {
		return m.fail(err.Error())
	}
	m.kind = kind
	m.cursor = 0
	m.updateViewportContent()
	return nil
}

// saveSettings records every loaded list and writes the preferences file.
func (m *Model) saveSettings() error {
	if m.prefsPath == "" {
		return nil
	}
	for kind, p := range m.pipelines {
		m.prefs.SetListState(kind, p.State(), m.pageSize)
	}
	m.prefs.ActiveKind = m.kind.String()
	m.prefs.ViewMode = m.viewMode
	if err := settings.Save(m.prefsPath, m.prefs); err != nil {
		return err
	}
	m.logger.Info("tui settings saved", "path", m.prefsPath)
	return nil
}
