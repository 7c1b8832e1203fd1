package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flagforge/symbolkit/internal/adapters/driving/tui/styles"
	"github.com/flagforge/symbolkit/internal/core/domain"
)

// libraryLoaded carries the result of the initial library read.
type libraryLoaded struct {
	entries []domain.SymbolEntry
	err     error
}

// symbolItem adapts a library entry to the bubbles list component.
type symbolItem struct {
	entry domain.SymbolEntry
}

func (i symbolItem) Title() string { return i.entry.ID }

func (i symbolItem) Description() string {
	return fmt.Sprintf("%s · %s · viewBox %s", i.entry.Name, i.entry.Category, i.entry.ViewBox)
}

func (i symbolItem) FilterValue() string { return i.entry.ID + " " + i.entry.Name }

// App is the library browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	list        list.Model
	showDetails bool
	err         error

	width  int
	height int
	ready  bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates a new browser application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "symbolkit · " + ports.LibraryPath
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
		list:   l,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("symbolkit"),
		a.loadLibrary(),
	)
}

// loadLibrary returns a command that reads the library file.
func (a *App) loadLibrary() tea.Cmd {
	return func() tea.Msg {
		entries, err := a.ports.Library.List(a.ctx, a.ports.LibraryPath)
		return libraryLoaded{entries: entries, err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height-2)
		a.ready = true

	case libraryLoaded:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		items := make([]list.Item, len(msg.entries))
		for i := range msg.entries {
			items[i] = symbolItem{entry: msg.entries[i]}
		}
		return a, a.list.SetItems(items)

	case tea.KeyMsg:
		// Let the list's filter input swallow keys while active.
		if a.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "enter":
			a.showDetails = !a.showDetails
			return a, nil
		case "esc":
			if a.showDetails {
				a.showDetails = false
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.err != nil {
		return a.styles.Error.Render(fmt.Sprintf("Error: %v", a.err)) +
			a.styles.Help.Render("\nq to quit")
	}
	if !a.ready {
		return a.styles.Muted.Render("Loading...")
	}
	if a.showDetails {
		return a.detailView()
	}
	return a.list.View()
}

// detailView renders the selected entry's details.
func (a *App) detailView() string {
	item, ok := a.list.SelectedItem().(symbolItem)
	if !ok {
		return a.list.View()
	}

	entry := item.entry
	body := fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n%s\n\n%s",
		a.styles.Title.Render(entry.ID),
		a.styles.Normal.Render("Name:     "+entry.Name),
		a.styles.Normal.Render("Category: "+entry.Category),
		a.styles.Normal.Render("ViewBox:  "+entry.ViewBox),
		a.styles.Muted.Render(fmt.Sprintf("Markup:   %d bytes", len(entry.SVG))),
		truncateMarkup(entry.SVG, a.height-12),
	)

	return a.styles.Detail.Width(a.width-2).Render(body) +
		a.styles.Help.Render("enter/esc back · q quit")
}

// truncateMarkup trims markup to the available pane height.
func truncateMarkup(svg string, maxLines int) string {
	if maxLines < 1 {
		maxLines = 1
	}
	lines := 0
	for i := 0; i < len(svg); i++ {
		if svg[i] == '\n' {
			lines++
			if lines >= maxLines {
				return svg[:i] + "\n..."
			}
		}
	}
	return svg
}

// Err returns the last error, for tests.
func (a *App) Err() error { return a.err }
