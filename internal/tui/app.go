// Package tui provides the interactive Bubble Tea dashboard for mccost.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Kaushik523/Multi-cloud-cost/internal/api"
	"github.com/Kaushik523/Multi-cloud-cost/internal/config"
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/components"
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabOverview = iota
	tabComparison
	tabRecommendations
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// App is the root Bubble Tea model. Each tab owns an independent resource
// so one failing endpoint never takes down the others.
type App struct {
	client     *api.Client
	baseURL    string
	windowDays int

	overview        resource[*api.OverviewSummary]
	comparison      resource[[]api.ProviderComparison]
	recommendations resource[[]api.Recommendation]

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	lastFetch time.Time

	spinner spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates the TUI app model for the given resolved base URL and
// time window. An empty baseURL is allowed; every tab then shows the
// unconfigured error.
func NewApp(baseURL string, windowDays int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	app := App{
		client:     api.New(baseURL, 0, windowDays),
		baseURL:    baseURL,
		windowDays: windowDays,
		spinner:    sp,
		needSetup:  baseURL == "" && !config.Exists(),
	}
	if app.needSetup {
		app.setupForm = newSetupForm(&app.setupVals)
	}
	return app
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return tea.Batch(append(a.startAll(), a.spinner.Tick)...)
}

// startAll kicks off a fetch for every tab. Unconfigured pages move
// straight to their error state without a network call.
func (a *App) startAll() []tea.Cmd {
	cmds := []tea.Cmd{
		a.startOverview(),
		a.startComparison(),
		a.startRecommendations(),
	}

	var nonNil []tea.Cmd
	for _, c := range cmds {
		if c != nil {
			nonNil = append(nonNil, c)
		}
	}
	return nonNil
}

func (a *App) startOverview() tea.Cmd {
	if a.client == nil {
		a.overview.fail(api.UnconfiguredMessage)
		return nil
	}
	client := a.client
	return a.overview.start(func(ctx context.Context) (*api.OverviewSummary, error) {
		return client.FetchOverview(ctx)
	})
}

func (a *App) startComparison() tea.Cmd {
	if a.client == nil {
		a.comparison.fail(api.UnconfiguredMessage)
		return nil
	}
	client := a.client
	return a.comparison.start(func(ctx context.Context) ([]api.ProviderComparison, error) {
		return client.FetchComparison(ctx)
	})
}

func (a *App) startRecommendations() tea.Cmd {
	if a.client == nil {
		a.recommendations.fail(api.UnconfiguredMessage)
		return nil
	}
	client := a.client
	return a.recommendations.start(func(ctx context.Context) ([]api.Recommendation, error) {
		return client.FetchRecommendations(ctx)
	})
}

// retryActive refetches only the visible tab; the other pages keep
// whatever state they are in.
func (a *App) retryActive() tea.Cmd {
	switch a.activeTab {
	case tabOverview:
		return a.startOverview()
	case tabComparison:
		return a.startComparison()
	case tabRecommendations:
		return a.startRecommendations()
	}
	return nil
}

// abortAll cancels every outstanding request, e.g. on teardown.
func (a *App) abortAll() {
	a.overview.abort()
	a.comparison.abort()
	a.recommendations.abort()
}

func (a App) anyLoading() bool {
	return a.overview.loading() || a.comparison.loading() || a.recommendations.loading()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			a.abortAll()
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q", "esc":
			a.abortAll()
			return a, tea.Quit
		case "r":
			cmd := a.retryActive()
			if cmd == nil {
				return a, nil
			}
			return a, tea.Batch(cmd, a.spinner.Tick)
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case resultMsg[*api.OverviewSummary]:
		if a.overview.apply(msg) {
			a.lastFetch = time.Now()
		}
		return a, nil

	case resultMsg[[]api.ProviderComparison]:
		if a.comparison.apply(msg) {
			a.lastFetch = time.Now()
		}
		return a, nil

	case resultMsg[[]api.Recommendation]:
		if a.recommendations.apply(msg) {
			a.lastFetch = time.Now()
		}
		return a, nil

	case spinner.TickMsg:
		if a.anyLoading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, tea.Batch(append(a.startAll(), a.spinner.Tick)...)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, tea.Batch(append(a.startAll(), a.spinner.Tick)...)
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  mccost needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"o c m", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"r", "Retry / refresh current tab"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"
	updated := ""
	if !a.lastFetch.IsZero() {
		updated = a.lastFetch.Format("15:04:05")
	}
	statusBar := components.RenderStatusBar(w, a.baseURL, a.anyLoading(), updated)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabComparison:
		content = a.renderComparisonTab(cw)
	case tabRecommendations:
		content = a.renderRecommendationsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// renderLoading is the shared loading view for a tab.
func (a App) renderLoading(what string, cw int) string {
	t := theme.Active
	body := a.spinner.View() + " " +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render("Fetching "+what+"...")
	return "\n" + lipgloss.PlaceHorizontal(cw, lipgloss.Center, body)
}

// renderError is the shared inline error view with the retry affordance.
func (a App) renderError(msg string, cw int) string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := errStyle.Render(msg) + "\n" + hintStyle.Render("Press r to retry")
	return components.ContentCard("", body, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
