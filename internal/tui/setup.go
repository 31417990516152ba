package tui

import (
	"errors"
	"net/url"
	"strings"

	"github.com/Kaushik523/Multi-cloud-cost/internal/api"
	"github.com/Kaushik523/Multi-cloud-cost/internal/config"
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	baseURL string
	theme   string
}

// newSetupForm builds the first-run wizard shown when neither a config
// file nor an environment override exists.
func newSetupForm(vals *setupValues) *huh.Form {
	if vals.theme == "" {
		vals.theme = theme.Active.Name
	}

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API base URL").
				Description("Origin of the multicloud cost API. Leave blank to configure later.").
				Placeholder("http://localhost:8000").
				Validate(validateBaseURL).
				Value(&vals.baseURL),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

func validateBaseURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // unconfigured is a valid, degraded state
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("enter a full URL like http://localhost:8000")
	}
	return nil
}

// saveSetupConfig persists the wizard answers and rebuilds the client.
// Save failures are tolerated; the answers still apply for this session.
func (a *App) saveSetupConfig() {
	cfg, _ := config.Load()

	cfg.API.BaseURL = strings.TrimSpace(a.setupVals.baseURL)
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(a.setupVals.theme)
	}
	_ = config.Save(cfg)

	// Environment overrides still win over the freshly saved file.
	a.baseURL = config.ResolveBaseURL(cfg)
	a.windowDays = cfg.General.TimeWindowDays
	a.client = api.New(a.baseURL, 0, a.windowDays)
}
