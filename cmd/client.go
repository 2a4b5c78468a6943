package cmd

import (
	"errors"
	"fmt"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/config"
	"github.com/Toup95/AgriDetec-test/internal/i18n"
)

// newAPIClient builds a client from the active profile, for the
// one-shot subcommands that skip the interactive application.
func newAPIClient() (*api.Client, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.IsValid() {
		return nil, nil, fmt.Errorf("profile %q has no server URL configured", cfg.ActiveProfile)
	}
	client := api.NewClient(cfg.GetBaseURL(),
		api.WithAnalyzeTimeout(cfg.GetAnalyzeTimeout()),
		api.WithRequestTimeout(cfg.GetRequestTimeout()),
	)
	return client, cfg, nil
}

// userFacing maps an error onto the message shown on stderr, with the
// same taxonomy the interactive app uses.
func userFacing(err error, lang string) string {
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var tErr *api.TimeoutError
	if errors.As(err, &tErr) {
		return i18n.T(lang, "error.timeout")
	}
	var hErr *api.HTTPError
	if errors.As(err, &hErr) {
		return hErr.UserMessage()
	}
	return i18n.T(lang, "error.network")
}
