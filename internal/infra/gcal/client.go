package gcal

import (
	"context"
	"fmt"
	"os"
	"strings"

	"restaurant-booking/internal/pkg/config"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewService builds a Calendar API client authenticated as a service
// account. Credentials come either from a JSON key file or from the
// client-email / private-key pair in the environment. Env-supplied keys
// usually arrive with literal "\n" sequences, so those are unescaped.
func NewService(ctx context.Context, cfg config.CalendarConfig) (*calendar.Service, error) {
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read calendar credentials: %w", err)
		}
		jwtCfg, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
		if err != nil {
			return nil, fmt.Errorf("parse calendar credentials: %w", err)
		}
		return calendar.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}
	return calendar.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
}
