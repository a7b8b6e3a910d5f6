package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"Catalog/internal/cli/api"
	"Catalog/internal/cli/bootstrap"
	"Catalog/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the access token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]
	return withServices(cfg, func(s *bootstrap.Services) error {
		_, err := s.Auth.Login(ctx, email, password)
		if err != nil {
			if code, ok := api.StatusCode(err); ok && code == http.StatusUnauthorized {
				return errors.New("invalid email or password")
			}
			return err
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	})
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored access token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		if err := s.Auth.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Logged out")
		return nil
	})
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
