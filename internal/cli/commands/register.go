package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"Catalog/internal/cli/api"
	"Catalog/internal/cli/bootstrap"
	"Catalog/internal/cli/model"
	"Catalog/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account (then run login)" }
func (registerCmd) Usage() string       { return "register <email> <password> [name]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	req := model.RegisterRequest{Email: args[0], Password: args[1]}
	if len(args) == 3 {
		req.Name = args[2]
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		u, err := s.Auth.Register(ctx, req)
		if err != nil {
			if code, ok := api.StatusCode(err); ok && code == http.StatusConflict {
				return errors.New("email already in use")
			}
			return err
		}
		fmt.Fprintf(Out, "Registered: id=%d email=%s\n", u.ID, u.Email)
		return nil
	})
}

func init() { RegisterCmd(registerCmd{}) }
