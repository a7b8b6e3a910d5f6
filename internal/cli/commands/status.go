package commands

import (
	"context"
	"errors"
	"fmt"

	"Catalog/internal/cli/bootstrap"
	"Catalog/internal/cli/repo"
	"Catalog/internal/cli/service"
	"Catalog/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show token state and check access to the catalog" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		fmt.Fprintf(Out, "API:    %s\n", cfg.APIURL)
		if _, err := s.Auth.Token(); err != nil {
			if !errors.Is(err, repo.ErrNoToken) {
				return err
			}
			fmt.Fprintln(Out, "Token:  not set (run login)")
		} else {
			fmt.Fprintln(Out, "Token:  stored")
		}
		list, err := await(ctx, service.ListSimpleCall(s.Catalog))
		if err != nil {
			fmt.Fprintf(Out, "Access: denied (%v)\n", err)
			return nil
		}
		fmt.Fprintf(Out, "Access: ok, %d products visible\n", len(list))
		return nil
	})
}

func init() { RegisterCmd(statusCmd{}) }
