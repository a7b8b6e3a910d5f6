package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"Catalog/internal/cli/async"
	"Catalog/internal/cli/bootstrap"
	"Catalog/internal/config"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <email> <password>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// Logger is passed to the HTTP client stack. main replaces it.
var Logger = zap.NewNop().Sugar()

// newServices builds the client stack for a command; tests may override it.
var newServices = bootstrap.NewServices

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"Catalog CLI",
		"",
		"Usage:",
		"  catcli [--api-url URL] [--token-store file|sqlite|memory] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// withServices opens the client stack, runs fn and releases the token store.
func withServices(cfg *config.Config, fn func(s *bootstrap.Services) error) error {
	s, err := newServices(cfg, Logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()
	return fn(s)
}

// await activates a deferred call and waits for its single result.
func await[T any](ctx context.Context, call *async.Call[T]) (T, error) {
	res := <-call.Go(ctx)
	return res.Value, res.Err
}
