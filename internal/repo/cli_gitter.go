package repo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const gitTimeout = 5 * time.Second

// CLIGitter is the concrete implementation of Gitter using the git CLI.
type CLIGitter struct{}

// NewCLIGitter creates a new CLIGitter instance.
func NewCLIGitter() *CLIGitter {
	return &CLIGitter{}
}

// UserEmail runs `git config user.email` with a short timeout.
func (g *CLIGitter) UserEmail(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "config", "user.email")
	out, err := cmd.Output()
	if err != nil {
		return "", &NoUserEmailError{Wrapped: err}
	}

	email := strings.TrimSpace(string(out))
	if email == "" {
		return "", &NoUserEmailError{}
	}
	return email, nil
}
