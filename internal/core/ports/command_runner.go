package ports

import (
	"context"

	"go.trai.ch/dcell/internal/core/domain"
)

// CommandRunner runs external processes to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and returns its combined stdout and stderr.
	// A non-zero exit is an error; the captured output is returned alongside it.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
