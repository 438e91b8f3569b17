package ports

import "go.trai.ch/dcell/internal/core/domain"

// CellParser turns a magic invocation into a build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=cell_parser.go -destination=mocks/mock_cell_parser.go -package=mocks
type CellParser interface {
	// Split separates a cell document into its magic flag line and its body.
	Split(text string) (line, body string, err error)
	// Parse builds the configuration for one invocation from the flag line and the cell body.
	Parse(line, body string) (domain.BuildConfig, error)
}
