package domain

import (
	"maps"
	"slices"
	"strings"
)

// PrivateSymbolPrefix marks module attributes that are never exported into the session.
const PrivateSymbolPrefix = "__"

// ExportableSymbols returns the subset of attrs whose names do not start with a double underscore.
func ExportableSymbols(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for name, value := range attrs {
		if strings.HasPrefix(name, PrivateSymbolPrefix) {
			continue
		}
		out[name] = value
	}
	return out
}

// SymbolNames returns the names of symbols in sorted order.
func SymbolNames(symbols map[string]any) []string {
	return slices.Sorted(maps.Keys(symbols))
}
