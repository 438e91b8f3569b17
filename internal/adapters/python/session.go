package python

import (
	"errors"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Session = (*Session)(nil)

// Session is the __main__ namespace of the embedded interpreter.
type Session struct {
	rt *Runtime
}

// NewSession creates a new Session.
func NewSession(rt *Runtime) *Session {
	return &Session{rt: rt}
}

// Push binds every symbol into __main__, in name order.
// Every value is converted before the first binding, so a value that cannot be
// converted leaves the namespace untouched.
func (s *Session) Push(symbols map[string]any) error {
	if len(symbols) == 0 {
		return nil
	}

	err := s.rt.do(func(api *capi) error {
		mainModule := api.AddModule("__main__")
		if mainModule == 0 {
			return s.rt.fetchError(api)
		}
		dict := api.ModuleGetDict(mainModule)

		names := domain.SymbolNames(symbols)
		objs := make([]uintptr, 0, len(names))
		defer func() {
			for _, obj := range objs {
				api.DecRef(obj)
			}
		}()

		for _, name := range names {
			obj, err := s.rt.toPython(api, symbols[name])
			if err != nil {
				return zerr.With(err, "symbol", name)
			}
			objs = append(objs, obj)
		}

		for i, name := range names {
			if api.DictSetItemString(dict, name, objs[i]) != 0 {
				return zerr.With(s.rt.fetchError(api), "symbol", name)
			}
		}
		return nil
	})
	if err != nil {
		return errors.Join(domain.ErrSessionMergeFailed, err)
	}
	return nil
}
