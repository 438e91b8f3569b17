package python

// Bound reports whether __main__ has a binding for name.
func (s *Session) Bound(name string) (bool, error) {
	var bound bool
	err := s.rt.do(func(api *capi) error {
		dict := api.ModuleGetDict(api.AddModule("__main__"))
		bound = api.DictGetItemString(dict, name) != 0
		return nil
	})
	return bound, err
}
