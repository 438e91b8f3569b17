package python

import (
	"context"
	"errors"
	"runtime"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Loader = (*Loader)(nil)
	_ ports.Module = (*Module)(nil)
)

// loadScript imports the extension module at _dcell_path as _dcell_name.
const loadScript = `import importlib.machinery, importlib.util, sys
_dcell_loader = importlib.machinery.ExtensionFileLoader(_dcell_name, _dcell_path)
_dcell_spec = importlib.util.spec_from_file_location(_dcell_name, _dcell_path, loader=_dcell_loader)
_dcell_module = importlib.util.module_from_spec(_dcell_spec)
_dcell_loader.exec_module(_dcell_module)
sys.modules[_dcell_name] = _dcell_module
`

// Object is a strong reference to a Python object owned by the embedded interpreter.
type Object struct {
	rt  *Runtime
	ptr uintptr
}

func newObject(rt *Runtime, ptr uintptr) *Object {
	o := &Object{rt: rt, ptr: ptr}
	runtime.AddCleanup(o, func(ptr uintptr) {
		_ = rt.do(func(api *capi) error {
			api.DecRef(ptr)
			return nil
		})
	}, ptr)
	return o
}

// Repr returns repr(o).
func (o *Object) Repr() (string, error) {
	var s string
	err := o.rt.do(func(api *capi) error {
		r := api.ObjectRepr(o.ptr)
		if r == 0 {
			return o.rt.fetchError(api)
		}
		defer api.DecRef(r)
		s = api.UnicodeAsUTF8(r)
		return nil
	})
	return s, err
}

// Loader implements ports.Loader on top of the embedded runtime.
type Loader struct {
	rt *Runtime
}

// NewLoader creates a new Loader.
func NewLoader(rt *Runtime) *Loader {
	return &Loader{rt: rt}
}

// Load imports the extension module at path.
func (l *Loader) Load(ctx context.Context, path, name string) (ports.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var mod *Module
	err := l.rt.do(func(api *capi) error {
		globals := api.DictNew()
		if globals == 0 {
			return l.rt.fetchError(api)
		}
		defer api.DecRef(globals)

		builtins := api.ImportModule("builtins")
		if builtins == 0 {
			return l.rt.fetchError(api)
		}
		defer api.DecRef(builtins)

		for key, val := range map[string]any{"__builtins__": &Object{ptr: builtins}, "_dcell_path": path, "_dcell_name": name} {
			obj, err := l.rt.toPython(api, val)
			if err != nil {
				return err
			}
			rc := api.DictSetItemString(globals, key, obj)
			api.DecRef(obj)
			if rc != 0 {
				return l.rt.fetchError(api)
			}
		}

		if err := l.rt.exec(api, loadScript, globals); err != nil {
			return err
		}

		ptr := api.DictGetItemString(globals, "_dcell_module")
		if ptr == 0 {
			return zerr.New("module was not produced by the loader")
		}
		api.IncRef(ptr)
		mod = &Module{name: name, obj: newObject(l.rt, ptr)}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.With(errors.Join(domain.ErrLoadFailed, err), "path", path), "module", name)
	}
	return mod, nil
}

// Module is an extension module imported into the embedded interpreter.
type Module struct {
	name string
	obj  *Object
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Attributes returns every entry of the module's __dict__ as *Object values.
func (m *Module) Attributes() (map[string]any, error) {
	rt := m.obj.rt
	attrs := make(map[string]any)
	err := rt.do(func(api *capi) error {
		dict := api.ModuleGetDict(m.obj.ptr)
		if dict == 0 {
			return rt.fetchError(api)
		}
		keys := api.DictKeys(dict)
		if keys == 0 {
			return rt.fetchError(api)
		}
		defer api.DecRef(keys)

		for i := range api.ListSize(keys) {
			key := api.ListGetItem(keys, i)
			val := api.DictGetItem(dict, key)
			if val == 0 {
				continue
			}
			api.IncRef(val)
			attrs[api.UnicodeAsUTF8(key)] = newObject(rt, val)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrLoadFailed, err), "module", m.name)
	}
	return attrs, nil
}
