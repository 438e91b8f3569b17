package python

import (
	"errors"
	"reflect"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// fileInput is Py_file_input.
	fileInput = 257
)

// capi holds the subset of the CPython C API used to host extension modules.
// Every field is bound to the exported symbol named by its tag.
type capi struct {
	IsInitialized     func() int32                                            `sym:"Py_IsInitialized"`
	InitializeEx      func(initsigs int32)                                    `sym:"Py_InitializeEx"`
	SaveThread        func() uintptr                                          `sym:"PyEval_SaveThread"`
	GILEnsure         func() int32                                            `sym:"PyGILState_Ensure"`
	GILRelease        func(state int32)                                       `sym:"PyGILState_Release"`
	IncRef            func(obj uintptr)                                       `sym:"Py_IncRef"`
	DecRef            func(obj uintptr)                                       `sym:"Py_DecRef"`
	RunString         func(code string, start int32, g, l, f uintptr) uintptr `sym:"PyRun_StringFlags"`
	ImportModule      func(name string) uintptr                               `sym:"PyImport_ImportModule"`
	AddModule         func(name string) uintptr                               `sym:"PyImport_AddModule"`
	ModuleGetDict     func(mod uintptr) uintptr                               `sym:"PyModule_GetDict"`
	DictNew           func() uintptr                                          `sym:"PyDict_New"`
	DictKeys          func(dict uintptr) uintptr                              `sym:"PyDict_Keys"`
	DictGetItem       func(dict, key uintptr) uintptr                         `sym:"PyDict_GetItem"`
	DictGetItemString func(dict uintptr, key string) uintptr                  `sym:"PyDict_GetItemString"`
	DictSetItemString func(dict uintptr, key string, val uintptr) int32       `sym:"PyDict_SetItemString"`
	ListSize          func(list uintptr) int                                  `sym:"PyList_Size"`
	ListGetItem       func(list uintptr, i int) uintptr                       `sym:"PyList_GetItem"`
	UnicodeFromString func(s string) uintptr                                  `sym:"PyUnicode_FromString"`
	UnicodeAsUTF8     func(obj uintptr) string                                `sym:"PyUnicode_AsUTF8"`
	LongFromLongLong  func(v int64) uintptr                                   `sym:"PyLong_FromLongLong"`
	FloatFromDouble   func(v float64) uintptr                                 `sym:"PyFloat_FromDouble"`
	BoolFromLong      func(v int64) uintptr                                   `sym:"PyBool_FromLong"`
	ObjectRepr        func(obj uintptr) uintptr                               `sym:"PyObject_Repr"`
	ObjectStr         func(obj uintptr) uintptr                               `sym:"PyObject_Str"`
	ErrOccurred       func() uintptr                                          `sym:"PyErr_Occurred"`
	ErrFetch          func(typ, val, tb *uintptr)                             `sym:"PyErr_Fetch"`
	ErrClear          func()                                                  `sym:"PyErr_Clear"`
}

// Runtime is an embedded CPython interpreter loaded from the shared library
// reported by the interpreter probe. It is initialized on first use.
type Runtime struct {
	library string

	once    sync.Once
	initErr error
	api     capi
	none    uintptr
}

// NewRuntime creates a runtime backed by the shared library at path.
func NewRuntime(library string) *Runtime {
	return &Runtime{library: library}
}

// Library returns the path of the interpreter's shared library.
func (r *Runtime) Library() string {
	return r.library
}

func (r *Runtime) init() error {
	r.once.Do(func() {
		r.initErr = r.start()
	})
	return r.initErr
}

func (r *Runtime) start() error {
	if r.library == "" {
		return zerr.Wrap(domain.ErrLoadFailed, "interpreter has no shared library to embed")
	}

	handle, err := openLibrary(r.library)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrLoadFailed, err), "library", r.library)
	}

	if err := bind(&r.api, handle); err != nil {
		return zerr.With(errors.Join(domain.ErrLoadFailed, err), "library", r.library)
	}

	none, err := lookupSymbol(handle, "_Py_NoneStruct")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrLoadFailed, err), "library", r.library)
	}
	r.none = none

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if r.api.IsInitialized() == 0 {
		r.api.InitializeEx(0)
		// The main thread state is parked so any thread can take the GIL later.
		r.api.SaveThread()
	}
	return nil
}

func bind(api *capi, handle uintptr) error {
	v := reflect.ValueOf(api).Elem()
	t := v.Type()
	for i := range t.NumField() {
		sym := t.Field(i).Tag.Get("sym")
		addr, err := lookupSymbol(handle, sym)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "missing python symbol"), "symbol", sym)
		}
		purego.RegisterFunc(v.Field(i).Addr().Interface(), addr)
	}
	return nil
}

// do runs fn on a locked OS thread while holding the GIL.
func (r *Runtime) do(fn func(api *capi) error) error {
	if err := r.init(); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	state := r.api.GILEnsure()
	defer r.api.GILRelease(state)

	return fn(&r.api)
}

// exec runs code with globals as its namespace.
func (r *Runtime) exec(api *capi, code string, globals uintptr) error {
	res := api.RunString(code, fileInput, globals, globals, 0)
	if res == 0 {
		return r.fetchError(api)
	}
	api.DecRef(res)
	return nil
}

// fetchError converts and clears the pending Python exception.
func (r *Runtime) fetchError(api *capi) error {
	if api.ErrOccurred() == 0 {
		return zerr.New("python call failed without an exception")
	}

	var typ, val, tb uintptr
	api.ErrFetch(&typ, &val, &tb)
	defer func() {
		for _, o := range []uintptr{typ, val, tb} {
			if o != 0 {
				api.DecRef(o)
			}
		}
	}()

	msg := "unknown python error"
	switch {
	case val != 0:
		msg = r.str(api, val, api.ObjectStr)
	case typ != 0:
		msg = r.str(api, typ, api.ObjectRepr)
	}
	err := zerr.New(msg)
	if typ != 0 {
		err = zerr.With(err, "exception", r.str(api, typ, api.ObjectRepr))
	}
	return err
}

func (r *Runtime) str(api *capi, obj uintptr, conv func(uintptr) uintptr) string {
	s := conv(obj)
	if s == 0 {
		api.ErrClear()
		return ""
	}
	defer api.DecRef(s)
	return api.UnicodeAsUTF8(s)
}

// toPython converts a Go value into a new Python reference.
func (r *Runtime) toPython(api *capi, v any) (uintptr, error) {
	var obj uintptr
	switch x := v.(type) {
	case *Object:
		api.IncRef(x.ptr)
		return x.ptr, nil
	case nil:
		api.IncRef(r.none)
		return r.none, nil
	case string:
		obj = api.UnicodeFromString(x)
	case bool:
		var b int64
		if x {
			b = 1
		}
		obj = api.BoolFromLong(b)
	case int:
		obj = api.LongFromLongLong(int64(x))
	case int32:
		obj = api.LongFromLongLong(int64(x))
	case int64:
		obj = api.LongFromLongLong(x)
	case float32:
		obj = api.FloatFromDouble(float64(x))
	case float64:
		obj = api.FloatFromDouble(x)
	default:
		return 0, zerr.With(zerr.New("unsupported value type"), "type", reflect.TypeOf(v).String())
	}
	if obj == 0 {
		return 0, r.fetchError(api)
	}
	return obj, nil
}
