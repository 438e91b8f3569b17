package domain

import (
	"reflect"
)

// Manifest keys written by the generator.
const (
	ManifestKeyName              = "name"
	ManifestKeyDependencies      = "dependencies"
	ManifestKeySubConfigurations = "subConfigurations"
	ManifestKeySourceFiles       = "sourceFiles"
	ManifestKeyTargetType        = "targetType"
	ManifestKeyLibs              = "libs"
	ManifestKeyVersions          = "versions"
	ManifestKeyImportPaths       = "importPaths"
	ManifestKeyDFlags            = "dflags"
	ManifestKeyLFlags            = "lflags"
)

const (
	// BindingPackage is the binding-support library every cell depends on.
	BindingPackage = "pyd"
	// HelperPackage is the registration helper library every cell depends on.
	HelperPackage = "ppyd"
	// TargetTypeDynamicLibrary is the manifest target type producing a shared library.
	TargetTypeDynamicLibrary = "dynamicLibrary"
	// ExtensionVersion is the conditional-compilation identifier marking a Python extension build.
	ExtensionVersion = "PydPythonExtension"
)

// Manifest is the build tool's project descriptor as a generic JSON tree.
// Lists are []any and nested objects are map[string]any so that decoded overrides merge cleanly.
type Manifest map[string]any

// SourceFiles returns the manifest's source entries as strings, skipping anything that is not a string.
func (m Manifest) SourceFiles() []string {
	list, _ := m[ManifestKeySourceFiles].([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// AppendSourceFiles appends paths to the manifest's source entries in order.
func (m Manifest) AppendSourceFiles(paths ...string) {
	list, _ := m[ManifestKeySourceFiles].([]any)
	for _, p := range paths {
		list = append(list, p)
	}
	m[ManifestKeySourceFiles] = list
}

// MergeManifest deep-merges override on top of base and returns a new tree; neither input is modified.
//
// Objects merge key by key, recursively. Scalars are replaced by the override.
// Lists are concatenated base first, dropping override elements already present.
// When the base and override disagree on kind, the override value replaces the base value.
func MergeManifest(base, override map[string]any) Manifest {
	out := cloneTree(base)
	if out == nil {
		out = make(map[string]any, len(override))
	}
	for key, ov := range override {
		bv, ok := out[key]
		if !ok {
			out[key] = cloneValue(ov)
			continue
		}
		out[key] = mergeValue(bv, ov)
	}
	return out
}

func mergeValue(base, override any) any {
	switch bv := base.(type) {
	case map[string]any:
		if om, ok := asTree(override); ok {
			return map[string]any(MergeManifest(bv, om))
		}
	case Manifest:
		if om, ok := asTree(override); ok {
			return map[string]any(MergeManifest(bv, om))
		}
	case []any:
		if ol, ok := override.([]any); ok {
			return concatUnique(bv, ol)
		}
	}
	return cloneValue(override)
}

func asTree(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case Manifest:
		return val, true
	default:
		return nil, false
	}
}

func concatUnique(base, override []any) []any {
	out := make([]any, 0, len(base)+len(override))
	for _, item := range base {
		out = append(out, cloneValue(item))
	}
	for _, item := range override {
		if containsValue(out, item) {
			continue
		}
		out = append(out, cloneValue(item))
	}
	return out
}

func containsValue(list []any, v any) bool {
	for _, item := range list {
		if reflect.DeepEqual(item, v) {
			return true
		}
	}
	return false
}
