package algorithm

import (
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/types"
)

// pluginRootMarker identifies the plugin tree inside the module; the
// path segment after it becomes the scheme's model attribute.
const pluginRootMarker = "pkg/plugins/"

type entry struct {
	algo  Algorithm
	model string
	class string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]entry{}
)

// Register binds an algorithm under its scheme code. Registering the
// same code twice replaces the previous binding (last write wins); a
// warning is logged so misconfigured plugin sets are visible.
func Register(algo Algorithm) {
	meta := algo.Meta()

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[meta.Code]; exists {
		log.Logger.Warn().
			Str("code", meta.Code).
			Msg("duplicate scheme registration, replacing previous binding")
	}

	_, file, _, _ := runtime.Caller(1)
	registry[meta.Code] = entry{
		algo:  algo,
		model: deriveModel(file),
		class: reflect.TypeOf(algo).Elem().Name(),
	}

	log.Logger.Info().
		Str("code", meta.Code).
		Str("name", meta.Name).
		Msg("algorithm registered")
}

// Get returns the algorithm registered under code, or nil.
func Get(code string) Algorithm {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if e, ok := registry[code]; ok {
		return e.algo
	}
	return nil
}

// List returns descriptors for every registered algorithm, sorted by
// code. The model attribute falls back to the plugin's location
// beneath the plugin root when the descriptor does not supply one.
func List() []types.SchemeInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	schemes := make([]types.SchemeInfo, 0, len(registry))
	for _, e := range registry {
		meta := e.algo.Meta()
		if meta.Model == "" {
			meta.Model = e.model
		}
		if meta.ClassName == "" {
			meta.ClassName = e.class
		}
		if meta.ResourceType == "" {
			meta.ResourceType = types.ResourceCPU
		}
		schemes = append(schemes, meta)
	}
	sort.Slice(schemes, func(i, j int) bool { return schemes[i].Code < schemes[j].Code })
	return schemes
}

// reset clears the registry. Test helper.
func reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = map[string]entry{}
}

func deriveModel(file string) string {
	file = filepath.ToSlash(file)
	idx := strings.Index(file, pluginRootMarker)
	if idx < 0 {
		return ""
	}
	rel := file[idx+len(pluginRootMarker):]
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." || dir == "" {
		return ""
	}
	return strings.ReplaceAll(dir, "/", "-")
}
