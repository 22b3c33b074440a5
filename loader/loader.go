// Package loader imports 3D model files into GPU-ready mesh data: a
// deduplicated, interleaved vertex attribute buffer and a triangle index
// buffer. It abstracts the file format behind a generic backend (currently
// Wavefront OBJ) and manages a cache of previously loaded meshes.
package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/DonReek/obj-import/model"
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	meshCache map[string]*model.MeshData

	backend loaderBackend

	// preloadPool manages a bounded set of reusable goroutines for LoadAll.
	// Each task imports one file end to end; the per-file parse/index pipeline
	// stays strictly sequential.
	preloadPool    worker.DynamicWorkerPool
	preloadWorkers int
}

// Loader defines the public-facing interface for loading and caching 3D
// meshes. Import is fatal-on-error: a load either returns a complete,
// internally consistent mesh or an error a caller can match with errors.Is
// against the Err* sentinels in this package.
type Loader interface {
	// Load imports a model file and caches the result.
	// If the mesh is already cached (by file path), the cached version is
	// returned. The backend is selected based on the file extension
	// (.obj → OBJ backend).
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - *model.MeshData: the loaded and cached mesh
	//   - error: error if loading fails
	Load(path string) (*model.MeshData, error)

	// LoadReader imports a mesh from a reader stream and caches it by the
	// given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded mesh
	//   - r: the reader providing model data
	//
	// Returns:
	//   - *model.MeshData: the loaded mesh
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) (*model.MeshData, error)

	// LoadAll imports a batch of model files across the preload worker pool
	// and caches each result. Files are independent, so they are imported
	// concurrently; each individual import runs the same sequential pipeline
	// as Load. If any file fails, the first error is returned after all
	// submitted tasks have drained.
	//
	// Parameters:
	//   - paths: the file paths to import
	//
	// Returns:
	//   - error: the first error encountered, or nil if all files loaded
	LoadAll(paths []string) error

	// Get retrieves a cached mesh by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - *model.MeshData: the cached mesh or nil
	Get(name string) *model.MeshData

	// Meshes returns the full mesh cache.
	//
	// Returns:
	//   - map[string]*model.MeshData: all cached meshes keyed by name
	Meshes() map[string]*model.MeshData
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the OBJ backend and the given options
// applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		meshCache:      make(map[string]*model.MeshData),
		backend:        newOBJLoaderBackend(),
		preloadWorkers: defaultPreloadWorkers(),
	}

	for _, option := range options {
		option(l)
	}

	// Initialize the preload pool after options so WithPreloadWorkers can
	// override the default.
	l.preloadPool = worker.NewDynamicWorkerPool(l.preloadWorkers, 256, 1*time.Second)

	return l
}

func (l *loader) Load(path string) (*model.MeshData, error) {
	l.mu.RLock()
	if cached, ok := l.meshCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	mesh, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l.mu.Lock()
	l.meshCache[path] = mesh
	l.mu.Unlock()

	return mesh, nil
}

func (l *loader) LoadReader(name string, r io.Reader) (*model.MeshData, error) {
	l.mu.RLock()
	if cached, ok := l.meshCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	mesh, err := l.backend.LoadReader(r, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	l.mu.Lock()
	l.meshCache[name] = mesh
	l.mu.Unlock()

	return mesh, nil
}

func (l *loader) LoadAll(paths []string) error {
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for i, path := range paths {
		wg.Add(1)
		pathCap := path // capture for closure
		l.preloadPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if _, err := l.Load(pathCap); err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return firstErr
}

func (l *loader) Get(name string) *model.MeshData {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.meshCache[name]
}

func (l *loader) Meshes() map[string]*model.MeshData {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]*model.MeshData, len(l.meshCache))
	for k, v := range l.meshCache {
		result[k] = v
	}
	return result
}

// resolveBackend selects an appropriate loader backend based on the file
// extension. Currently only Wavefront OBJ is supported.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		return l.backend, nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s", ext)
	}
}
