package loader

import (
	"runtime"

	"github.com/DonReek/obj-import/model"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithMesh is an option builder that pre-populates the mesh cache with a mesh.
//
// Parameters:
//   - key: the cache key for the mesh
//   - mesh: the mesh to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the mesh option to a loader
func WithMesh(key string, mesh *model.MeshData) LoaderBuilderOption {
	return func(l *loader) {
		l.meshCache[key] = mesh
	}
}

// WithPreloadWorkers sets the number of worker goroutines used by LoadAll.
// Defaults to runtime.NumCPU()-1. Higher values may improve throughput for
// large batches of small files; lower values reduce scheduling overhead.
//
// Parameters:
//   - n: the number of preload workers (minimum 1)
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithPreloadWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n < 1 {
			n = 1
		}
		l.preloadWorkers = n
	}
}

// defaultPreloadWorkers returns the default LoadAll worker count.
func defaultPreloadWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}
