package loader

import (
	"io"

	"github.com/DonReek/obj-import/model"
)

// loaderBackend defines the generic interface for importing meshes from files
// or streams. Concrete implementations (e.g., objLoaderBackend) handle
// format-specific details.
type loaderBackend interface {
	// Load performs a full mesh import from the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *model.MeshData: the imported mesh data
	//   - error: error if loading fails
	Load(path string) (*model.MeshData, error)

	// LoadReader imports a mesh from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing mesh data
	//   - name: the mesh name to record on the result
	//
	// Returns:
	//   - *model.MeshData: the imported mesh data
	//   - error: error if loading fails
	LoadReader(r io.Reader, name string) (*model.MeshData, error)
}
