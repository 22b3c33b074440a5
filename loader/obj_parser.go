package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/DonReek/obj-import/common"
)

// Errors returned by the importer. All of them are fatal: a load either
// produces a complete, internally consistent mesh or fails outright. Callers
// match them with errors.Is; the wrapped message carries file/line context.
var (
	// ErrFileUnavailable indicates the source file could not be opened or read.
	ErrFileUnavailable = errors.New("file unavailable")

	// ErrMalformedNumber indicates a v/vt/vn component token is not a valid float.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrMalformedFaceToken indicates a face vertex token has a missing or
	// non-integer position index.
	ErrMalformedFaceToken = errors.New("malformed face token")

	// ErrInsufficientComponents indicates a v/vt/vn line has fewer numeric
	// components than the directive requires.
	ErrInsufficientComponents = errors.New("insufficient components")

	// ErrIndexOutOfRange indicates a face references an attribute index outside
	// the corresponding attribute array. Negative indices (OBJ relative
	// indexing) are not supported and fail with this error as well.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// indexAbsent marks a face index slot the source token did not fill (e.g. the
// empty texture slot in "1//2"). It is negative on purpose: if a face slot is
// absent but the corresponding attribute array is populated, the indexer's
// bounds check rejects it instead of silently reading element zero.
const indexAbsent = -1

// faceIndex is one face vertex's attribute index triple, zero-based. Two
// triples are equal iff all three components match, which makes the type
// usable directly as a dedup map key.
type faceIndex struct {
	pos, tex, norm int
}

// objData is the raw parse result: the four parallel attribute collections an
// OBJ file declares, before any deduplication or triangulation.
type objData struct {
	positions []common.Vec3
	texCoords []common.Vec2
	normals   []common.Vec3

	// faces holds one index-triple sequence per f directive, in declaration
	// order. Each sequence is an arbitrary-sided polygon (length >= 3 in any
	// well-formed file; shorter sequences are tolerated and triangulate to
	// nothing).
	faces [][]faceIndex
}

// objParserImpl is the implementation of the objParser interface.
type objParserImpl struct {
	data *objData
}

// objParser defines the interface for reading Wavefront OBJ text into raw
// attribute arrays and face index triples. It handles file I/O, line
// classification, and token parsing. This is internal to the loader package.
type objParser interface {
	// Parse loads and parses an OBJ file from the given path.
	//
	// Parameters:
	//   - path: path to the OBJ file
	//
	// Returns:
	//   - error: error if parsing fails
	Parse(path string) error

	// ParseReader parses OBJ text from a reader.
	// Use this when loading from embedded resources or network streams.
	//
	// Parameters:
	//   - r: reader containing OBJ text
	//
	// Returns:
	//   - error: error if parsing fails
	ParseReader(r io.Reader) error

	// Data returns the parsed raw mesh data.
	// Returns nil if Parse has not been called successfully.
	//
	// Returns:
	//   - *objData: the parsed data or nil
	Data() *objData
}

var _ objParser = &objParserImpl{}

// newOBJParser creates a new parser with no data loaded.
//
// Returns:
//   - objParser: the parser
func newOBJParser() objParser {
	return &objParserImpl{}
}

func (p *objParserImpl) Parse(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileUnavailable, err)
	}
	defer f.Close()
	return p.ParseReader(f)
}

func (p *objParserImpl) ParseReader(r io.Reader) error {
	data := &objData{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Classification is by prefix. Anything unrecognized (comments, o/g/s
		// directives, mtllib/usemtl, blank lines) is skipped: the format is
		// forward-compatible with directives this importer does not model.
		switch {
		case strings.HasPrefix(line, "v "):
			floats, err := parseFloats(line[2:], 3)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
			data.positions = append(data.positions, common.Vec3{X: floats[0], Y: floats[1], Z: floats[2]})
		case strings.HasPrefix(line, "vt "):
			floats, err := parseFloats(line[3:], 2)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
			data.texCoords = append(data.texCoords, common.Vec2{X: floats[0], Y: floats[1]})
		case strings.HasPrefix(line, "vn "):
			floats, err := parseFloats(line[3:], 3)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
			data.normals = append(data.normals, common.Vec3{X: floats[0], Y: floats[1], Z: floats[2]})
		case strings.HasPrefix(line, "f "):
			face, err := parseFace(line[2:])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
			data.faces = append(data.faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFileUnavailable, err)
	}

	p.data = data
	return nil
}

func (p *objParserImpl) Data() *objData {
	return p.data
}

// parseFloats splits s on whitespace and parses the tokens as 64-bit floats.
// Extra tokens beyond min are parsed too (a malformed trailing token is still
// an error) but only the leading min values are consumed by callers.
func parseFloats(s string, min int) ([]float64, error) {
	tokens := strings.Fields(s)
	if len(tokens) < min {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrInsufficientComponents, len(tokens), min)
	}
	floats := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
		}
		floats[i] = v
	}
	return floats, nil
}

// parseFace parses the body of an f directive: one whitespace-separated token
// per polygon vertex, each token up to three /-separated 1-based indices
// (pos, pos/tex, pos//norm, pos/tex/norm). Indices are converted to zero-based;
// omitted tex/norm slots become indexAbsent.
func parseFace(s string) ([]faceIndex, error) {
	tokens := strings.Fields(s)
	face := make([]faceIndex, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(tok, "/")

		fi := faceIndex{pos: indexAbsent, tex: indexAbsent, norm: indexAbsent}
		pos, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFaceToken, tok)
		}
		fi.pos = pos - 1

		if len(parts) > 1 && parts[1] != "" {
			tex, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedFaceToken, tok)
			}
			fi.tex = tex - 1
		}
		if len(parts) > 2 && parts[2] != "" {
			norm, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedFaceToken, tok)
			}
			fi.norm = norm - 1
		}
		face = append(face, fi)
	}
	return face, nil
}
