package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
)

const (
	binaryHeaderSize   = 80
	binaryTriangleSize = 50
)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	// Binary files may also start with "solid"; trust the size check first
	if looksBinary(file, info.Size()) {
		return parseBinary(bufio.NewReader(file))
	}
	return Decode(file)
}

// Decode reads an STL model from a stream
func Decode(r io.Reader) (*Model, error) {
	reader := bufio.NewReader(r)
	header, err := reader.Peek(5)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	if len(header) >= 5 && string(header[:5]) == "solid" {
		return parseASCII(reader)
	}
	return parseBinary(reader)
}

// looksBinary checks whether the triangle count in the header matches the file size
func looksBinary(file *os.File, size int64) bool {
	if size < binaryHeaderSize+4 {
		return false
	}
	var count uint32
	buf := make([]byte, 4)
	if _, err := file.ReadAt(buf, binaryHeaderSize); err != nil {
		return false
	}
	count = binary.LittleEndian.Uint32(buf)
	return size == binaryHeaderSize+4+int64(count)*binaryTriangleSize
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal mgl64.Vec3
	var vertices []mgl64.Vec3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				n, err := parseVector(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("invalid facet normal: %w", err)
				}
				currentNormal = n
			}

		case "vertex":
			if len(fields) >= 4 {
				v, err := parseVector(fields[1:4])
				if err != nil {
					return nil, fmt.Errorf("invalid vertex: %w", err)
				}
				vertices = append(vertices, v)
			}

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

// binaryFacet mirrors the 50 byte on-disk triangle record
type binaryFacet struct {
	Normal    [3]float32
	V1        [3]float32
	V2        [3]float32
	V3        [3]float32
	Attribute uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var facet binaryFacet
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(
			vec3(facet.Normal),
			vec3(facet.V1),
			vec3(facet.V2),
			vec3(facet.V3),
		))
	}

	return model, nil
}

func vec3(v [3]float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
