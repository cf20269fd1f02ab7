// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// VectorsFile is the vector file name inside an index directory.
const VectorsFile = "vectors.bin"

// vectors.bin layout, little-endian: a fixed header followed by count rows
// of dims float32 values each.
const (
	vectorsMagic   uint32 = 0x4E455658 // "NEVX"
	vectorsVersion uint32 = 1
)

type vectorsHeader struct {
	Magic   uint32
	Version uint32
	Count   uint32
	Dims    uint32
}

// WriteVectors writes vecs to path atomically. All rows must share the same
// width; an empty slice writes a valid zero-count file.
func WriteVectors(path string, vecs [][]float32) error {
	dims := 0
	if len(vecs) > 0 {
		dims = len(vecs[0])
	}
	for i, v := range vecs {
		if len(v) != dims {
			return fmt.Errorf("vector %d has %d dimensions, expected %d", i, len(v), dims)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".index-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	buf := bufio.NewWriter(tmpFile)
	header := vectorsHeader{
		Magic:   vectorsMagic,
		Version: vectorsVersion,
		Count:   uint32(len(vecs)),
		Dims:    uint32(dims),
	}
	writeErr := binary.Write(buf, binary.LittleEndian, header)
	if writeErr == nil {
		for _, v := range vecs {
			if writeErr = binary.Write(buf, binary.LittleEndian, v); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		writeErr = buf.Flush()
	}
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing vectors: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ReadVectors reads a vector file written by WriteVectors, returning the
// rows and their width.
func ReadVectors(path string) ([][]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf := bufio.NewReader(f)
	var header vectorsHeader
	if err := binary.Read(buf, binary.LittleEndian, &header); err != nil {
		return nil, 0, fmt.Errorf("reading vector header: %w", err)
	}
	if header.Magic != vectorsMagic {
		return nil, 0, fmt.Errorf("%s is not a vector file", path)
	}
	if header.Version != vectorsVersion {
		return nil, 0, fmt.Errorf("unsupported vector file version %d", header.Version)
	}

	vecs := make([][]float32, header.Count)
	for i := range vecs {
		row := make([]float32, header.Dims)
		if err := binary.Read(buf, binary.LittleEndian, row); err != nil {
			return nil, 0, fmt.Errorf("reading vector %d: %w", i, err)
		}
		vecs[i] = row
	}
	return vecs, int(header.Dims), nil
}

// LoadFlat reads the vector file under indexDir into a searchable index.
func LoadFlat(indexDir string) (*Flat, error) {
	vecs, dims, err := ReadVectors(filepath.Join(indexDir, VectorsFile))
	if err != nil {
		return nil, err
	}
	return &Flat{dims: dims, vectors: vecs}, nil
}
