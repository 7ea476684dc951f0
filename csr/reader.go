package csr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Binary graph-file format, little-endian throughout:
//
//	uint32 n, uint32 nnz            (header)
//	int32  rowOffsets[n+1]          (body)
//	int32  colIndices[nnz]
//	float32 edgeValues[nnz]
//
// Any short read or invariant violation surfaces as ErrMalformedGraph so a
// scenario fails fast on a bad file instead of proceeding with garbage.

// maxDimension bounds n and nnz read from a header, guarding allocation
// against corrupt files. int32 indexing caps the format anyway.
const maxDimension = 1 << 31

// ReadHeader reads and validates the (vertexCount, edgeCount) header.
func ReadHeader(r io.Reader) (n, nnz int, err error) {
	var hdr struct{ N, NNZ uint32 }
	if err = binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return 0, 0, fmt.Errorf("%w: reading header: %v", ErrMalformedGraph, err)
	}
	if hdr.N >= maxDimension || hdr.NNZ >= maxDimension {
		return 0, 0, fmt.Errorf("%w: header dimensions n=%d nnz=%d out of range", ErrMalformedGraph, hdr.N, hdr.NNZ)
	}
	return int(hdr.N), int(hdr.NNZ), nil
}

// ReadBody reads the CSR arrays declared by a previously read header.
// Dimension disagreement between header and data is a malformed-graph error.
func ReadBody(r io.Reader, n, nnz int) (rowOffsets, colIndices []int32, values []float32, err error) {
	rowOffsets = make([]int32, n+1)
	if err = binary.Read(r, binary.LittleEndian, rowOffsets); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: reading row offsets: %v", ErrMalformedGraph, err)
	}
	colIndices = make([]int32, nnz)
	if err = binary.Read(r, binary.LittleEndian, colIndices); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: reading column indices: %v", ErrMalformedGraph, err)
	}
	values = make([]float32, nnz)
	if err = binary.Read(r, binary.LittleEndian, values); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: reading edge values: %v", ErrMalformedGraph, err)
	}
	return rowOffsets, colIndices, values, nil
}

// ReadGraph reads header and body and constructs a validated Graph.
func ReadGraph(r io.Reader) (*Graph, error) {
	n, nnz, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	rowOffsets, colIndices, values, err := ReadBody(r, n, nnz)
	if err != nil {
		return nil, err
	}
	return New(rowOffsets, colIndices, values)
}

// WriteGraph serializes g in the binary format ReadGraph accepts.
// Graphs without values are written with zero values to keep the format fixed.
func WriteGraph(w io.Writer, g *Graph) error {
	hdr := struct{ N, NNZ uint32 }{uint32(g.VertexCount()), uint32(g.EdgeCount())}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("csr: writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, g.RowOffsets()); err != nil {
		return fmt.Errorf("csr: writing row offsets: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, g.ColIndices()); err != nil {
		return fmt.Errorf("csr: writing column indices: %w", err)
	}
	values := g.Values()
	if values == nil {
		values = make([]float32, g.EdgeCount())
	}
	if err := binary.Write(w, binary.LittleEndian, values); err != nil {
		return fmt.Errorf("csr: writing edge values: %w", err)
	}
	return nil
}
