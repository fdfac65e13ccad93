package vecfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

var magic = [4]byte{'V', 'E', 'C', '1'}

// ErrCorruptFile indicates the file is not a valid vector cache: bad
// magic, impossible header, or truncated data.
var ErrCorruptFile = errors.New("corrupt vector file")

// Write stores vectors at path atomically. All rows must share the same
// dimension; an empty matrix is valid and round-trips to an empty one.
func Write(path string, vectors [][]float32) error {
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("row %d has dimension %d, want %d", i, len(v), dim)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(magic[:]); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(vectors))); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(dim)); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}

	buf := make([]byte, 4)
	for _, v := range vectors {
		for _, f := range v {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(f))
			if _, err := w.Write(buf); err != nil {
				tmp.Close()
				return fmt.Errorf("write data: %w", err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Read loads a matrix written by Write.
func Read(path string) ([][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	if head != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptFile, head[:])
	}

	var rows, dim uint32
	if err := binary.Read(r, binary.LittleEndian, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	const maxCells = 1 << 30
	if uint64(rows)*uint64(dim) > maxCells {
		return nil, fmt.Errorf("%w: header claims %d x %d", ErrCorruptFile, rows, dim)
	}

	vectors := make([][]float32, rows)
	buf := make([]byte, 4)
	for i := range vectors {
		row := make([]float32, dim)
		for j := range row {
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("%w: truncated at row %d: %v", ErrCorruptFile, i, err)
			}
			row[j] = math.Float32frombits(binary.LittleEndian.Uint32(buf))
		}
		vectors[i] = row
	}

	if _, err := r.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrCorruptFile)
	}
	return vectors, nil
}
