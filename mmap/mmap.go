// Package mmap maps files into memory read-only, so that decoded class-file
// records can alias file contents instead of copying them.
package mmap

import (
	"fmt"
	"os"
)

type Options uint

const (
	// SequentialAccess is a hint requesting aggressive read-ahead.
	// Incompatible with RandomAccess. Maps to MADV_SEQUENTIAL on Unix.
	SequentialAccess Options = 1 << 0

	// RandomAccess is a hint that read ahead is less useful than normally.
	// Incompatible with SequentialAccess. Maps to MADV_RANDOM on Unix.
	RandomAccess Options = 1 << 1

	// Prefault is a hint requesting the entire file to be loaded in memory
	// for fastest access. Maps to MAP_POPULATE on Linux.
	Prefault Options = 1 << 2
)

func (o Options) Has(v Options) bool {
	return o&v != 0
}

// Mmap maps the first size bytes of f read-only. A zero size yields a nil
// slice without creating a mapping.
func Mmap(f *os.File, size int, opt Options) ([]byte, error) {
	if size < 0 || int64(size) > MaxSize {
		return nil, fmt.Errorf("cannot map %d bytes, max %d", size, int64(MaxSize))
	}
	if size == 0 {
		return nil, nil
	}
	return mmap(f, size, opt)
}

// Munmap unmaps the given slice from memory. The slice must have been returned
// by Mmap.
func Munmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return munmap(b)
}
