package jclass

import (
	"fmt"
	"os"

	"github.com/andreyvit/jclass/mmap"
)

// MappedFile is a class file mapped read-only into memory. Records decoded
// from its cursor alias the mapping and must not be used after Close.
type MappedFile struct {
	f    *os.File
	data []byte
}

func MapFile(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.Size() > mmap.MaxSize || int64(int(st.Size())) != st.Size() {
		f.Close()
		return nil, fmt.Errorf("%s: file too large to map (%d bytes)", path, st.Size())
	}
	data, err := mmap.Mmap(f, int(st.Size()), mmap.SequentialAccess)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &MappedFile{f, data}, nil
}

func (mf *MappedFile) Bytes() []byte {
	return mf.data
}

func (mf *MappedFile) Cursor() Cursor {
	return NewCursor(mf.data)
}

func (mf *MappedFile) Close() error {
	data := mf.data
	mf.data = nil
	err := mmap.Munmap(data)
	if cerr := mf.f.Close(); err == nil {
		err = cerr
	}
	return err
}
