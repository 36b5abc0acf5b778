package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/fm-drums/voice"
)

// Bank gives locked access to a voice bank, as the engine does
type Bank interface {
	WithVoices(fn func(voices []voice.Voice))
}

// File is a parameter file on disk
// Serialization happens under the bank lock; disk I/O happens outside it.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// Exists checks if the parameter file exists
func (f *File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// Ensure writes the default record if the file is missing and reports whether it did
func (f *File) Ensure() (bool, error) {
	_, err := os.Stat(f.Path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := f.write([]byte(DefaultRecord)); err != nil {
		return false, fmt.Errorf("bootstrap %s: %w", f.Path, err)
	}
	return true, nil
}

// Save writes the bank's parameters
func (f *File) Save(b Bank) error {
	var buf bytes.Buffer
	var err error
	b.WithVoices(func(voices []voice.Voice) {
		err = Write(&buf, voices)
	})
	if err != nil {
		return err
	}
	return f.write(buf.Bytes())
}

// Load reads the file into the bank and returns the number of fields assigned
func (f *File) Load(b Bank) (int, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return 0, err
	}
	var n int
	b.WithVoices(func(voices []voice.Voice) {
		n, err = Read(bytes.NewReader(data), voices)
	})
	return n, err
}

// Bootstrap ensures the file exists, then loads it
func (f *File) Bootstrap(b Bank) (created bool, n int, err error) {
	if created, err = f.Ensure(); err != nil {
		return false, 0, err
	}
	n, err = f.Load(b)
	return created, n, err
}

func (f *File) write(data []byte) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, data, 0644)
}
