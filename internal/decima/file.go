package decima

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// MapFile returns the bytes of a container plus a release func. Files are
// mmapped read-only where the platform allows it, with a plain read
// fallback. ParseChunks copies payloads out of the buffer, so callers can
// release the mapping as soon as the parse returns.
func MapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	size := st.Size()
	if size == 0 {
		_ = f.Close()
		return []byte{}, func() error { return nil }, nil
	}
	if size <= int64(int(^uint(0)>>1)) {
		if data, merr := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED); merr == nil {
			_ = f.Close()
			return data, func() error { return unix.Munmap(data) }, nil
		}
	}

	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}

// LoadFile reads and parses a container in one step.
func LoadFile(game Game, path string) (*Document, error) {
	data, release, err := MapFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = release() }()
	return Load(game, data)
}
