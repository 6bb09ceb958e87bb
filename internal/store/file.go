package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is a file-backed Store. The mutex serializes file access within one
// call; multi-call read-modify-write sequences are guarded by the owning
// service's lock.
type File[R any] struct {
	mu    sync.Mutex
	path  string
	codec Codec[R]
}

// NewFile opens the store at path, creating the file with its header line if
// it does not exist yet.
func NewFile[R any](path string, codec Codec[R]) (*File[R], error) {
	f := &File[R]{path: path, codec: codec}

	if err := f.ensure(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *File[R]) ensure() error {
	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", f.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	header := strings.Join(f.codec.Header(), Delimiter) + "\n"
	if err := os.WriteFile(f.path, []byte(header), 0o644); err != nil {
		return fmt.Errorf("write header to %s: %w", f.path, err)
	}

	return nil
}

// LoadAll reads every record in file order. A missing file is recreated with
// its header and treated as empty. Blank lines and rows the codec rejects are
// skipped; that tolerance applies only to persisted rows, never to operation
// input.
func (f *File[R]) LoadAll() ([]R, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := f.ensure(); err != nil {
				return nil, err
			}
			return []R{}, nil
		}
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	records := []R{}
	scanner := bufio.NewScanner(file)
	first := true

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false // header
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := f.codec.Parse(strings.Split(line, Delimiter))
		if err != nil {
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	return records, nil
}

// Append writes one record durably at the end of the store.
func (f *File[R]) Append(record R) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensure(); err != nil {
		return err
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", f.path, err)
	}

	line := strings.Join(f.codec.Fields(record), Delimiter) + "\n"
	if _, err := file.WriteString(line); err != nil {
		file.Close()
		return fmt.Errorf("append to %s: %w", f.path, err)
	}

	return file.Close()
}

// ReplaceAll atomically rewrites the whole store: header plus the given
// records, in order, via a temp file renamed into place.
func (f *File[R]) ReplaceAll(records []R) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.Join(f.codec.Header(), Delimiter))
	b.WriteString("\n")
	for _, record := range records {
		b.WriteString(strings.Join(f.codec.Fields(record), Delimiter))
		b.WriteString("\n")
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}

	return nil
}
