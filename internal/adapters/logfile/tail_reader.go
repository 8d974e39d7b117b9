package logfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log-tail-service/internal/domain"
	"log-tail-service/internal/platform/obs"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// FileTailReader reads the tail of a newline-delimited log file at Path.
type FileTailReader struct {
	Path   string
	Logger *zap.Logger
}

func NewFileTailReader(path string, logger *zap.Logger) *FileTailReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileTailReader{Path: path, Logger: logger}
}

func (r *FileTailReader) ReadTail(ctx context.Context, limit int) (_ []string, err error) {
	defer obs.Time(ctx, r.Logger, "logfile.ReadTail")(&err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read tail: %w", err)
	}

	return ReadTail(r.Path, limit)
}

// ReadTail returns the last limit non-blank lines of the file at path, in file order.
// A missing file yields an empty result. The file is streamed, so memory is bounded
// by limit. If the file changes during the read, whatever was read before EOF is used.
func ReadTail(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read tail: open %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("read tail: stat %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read tail: %q is a directory", path)
	}

	window := domain.NewTailWindow(limit)
	if err := scanLines(f, window.Push); err != nil {
		return nil, fmt.Errorf("read tail: %q: %w", path, err)
	}

	return window.Items(), nil
}

// maxLineSize bounds a single line; longer lines fail the read.
const maxLineSize = 16 * 1024 * 1024

// scanLines calls fn for each line of src with its terminator removed.
// "\n", "\r\n" and a lone "\r" all end a line.
func scanLines(src io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(splitLines)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if !utf8.Valid(line) {
			return fmt.Errorf("line %d: invalid UTF-8", lineNo)
		}
		fn(string(line))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return nil
}

// splitLines is a bufio.SplitFunc that accepts "\n", "\r\n" and "\r" terminators.
// A final line without a terminator is returned as is.
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Trailing "\r": the next read decides whether it is "\r\n".
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
