// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WrapFasta folds a sequence every `width` characters for FASTA output.
// Widths below 1 fall back to the conventional 60 columns.
func WrapFasta(seq string, width int) string {
	if width < 1 {
		width = 60
	}
	var wrapped strings.Builder
	wrapped.Grow(len(seq) + len(seq)/width + 1)
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		wrapped.WriteString(seq[i:end])
		wrapped.WriteByte('\n')
	}
	return wrapped.String()
}

type FastaHandler func(id string, seq string) error

// StreamFasta is a memory-efficient reader for FASTA files of any size.
// It automatically detects and decompresses Gzipped files, treats sequences
// case-insensitively, and calls the handler once per record.
func StreamFasta(file string, handler FastaHandler) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		f.Seek(0, io.SeekStart)
		gr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	} else {
		f.Seek(0, io.SeekStart)
	}

	scanner := bufio.NewScanner(reader)

	var currentID string
	var buffer []byte
	sawHeader := false

	flush := func() error {
		if !sawHeader || len(buffer) == 0 {
			return nil
		}
		if err := handler(currentID, string(buffer)); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = strings.TrimPrefix(line, ">")
			sawHeader = true
			buffer = buffer[:0] // reset buffer
		} else {
			buffer = append(buffer, []byte(strings.ToUpper(line))...)
		}
	}
	if err := flush(); err != nil {
		return err
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

// errStopStream aborts StreamFasta early once FirstRecord has what it needs.
var errStopStream = errors.New("stop streaming")

// FirstRecord returns the header and sequence of the first record in a FASTA
// file, plain or gzipped. Files with no records return an error.
func FirstRecord(file string) (string, string, error) {
	var id, seq string
	found := false

	err := StreamFasta(file, func(recID string, recSeq string) error {
		id, seq = recID, recSeq
		found = true
		return errStopStream
	})
	if err != nil && !errors.Is(err, errStopStream) {
		return "", "", err
	}
	if !found {
		return "", "", fmt.Errorf("no FASTA records found in %s", file)
	}
	return id, seq, nil
}

// EnsureDir creates the parent directory of path if it does not exist yet.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// WriteFasta writes one record to path with the given wrap width, appending
// ".gz" and compressing when gzipOut is set. It returns the path actually
// written.
func WriteFasta(path string, id string, seq string, width int, gzipOut bool) (string, error) {
	if err := EnsureDir(path); err != nil {
		return "", err
	}

	fasta := fmt.Sprintf(">%s\n%s", id, WrapFasta(seq, width))

	if gzipOut {
		path += ".gz"
		file, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("failed to create gzip file: %w", err)
		}
		defer file.Close()

		writer := gzip.NewWriter(file)
		defer writer.Close()

		if _, err := writer.Write([]byte(fasta)); err != nil {
			return "", fmt.Errorf("failed to write compressed data: %w", err)
		}
		return path, nil
	}

	if err := os.WriteFile(path, []byte(fasta), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}
