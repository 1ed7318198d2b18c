// Package diskbench measures sequential write and read throughput for a
// directory's backing storage. Runs are bounded by a hard time budget and
// the test file is removed on every exit path, including timeouts.
package diskbench

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	benchFileName = ".llm_neofetch_benchmark.tmp"
	chunkSize     = 4 << 20 // per-call I/O size; also the deadline-check granularity
)

// Options constrain a benchmark run. The zero value benches 100 MB in the
// user's home directory with a 30 second budget.
type Options struct {
	Path    string        // target directory
	SizeMB  int           // test file size
	Timeout time.Duration // shared budget across write and read phases
}

func (o Options) withDefaults() (Options, error) {
	if o.SizeMB <= 0 {
		o.SizeMB = 100
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return o, fmt.Errorf("resolve home directory: %w", err)
		}
		o.Path = home
	}
	return o, nil
}

// Result holds the measured throughput. Speeds are MB/s where MB matches
// the requested file size unit.
type Result struct {
	WriteMBps  float64 `json:"write_mb_s" yaml:"write_mb_s" toml:"write_mb_s"`
	ReadMBps   float64 `json:"read_mb_s" yaml:"read_mb_s" toml:"read_mb_s"`
	FileSizeMB int     `json:"file_size_mb" yaml:"file_size_mb" toml:"file_size_mb"`
	Path       string  `json:"path" yaml:"path" toml:"path"`
}

// Run writes a randomly-filled file of the requested size, syncs it to
// stable storage, reads it back, and reports both phases' throughput.
// Random data keeps filesystem compression from inflating the numbers.
// Any failure or budget overrun returns an error and no result; a partial
// measurement would only mislead.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	path := filepath.Join(opts.Path, benchFileName)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create benchmark file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(path)
	}()

	// The payload is generated before the timed region so the generator
	// never shows up in the numbers.
	chunk := make([]byte, chunkSize)
	if _, err := rand.Read(chunk); err != nil {
		return nil, fmt.Errorf("fill benchmark buffer: %w", err)
	}

	size := int64(opts.SizeMB) << 20

	start := time.Now()
	var written int64
	for written < size {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("write phase over budget: %w", err)
		}
		n := int64(chunkSize)
		if remaining := size - written; remaining < n {
			n = remaining
		}
		m, err := f.Write(chunk[:n])
		written += int64(m)
		if err != nil {
			return nil, fmt.Errorf("write benchmark file: %w", err)
		}
	}
	// Force to stable storage inside the write window so the read phase
	// does not start against dirty page cache.
	if err := f.Sync(); err != nil {
		return nil, fmt.Errorf("sync benchmark file: %w", err)
	}
	writeElapsed := time.Since(start)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("write phase over budget: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind benchmark file: %w", err)
	}

	start = time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read phase over budget: %w", err)
		}
		_, err := f.Read(chunk)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read benchmark file: %w", err)
		}
	}
	readElapsed := time.Since(start)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read phase over budget: %w", err)
	}

	res := &Result{FileSizeMB: opts.SizeMB, Path: opts.Path}
	if s := writeElapsed.Seconds(); s > 0 {
		res.WriteMBps = float64(opts.SizeMB) / s
	}
	if s := readElapsed.Seconds(); s > 0 {
		res.ReadMBps = float64(opts.SizeMB) / s
	}
	return res, nil
}
