package font

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// State is the lifecycle of a load request.
type State int

const (
	StatePending State = iota
	StateLoaded
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ProgressFunc receives bytes read so far and the total size (-1 if unknown).
// It is called from the loading goroutine.
type ProgressFunc func(loaded, total int64)

// Request is an in-flight or completed font load.
type Request struct {
	path   string
	cancel context.CancelFunc
	done   chan struct{}

	mu    sync.Mutex
	state State
	font  Font
	err   error
}

// Path returns the requested path ("" for the embedded font).
func (r *Request) Path() string { return r.path }

// Done is closed when the request leaves the pending state.
func (r *Request) Done() <-chan struct{} { return r.done }

// Cancel aborts the load if it is still pending.
func (r *Request) Cancel() { r.cancel() }

// State returns the current request state.
func (r *Request) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Result returns the loaded font or the failure. It does not block; before
// Done is closed it returns (nil, nil).
func (r *Request) Result() (Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.font, r.err
}

// Err returns the failure, if any.
func (r *Request) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Request) finish(f Font, err error) {
	r.mu.Lock()
	switch {
	case err == nil:
		r.state, r.font = StateLoaded, f
	case errors.Is(err, ErrCancelled):
		r.state, r.err = StateCancelled, err
	default:
		r.state, r.err = StateFailed, err
	}
	r.mu.Unlock()
	close(r.done)
}

// Loader reads and parses font files in the background.
type Loader struct {
	// ChunkSize is the read size between progress reports and cancellation checks.
	ChunkSize int
	// Open opens a font file; defaults to os.Open.
	Open func(path string) (*os.File, error)
	// EmbeddedIfMissing loads the embedded default font instead of failing
	// when the font file does not exist.
	EmbeddedIfMissing bool
}

// NewLoader returns a loader with default settings.
func NewLoader() *Loader {
	return &Loader{ChunkSize: 32 * 1024, Open: os.Open}
}

// Load starts loading path in a new goroutine. An empty path yields the
// embedded default font. Cancelling ctx or calling Request.Cancel aborts the load.
func (l *Loader) Load(ctx context.Context, path string, onProgress ProgressFunc) *Request {
	ctx, cancel := context.WithCancel(ctx)
	req := &Request{
		path:   path,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer cancel()
		f, err := l.load(ctx, path, onProgress)
		if err == nil && ctx.Err() != nil {
			err = ErrCancelled
		}
		req.finish(f, err)
	}()
	return req
}

func (l *Loader) load(ctx context.Context, path string, onProgress ProgressFunc) (Font, error) {
	if path == "" {
		return Default()
	}
	data, err := l.read(ctx, path, onProgress)
	if err != nil {
		if l.EmbeddedIfMissing && errors.Is(err, fs.ErrNotExist) {
			return Default()
		}
		return nil, err
	}
	return Parse(path, data)
}

// Parse decodes data according to the path's extension.
func Parse(path string, data []byte) (Font, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseTypeface(data)
	case ".ttf", ".otf", ".ttc", ".otc":
		return ParseOpenType(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

func (l *Loader) read(ctx context.Context, path string, onProgress ProgressFunc) ([]byte, error) {
	open := l.Open
	if open == nil {
		open = os.Open
	}
	chunk := l.ChunkSize
	if chunk <= 0 {
		chunk = 32 * 1024
	}

	f, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("opening font %s: %w", path, err)
	}
	defer f.Close()

	total := int64(-1)
	if st, err := f.Stat(); err == nil {
		total = st.Size()
	}

	var data []byte
	if total > 0 {
		data = make([]byte, 0, total)
	}
	buf := make([]byte, chunk)
	for {
		if ctx.Err() != nil {
			return nil, ErrCancelled
		}
		n, err := f.Read(buf)
		data = append(data, buf[:n]...)
		if n > 0 && onProgress != nil {
			onProgress(int64(len(data)), total)
		}
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading font %s: %w", path, err)
		}
	}
}
