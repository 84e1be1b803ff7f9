package transport

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

var (
	ErrStreamingUnsupported = errors.New("streaming not supported")
	ErrWriterInUse          = errors.New("stream writer is already bound to a run")
)

// Writer delivers frames of exactly one run to one caller, flushing after
// every frame.
type Writer struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
	bound   bool
	started bool
}

func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}
	return &Writer{w: w, flusher: flusher}, nil
}

func (sw *Writer) bind() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.bound {
		return ErrWriterInUse
	}
	sw.bound = true
	return nil
}

func (sw *Writer) writeHeaders() {
	if sw.started {
		return
	}
	h := sw.w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	sw.w.WriteHeader(http.StatusOK)
	sw.started = true
}

// WriteFrame encodes f and flushes it to the caller.
func (sw *Writer) WriteFrame(f Frame) error {
	data, err := Encode(f)
	if err != nil {
		return err
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.writeHeaders()
	if _, err := sw.w.Write(data); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	sw.flusher.Flush()
	return nil
}

// Open sends the stream headers before the first frame is ready.
func (sw *Writer) Open() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.writeHeaders()
	sw.flusher.Flush()
}
