package trial

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrClosed is returned when recording to a closed Recorder
var ErrClosed = errors.New("trial recorder closed")

// Recorder appends records to a writer as consecutive msgpack values
type Recorder struct {
	mu     sync.Mutex
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	closer io.Closer
	count  int
	closed bool
}

// NewRecorder wraps w; if w is an io.Closer it is closed by Close
func NewRecorder(w io.Writer) *Recorder {
	buf := bufio.NewWriter(w)
	r := &Recorder{
		buf: buf,
		enc: msgpack.NewEncoder(buf),
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// Create opens path for appending and returns a Recorder over it
func Create(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trial log: %w", err)
	}
	return NewRecorder(f), nil
}

// Record encodes one trial and flushes it
func (r *Recorder) Record(rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.enc.Encode(&rec); err != nil {
		return fmt.Errorf("encode trial %d: %w", rec.Index, err)
	}
	if err := r.buf.Flush(); err != nil {
		return fmt.Errorf("flush trial %d: %w", rec.Index, err)
	}
	r.count++
	return nil
}

// Count returns the number of records written
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Close flushes and closes the underlying writer
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	err := r.buf.Flush()
	if r.closer != nil {
		err = errors.Join(err, r.closer.Close())
	}
	return err
}

// ReadAll decodes every record in a trial log stream
func ReadAll(rd io.Reader) ([]Record, error) {
	br := bufio.NewReader(rd)
	dec := msgpack.NewDecoder(br)
	var out []Record
	for {
		// EOF between records is a clean end; EOF inside one is truncation
		if _, err := br.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, fmt.Errorf("read trial log: %w", err)
		}
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return out, fmt.Errorf("decode trial %d: %w", len(out), err)
		}
		out = append(out, rec)
	}
}
