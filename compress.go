// Deflate compression for export archives.
//
// The archive is written with klauspost/compress/zip and its deflate
// compressor is replaced by klauspost/compress/flate at the configured
// level. Writers are pooled per level: a flate writer carries a large
// window and hash table, and an export of many small documents would
// otherwise allocate one per entry.
package promptflow

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

var flatePools sync.Map // level -> *sync.Pool of *flate.Writer

// validLevel reports whether level is accepted by flate.NewWriter.
func validLevel(level int) bool {
	return level >= flate.HuffmanOnly && level <= flate.BestCompression
}

// compressor returns a zip.Compressor producing deflate streams at level.
func compressor(level int) (zip.Compressor, error) {
	if !validLevel(level) {
		return nil, fmt.Errorf("%w: compression level %d out of range", ErrValidation, level)
	}
	p, _ := flatePools.LoadOrStore(level, &sync.Pool{})
	pool := p.(*sync.Pool)

	return func(w io.Writer) (io.WriteCloser, error) {
		if fw, ok := pool.Get().(*flate.Writer); ok {
			fw.Reset(w)
			return &pooledWriter{Writer: fw, pool: pool}, nil
		}
		fw, err := flate.NewWriter(w, level)
		if err != nil {
			return nil, err
		}
		return &pooledWriter{Writer: fw, pool: pool}, nil
	}, nil
}

// pooledWriter returns its flate writer to the pool on Close.
type pooledWriter struct {
	*flate.Writer
	pool *sync.Pool
}

func (w *pooledWriter) Close() error {
	if w.Writer == nil {
		return nil
	}
	err := w.Writer.Close()
	w.pool.Put(w.Writer)
	w.Writer = nil
	return err
}
