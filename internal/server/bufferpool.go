package server

import (
	"bufio"
	"io"
	"sync"
)

const bufferSize = 4096

// Per-connection buffered readers and writers are recycled across
// connections.
var (
	readerPool = sync.Pool{
		New: func() interface{} {
			return bufio.NewReaderSize(nil, bufferSize)
		},
	}
	writerPool = sync.Pool{
		New: func() interface{} {
			return bufio.NewWriterSize(nil, bufferSize)
		},
	}
)

func getReader(r io.Reader) *bufio.Reader {
	br := readerPool.Get().(*bufio.Reader)
	br.Reset(r)
	return br
}

// putReader drops the reference to the connection before pooling.
func putReader(br *bufio.Reader) {
	br.Reset(nil)
	readerPool.Put(br)
}

func getWriter(w io.Writer) *bufio.Writer {
	bw := writerPool.Get().(*bufio.Writer)
	bw.Reset(w)
	return bw
}

func putWriter(bw *bufio.Writer) {
	bw.Reset(nil)
	writerPool.Put(bw)
}
