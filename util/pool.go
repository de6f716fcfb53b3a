package util

import "sync"

// RecvBufSize is the per-connection receive buffer capacity. A message
// that does not terminate within one buffer is dropped, so this also
// bounds the longest accepted protocol line.
const RecvBufSize = 1024

// recvBufPool recycles per-connection receive buffers, reducing GC
// pressure when connections churn.
var recvBufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, RecvBufSize)
		return &buf
	},
}

// GetRecvBuf retrieves a receive buffer from the pool. Callers must
// return it with [PutRecvBuf] when the connection loop exits.
func GetRecvBuf() *[]byte {
	return recvBufPool.Get().(*[]byte)
}

// PutRecvBuf returns a buffer to the pool for reuse.
func PutRecvBuf(buf *[]byte) {
	if buf == nil {
		return
	}
	recvBufPool.Put(buf)
}
