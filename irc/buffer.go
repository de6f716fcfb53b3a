package irc

// recvBuffer accumulates raw bytes from one connection and splits them
// into CRLF-terminated frames. The backing array has a fixed capacity;
// a partial message is retained across reads, and a buffer that fills
// completely without a single terminator is dropped wholesale rather
// than grown.
type recvBuffer struct {
	data []byte // fixed-capacity backing storage
	off  int    // end of valid, unconsumed data
}

// free returns the writable tail of the buffer, for the next read.
func (b *recvBuffer) free() []byte {
	return b.data[b.off:]
}

// advance records that n bytes were read into the free region.
func (b *recvBuffer) advance(n int) {
	b.off += n
}

// split scans the buffered bytes for complete CRLF-terminated frames.
// It returns the frames in arrival order, the number of bytes they
// consumed (including terminators), and whether the buffer was full
// with no terminator at all, in which case everything buffered is
// counted as consumed so the caller's compact drops it.
//
// The returned frames alias the buffer and are only valid until the
// next compact or advance; consumers must copy what they keep.
func (b *recvBuffer) split() (frames [][]byte, consumed int, overflow bool) {
	start := 0
	for i := 0; i+1 < b.off; i++ {
		if b.data[i] == '\r' && b.data[i+1] == '\n' {
			frames = append(frames, b.data[start:i])
			start = i + 2
			i++
		}
	}
	if start == 0 && b.off == len(b.data) {
		return nil, b.off, true
	}
	return frames, start, false
}

// compact discards the first consumed bytes, moving any unconsumed
// remainder to the front of the buffer. A zero-length remainder is a
// no-op move.
func (b *recvBuffer) compact(consumed int) {
	b.off = copy(b.data, b.data[consumed:b.off])
}
