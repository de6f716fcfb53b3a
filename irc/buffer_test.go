package irc

import (
	"bytes"
	"testing"
)

// feed copies s into the buffer's free region, as a socket read would.
func feed(t *testing.T, b *recvBuffer, s string) {
	t.Helper()
	n := copy(b.free(), s)
	if n != len(s) {
		t.Fatalf("feed: copied %d of %d bytes", n, len(s))
	}
	b.advance(n)
}

// drain runs one split+compact pass and returns the frames as strings.
func drain(t *testing.T, b *recvBuffer) []string {
	t.Helper()
	frames, consumed, _ := b.split()
	var out []string
	for _, f := range frames {
		out = append(out, string(f))
	}
	b.compact(consumed)
	return out
}

func TestSplitTwoMessages(t *testing.T) {
	b := &recvBuffer{data: make([]byte, 64)}
	feed(t, b, "NICK a\r\nUSER b c d :e\r\n")

	got := drain(t, b)
	want := []string{"NICK a", "USER b c d :e"}
	if len(got) != len(want) {
		t.Fatalf("got %d frames %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d = %q, want %q", i, got[i], want[i])
		}
	}
	if b.off != 0 {
		t.Errorf("offset after full drain = %d, want 0", b.off)
	}
}

// TestSplitPartitionInvariance verifies that any partitioning of the
// input into reads yields the same frames in the same order.
func TestSplitPartitionInvariance(t *testing.T) {
	const input = "NICK a\r\nUSER b c d :e\r\n"
	want := []string{"NICK a", "USER b c d :e"}

	for chunk := 1; chunk <= len(input); chunk++ {
		b := &recvBuffer{data: make([]byte, 64)}
		var got []string
		for i := 0; i < len(input); i += chunk {
			end := i + chunk
			if end > len(input) {
				end = len(input)
			}
			feed(t, b, input[i:end])
			got = append(got, drain(t, b)...)
		}
		if len(got) != len(want) {
			t.Fatalf("chunk %d: got %d frames %q", chunk, len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("chunk %d: frame %d = %q, want %q", chunk, i, got[i], want[i])
			}
		}
	}
}

func TestPartialMessageRetained(t *testing.T) {
	b := &recvBuffer{data: make([]byte, 64)}

	feed(t, b, "NICK al")
	if got := drain(t, b); len(got) != 0 {
		t.Fatalf("premature frames %q", got)
	}
	if b.off != len("NICK al") {
		t.Fatalf("retained %d bytes, want %d", b.off, len("NICK al"))
	}

	feed(t, b, "ice\r\n")
	got := drain(t, b)
	if len(got) != 1 || got[0] != "NICK alice" {
		t.Fatalf("got %q, want [NICK alice]", got)
	}
}

// A boundary at the very start of the buffer must be recognized; the
// scan starts at index 0.
func TestBoundaryAtOffsetZero(t *testing.T) {
	b := &recvBuffer{data: make([]byte, 64)}
	feed(t, b, "\r\nNICK a\r\n")

	got := drain(t, b)
	if len(got) != 2 || got[0] != "" || got[1] != "NICK a" {
		t.Fatalf("got %q, want [\"\" \"NICK a\"]", got)
	}
}

func TestOverflowDropsBufferedData(t *testing.T) {
	b := &recvBuffer{data: make([]byte, 16)}
	feed(t, b, string(bytes.Repeat([]byte("a"), 16)))

	frames, consumed, overflow := b.split()
	if !overflow {
		t.Fatal("expected overflow")
	}
	if len(frames) != 0 {
		t.Fatalf("unexpected frames %q", frames)
	}
	if consumed != 16 {
		t.Fatalf("consumed = %d, want 16", consumed)
	}
	b.compact(consumed)
	if b.off != 0 {
		t.Fatalf("offset after drop = %d, want 0", b.off)
	}
	if len(b.free()) != 16 {
		t.Fatalf("free after drop = %d, want 16", len(b.free()))
	}
}

// A full buffer that does contain a terminator is not an overflow: the
// complete frames are consumed and the remainder retained.
func TestFullBufferWithTerminator(t *testing.T) {
	b := &recvBuffer{data: make([]byte, 16)}
	feed(t, b, "NICK abc\r\nUSERxx")

	frames, consumed, overflow := b.split()
	if overflow {
		t.Fatal("unexpected overflow")
	}
	if len(frames) != 1 || string(frames[0]) != "NICK abc" {
		t.Fatalf("got %q, want [NICK abc]", frames)
	}
	b.compact(consumed)
	if b.off != len("USERxx") {
		t.Fatalf("retained %d bytes, want %d", b.off, len("USERxx"))
	}
	if string(b.data[:b.off]) != "USERxx" {
		t.Fatalf("retained %q, want USERxx", b.data[:b.off])
	}
}

func TestCompactZeroRemainder(t *testing.T) {
	b := &recvBuffer{data: make([]byte, 16)}
	feed(t, b, "PING\r\n")
	_, consumed, _ := b.split()
	b.compact(consumed)
	if b.off != 0 {
		t.Fatalf("offset = %d, want 0", b.off)
	}
}
