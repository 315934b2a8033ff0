package sdp

import "fmt"

// assembler reconstructs one message from fragments sharing a key. It owns
// a buffer sized from the message length declared by the first fragment
// seen, and tracks which byte indices are still pending. Fragments may
// arrive in any order; duplicate and overlapping writes are idempotent
// (last write wins). When no indices remain pending the completion callback
// fires exactly once with the assembled buffer.
type assembler struct {
	buf        []byte
	written    []bool
	remaining  int
	done       bool
	onComplete func(data []byte)
}

func newAssembler(messageLength int, onComplete func(data []byte)) *assembler {
	return &assembler{
		buf:        make([]byte, messageLength),
		written:    make([]bool, messageLength),
		remaining:  messageLength,
		onComplete: onComplete,
	}
}

// insert copies payload into the buffer starting at offset. Offsets that
// would extend past the declared message length are rejected with
// ErrOffsetRange and leave the assembler unchanged.
func (a *assembler) insert(payload []byte, offset int) error {
	if offset < 0 || offset+len(payload) > len(a.buf) {
		return fmt.Errorf("%w: offset %d + %d bytes exceeds message length %d",
			ErrOffsetRange, offset, len(payload), len(a.buf))
	}
	for i, b := range payload {
		idx := offset + i
		a.buf[idx] = b
		if !a.written[idx] {
			a.written[idx] = true
			a.remaining--
		}
	}
	if a.remaining == 0 && !a.done {
		a.done = true
		if a.onComplete != nil {
			a.onComplete(a.buf)
		}
	}
	return nil
}

// complete reports whether every byte of the message has been written.
func (a *assembler) complete() bool {
	return a.done
}
