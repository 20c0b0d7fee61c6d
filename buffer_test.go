package tui

import "testing"

func TestBufferSetString(t *testing.T) {
	buf := NewBuffer(10, 2)
	buf.SetString(0, 0, "hello", NewStyle())
	buf.SetString(2, 1, "hi", NewStyle())

	if got := buf.StringTrimmed(); got != "hello\n  hi" {
		t.Errorf("buffer content = %q", got)
	}
}

func TestBufferWideRuneContinuation(t *testing.T) {
	buf := NewBuffer(10, 1)
	buf.SetString(0, 0, "a你b", NewStyle())

	if got := buf.Cell(0, 0).Rune; got != 'a' {
		t.Errorf("cell 0 = %q", got)
	}
	if got := buf.Cell(1, 0); got.Rune != '你' || got.Width != 2 {
		t.Errorf("cell 1 = %+v, want wide 你", got)
	}
	if !buf.Cell(2, 0).IsContinuation() {
		t.Errorf("cell 2 = %+v, want continuation", buf.Cell(2, 0))
	}
	if got := buf.Cell(3, 0).Rune; got != 'b' {
		t.Errorf("cell 3 = %q", got)
	}
}

func TestBufferOverwriteWideClearsBothHalves(t *testing.T) {
	buf := NewBuffer(10, 1)
	buf.SetRune(0, 0, '你', NewStyle())

	// Overwriting the continuation half clears the leading half too.
	buf.SetRune(1, 0, 'x', NewStyle())

	if got := buf.Cell(0, 0).Rune; got != ' ' {
		t.Errorf("cell 0 = %q, want space", got)
	}
	if got := buf.Cell(1, 0).Rune; got != 'x' {
		t.Errorf("cell 1 = %q, want x", got)
	}
}

func TestBufferWideRuneAtRightEdge(t *testing.T) {
	buf := NewBuffer(4, 1)
	buf.SetRune(3, 0, '你', NewStyle())

	// No room for the continuation cell; a space goes in instead.
	if got := buf.Cell(3, 0).Rune; got != ' ' {
		t.Errorf("cell 3 = %q, want space", got)
	}
}

func TestBufferDiff(t *testing.T) {
	buf := NewBuffer(5, 2)
	buf.Swap() // front == back

	buf.SetString(1, 0, "ab", NewStyle())
	changes := buf.Diff()

	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2: %+v", len(changes), changes)
	}
	if changes[0].X != 1 || changes[0].Y != 0 || changes[0].Cell.Rune != 'a' {
		t.Errorf("first change = %+v", changes[0])
	}
	if changes[1].X != 2 || changes[1].Y != 0 || changes[1].Cell.Rune != 'b' {
		t.Errorf("second change = %+v", changes[1])
	}

	buf.Swap()
	if got := len(buf.Diff()); got != 0 {
		t.Errorf("diff after swap has %d changes, want 0", got)
	}
}

func TestBufferDiffIsRowMajor(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.Swap()

	buf.SetRune(2, 2, 'z', NewStyle())
	buf.SetRune(0, 0, 'a', NewStyle())
	buf.SetRune(1, 1, 'm', NewStyle())

	changes := buf.Diff()
	for i := 1; i < len(changes); i++ {
		prev, cur := changes[i-1], changes[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X < prev.X) {
			t.Fatalf("changes out of row-major order: %+v", changes)
		}
	}
}

func TestBufferResizeForcesRepaint(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.SetString(0, 0, "hi", NewStyle())
	buf.Swap()

	buf.Resize(6, 3)
	if buf.Width() != 6 || buf.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", buf.Width(), buf.Height())
	}

	// Both buffers are blank after resize; rewriting the same content
	// must produce changes (nothing is remembered from before).
	buf.SetString(0, 0, "hi", NewStyle())
	if got := len(buf.Diff()); got != 2 {
		t.Errorf("diff after resize has %d changes, want 2", got)
	}
}

func TestBufferSetStringClipped(t *testing.T) {
	buf := NewBuffer(10, 1)
	clip := NewRect(2, 0, 3, 1)
	buf.SetStringClipped(0, 0, "abcdefgh", NewStyle(), clip)

	if got := buf.StringTrimmed(); got != "  cde" {
		t.Errorf("clipped write produced %q, want %q", got, "  cde")
	}
}

func TestBufferClearRect(t *testing.T) {
	buf := NewBuffer(6, 1)
	buf.SetString(0, 0, "abcdef", NewStyle())
	buf.ClearRect(NewRect(2, 0, 2, 1))

	if got := buf.StringTrimmed(); got != "ab  ef" {
		t.Errorf("content after clear = %q, want %q", got, "ab  ef")
	}
}

func TestBufferOutOfBoundsWritesDropped(t *testing.T) {
	buf := NewBuffer(3, 1)
	buf.SetRune(-1, 0, 'x', NewStyle())
	buf.SetRune(3, 0, 'x', NewStyle())
	buf.SetRune(0, 1, 'x', NewStyle())

	if got := buf.StringTrimmed(); got != "" {
		t.Errorf("out-of-bounds writes landed: %q", got)
	}
}
