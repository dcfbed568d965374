package row

import "testing"

func TestSizeConstant(t *testing.T) {
	if Size != 293 {
		t.Fatalf("Size = %d; want 293", Size)
	}
}

func TestRoundTrip(t *testing.T) {
	r, err := New(7, "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf := make([]byte, Size)
	if err := Serialize(r, buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := Deserialize(buf)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got != r {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, r)
	}
}

func TestSerializeZeroPadsTrailingBytes(t *testing.T) {
	r, _ := New(1, "a", "b")
	buf := make([]byte, Size)
	for i := range buf {
		buf[i] = 0xFF
	}
	if err := Serialize(r, buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	for i, b := range buf {
		if i == idOffset+0 {
			continue // low byte of id == 1
		}
		if i >= usernameOffset+1 && i < usernameOffset+usernameFieldSize && b != 0 {
			t.Fatalf("byte %d not zero-padded: %#x", i, b)
		}
		if i >= emailOffset+1 && i < emailOffset+emailFieldSize && b != 0 {
			t.Fatalf("byte %d not zero-padded: %#x", i, b)
		}
	}
}

func TestNewRejectsOverlongFields(t *testing.T) {
	long33 := make([]byte, UsernameMaxLen+1)
	for i := range long33 {
		long33[i] = 'x'
	}
	if _, err := New(1, string(long33), "a@b.com"); err == nil {
		t.Fatal("expected error for username over max length")
	}

	long256 := make([]byte, EmailMaxLen+1)
	for i := range long256 {
		long256[i] = 'x'
	}
	if _, err := New(1, "bob", string(long256)); err == nil {
		t.Fatal("expected error for email over max length")
	}
}

func TestSerializeRejectsWrongBufferSize(t *testing.T) {
	r, _ := New(1, "a", "b")
	if err := Serialize(r, make([]byte, Size-1)); err == nil {
		t.Fatal("expected error for undersized buffer")
	}
}

func TestBoundaryLengthsAccepted(t *testing.T) {
	u := make([]byte, UsernameMaxLen)
	for i := range u {
		u[i] = 'u'
	}
	e := make([]byte, EmailMaxLen)
	for i := range e {
		e[i] = 'e'
	}
	r, err := New(1, string(u), string(e))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf := make([]byte, Size)
	if err := Serialize(r, buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := Deserialize(buf)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got != r {
		t.Fatalf("boundary round trip mismatch")
	}
}
