package mqcoder

import "testing"

func TestBufferPutGet(t *testing.T) {
	b := NewBuffer(nil)
	for i := 0; i < 10; i++ {
		if err := b.PutByte(byte(i)); err != nil {
			t.Fatalf("PutByte(%d): %v", i, err)
		}
	}
	if b.Length() != 10 {
		t.Fatalf("Length() = %d, want 10", b.Length())
	}
	for i := 0; i < 10; i++ {
		v, err := b.GetByte(i)
		if err != nil {
			t.Fatalf("GetByte(%d): %v", i, err)
		}
		if v != byte(i) {
			t.Errorf("GetByte(%d) = %d, want %d", i, v, i)
		}
	}
}

func TestBufferGetOutOfRange(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3})
	if _, err := b.GetByte(-1); err == nil {
		t.Error("GetByte(-1) should fail")
	}
	if _, err := b.GetByte(3); err == nil {
		t.Error("GetByte(3) should fail on a 3-byte buffer")
	}
}

func TestBufferRemove(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4, 5})
	if err := b.RemoveByte(); err != nil {
		t.Fatalf("RemoveByte: %v", err)
	}
	if b.Length() != 4 {
		t.Fatalf("Length() = %d, want 4", b.Length())
	}
	if err := b.RemoveBytes(2); err != nil {
		t.Fatalf("RemoveBytes(2): %v", err)
	}
	if b.Length() != 2 {
		t.Fatalf("Length() = %d, want 2", b.Length())
	}
	if err := b.RemoveBytes(10); err == nil {
		t.Error("RemoveBytes(10) on a 2-byte buffer should fail")
	}
}

func TestNewBufferCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	b := NewBuffer(src)
	src[0] = 0xFF
	if got, _ := b.GetByte(0); got != 1 {
		t.Errorf("Buffer aliased caller's slice: GetByte(0) = %d, want 1", got)
	}
}
