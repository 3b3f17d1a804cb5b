package bitbuf

import (
	"errors"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	pattern := []struct {
		value uint64
		width int
	}{
		{0x0, 1},
		{0x1, 1},
		{0x7, 3},
		{0xa5, 8},
		{0x3ff, 10},
		{0xdeadbeef, 32},
	}

	for _, p := range pattern {
		bb := NewAutoExpand(0)
		if err := bb.WriteBits(p.value, p.width); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		bb.Seek(0)
		got, ok := bb.ReadBits(p.width)
		if !ok {
			t.Fatalf("read failed for width %d", p.width)
		}
		if got != p.value {
			t.Errorf("width=%d: expect 0x%x, got 0x%x", p.width, p.value, got)
		}
	}
}

func TestPeekBitsInsufficientLeavesCursor(t *testing.T) {
	bb := FromBitString("101")
	_, ok := bb.PeekBits(4)
	if ok {
		t.Fatalf("expected insufficient-bits failure")
	}
	if bb.Cursor() != 0 {
		t.Errorf("cursor must be unchanged on failed peek, got %d", bb.Cursor())
	}
}

func TestReadPastEndFails(t *testing.T) {
	bb := FromBitString("1")
	_, ok := bb.ReadBits(2)
	if ok {
		t.Fatalf("expected read past end to fail")
	}
	if bb.Cursor() != 0 {
		t.Errorf("failed read must not advance cursor")
	}
}

func TestFixedBufferNoSpace(t *testing.T) {
	bb := New(4)
	if err := bb.WriteBits(0xf, 4); err != nil {
		t.Fatalf("unexpected error writing within bounds: %v", err)
	}
	err := bb.WriteBits(0x1, 1)
	if !errors.Is(err, ErrNoSpace) {
		t.Errorf("expected ErrNoSpace, got %v", err)
	}
}

func TestAutoExpandNeverNoSpace(t *testing.T) {
	bb := NewAutoExpand(0)
	for i := 0; i < 100; i++ {
		if err := bb.WriteBits(1, 1); err != nil {
			t.Fatalf("auto-expand buffer must not fail within the length cap: %v", err)
		}
	}
}

func TestAutoExpandLengthOverflow(t *testing.T) {
	bb := NewAutoExpand(MaxTLSDULenBits)
	bb.Seek(MaxTLSDULenBits)
	err := bb.WriteBits(1, 1)
	if !errors.Is(err, ErrLengthOverflow) {
		t.Errorf("expected ErrLengthOverflow past N251_BL_MAX_TLSDU_LEN_BITS, got %v", err)
	}
}

func TestDumpBinRoundTrip(t *testing.T) {
	s := "1101001"
	bb := FromBitString(s)
	if bb.DumpBin() != s {
		t.Errorf("expect %s, got %s", s, bb.DumpBin())
	}
}

func TestBytesPacksMSBFirst(t *testing.T) {
	bb := FromBitString("10000001")
	b := bb.Bytes()
	if len(b) != 1 || b[0] != 0x81 {
		t.Errorf("expect [0x81], got %v", b)
	}
}
