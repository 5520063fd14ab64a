package bech32

import (
	"bytes"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	payload := []byte("01234567890123456789")

	enc, err := Encode("tio", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	hrp, dec, err := Decode(string(enc))
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if hrp != "tio" {
		t.Fatalf("unexpected human readable part: %q", hrp)
	}
	if !bytes.Equal(payload, dec) {
		t.Fatalf("payload mangled: %X", dec)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode("this is not bech32"); err == nil {
		t.Fatal("decoding garbage must fail")
	}
}
