package encoding

import (
	"strings"
	"testing"
)

func sample() Params {
	return Params{
		"id":   int64(12345),
		"name": "test-file.txt",
		"flag": true,
	}
}

func TestNewEncoder(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	_, err := NewEncoder([]byte("short"))
	if err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}

	_, err = NewEncoder([]byte("this-is-a-32-byte-key-for-aes!!!"))
	if err != nil {
		t.Fatalf("NewEncoder with 32-byte key failed: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	for _, sensitive := range []bool{false, true} {
		encoded, err := enc.Encode(sample(), sensitive)
		if err != nil {
			t.Fatalf("Encode(sensitive=%v) failed: %v", sensitive, err)
		}
		if sensitive == strings.Contains(encoded, ".") {
			t.Errorf("Encode(sensitive=%v) = %q, signed output has a dot and encrypted output does not", sensitive, encoded)
		}

		decoded, err := enc.Decode(encoded, sensitive)
		if err != nil {
			t.Fatalf("Decode(sensitive=%v) failed: %v", sensitive, err)
		}
		if decoded.Int("id") != 12345 {
			t.Errorf("id = %d, want 12345", decoded.Int("id"))
		}
		if decoded.String("name") != "test-file.txt" {
			t.Errorf("name = %q, want test-file.txt", decoded.String("name"))
		}
		if !decoded.Bool("flag") {
			t.Error("flag = false, want true")
		}
	}
}

func TestSignedEncodingIsStable(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	a, _ := enc.Encode(Params{"a": 1, "b": "x", "c": true}, false)
	b, _ := enc.Encode(Params{"c": true, "b": "x", "a": 1}, false)
	if a != b {
		t.Errorf("Encode() = %q and %q, want equal output for equal params", a, b)
	}
}

func TestSignatureVerificationFailure(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	encoded, err := enc.Encode(Params{"id": 123}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	payload, _, _ := strings.Cut(encoded, ".")
	tampered := payload + ".AAAAAAAAAAAAAAAAAAAAAA"

	_, err = enc.Decode(tampered, false)
	if err != ErrSignatureInvalid {
		t.Errorf("Decode(tampered) error = %v, want %v", err, ErrSignatureInvalid)
	}
}

func TestDecryptionFailure(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	encoded, err := enc.Encode(Params{"id": 123}, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	other, _ := NewEncoder([]byte("other-key"))
	_, err = other.Decode(encoded, true)
	if err != ErrDecryptFailed {
		t.Errorf("Decode() with wrong key error = %v, want %v", err, ErrDecryptFailed)
	}
}

func TestInvalidFormat(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	tests := []struct {
		name      string
		input     string
		sensitive bool
	}{
		{"missing separator", "invalidbase64withoutseparator", false},
		{"bad base64 payload", "!!!.AAAA", false},
		{"short ciphertext", "AAAA", true},
		{"bad base64 ciphertext", "!!!", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Decode(tt.input, tt.sensitive)
			if err != ErrInvalidFormat {
				t.Errorf("Decode(%q) error = %v, want %v", tt.input, err, ErrInvalidFormat)
			}
		})
	}
}

func TestDifferentKeysCannotDecode(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	encoded, err := enc1.Encode(Params{"id": 123}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := enc2.Decode(encoded, false); err == nil {
		t.Error("Expected error when decoding with different key")
	}
}

func TestEmptyParams(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	encoded, err := enc.Encode(nil, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := enc.Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("Decode() = %v, want empty params", decoded)
	}
}

func TestParamsAccessors(t *testing.T) {
	p := Params{"n": float64(3), "s": 7, "b": "yes"}
	if p.Int("n") != 3 {
		t.Errorf("Int(n) = %d, want 3", p.Int("n"))
	}
	if p.String("s") != "7" {
		t.Errorf("String(s) = %q, want 7", p.String("s"))
	}
	if p.Bool("b") {
		t.Error("Bool(b) = true, want false for a non-bool")
	}
	if p.Int("missing") != 0 || p.String("missing") != "" {
		t.Error("missing keys should give zero values")
	}
}
