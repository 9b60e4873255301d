package principal_test

import (
	"bytes"
	"testing"

	"agentid/internal/principal"
)

func TestString_ManagementVector(t *testing.T) {
	// The zero-byte principal has the well-known text form.
	p := principal.FromBytes(nil)
	if got := p.String(); got != "aaaaa-aa" {
		t.Fatalf("want aaaaa-aa, got %q", got)
	}
}

func TestString_AnonymousVector(t *testing.T) {
	if got := principal.Anonymous().String(); got != "2vxsx-fae" {
		t.Fatalf("want 2vxsx-fae, got %q", got)
	}
}

func TestFromText_RoundTrip(t *testing.T) {
	for _, raw := range [][]byte{
		nil,
		{0x04},
		{0xab, 0xcd, 0xef, 0x01, 0x23},
		bytes.Repeat([]byte{0x7f}, 29),
	} {
		p := principal.FromBytes(raw)
		parsed, err := principal.FromText(p.String())
		if err != nil {
			t.Fatalf("FromText(%q): %v", p.String(), err)
		}
		if !bytes.Equal(parsed.Bytes(), raw) {
			t.Fatalf("round trip changed bytes for %q", p.String())
		}
	}
}

func TestFromText_Rejects(t *testing.T) {
	for _, text := range []string{
		"",
		"baaaa-aa",   // checksum mismatch
		"AAAAA-AA",   // not canonical (uppercase)
		"aaaaaaa",    // not canonical (missing grouping)
		"!!invalid!", // not base32
	} {
		if _, err := principal.FromText(text); err == nil {
			t.Fatalf("FromText(%q): want error", text)
		}
	}
}

func TestSelfAuthenticating(t *testing.T) {
	der := bytes.Repeat([]byte{0x2a}, 44)
	p := principal.SelfAuthenticating(der)

	raw := p.Bytes()
	if len(raw) != 29 {
		t.Fatalf("want 29 raw bytes, got %d", len(raw))
	}
	if raw[len(raw)-1] != 0x02 {
		t.Fatal("missing self-authenticating tag byte")
	}

	parsed, err := principal.FromText(p.String())
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if !bytes.Equal(parsed.Bytes(), raw) {
		t.Fatal("text round trip changed bytes")
	}

	// Same key, same principal; different key, different principal.
	if principal.SelfAuthenticating(der) != p {
		t.Fatal("derivation is not deterministic")
	}
	other := principal.SelfAuthenticating(bytes.Repeat([]byte{0x2b}, 44))
	if other == p {
		t.Fatal("distinct keys produced the same principal")
	}
}
