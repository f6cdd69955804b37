// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrInvalidFingerprint indicates a fingerprint string that is not a SHA-256 digest.
var ErrInvalidFingerprint = errors.New("x509certs: invalid fingerprint")

// Fingerprint is the SHA-256 digest of a certificate's DER encoding.
type Fingerprint [sha256.Size]byte

// fingerprintLexer splits input into hex pairs and single separators.
// Anything else, including a dangling hex digit, is a lex error.
var fingerprintLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Pair", Pattern: `[0-9A-Fa-f]{2}`},
	{Name: "Sep", Pattern: `[: -]`},
})

// fingerprintGrammar:
//
//	fingerprint := PAIR ( SEP? PAIR )*
//
// Whether the separators agree is checked after parsing.
type fingerprintGrammar struct {
	First string        `parser:"@Pair"`
	Rest  []pairGrammar `parser:"@@*"`
}

type pairGrammar struct {
	Sep  string `parser:"@Sep?"`
	Pair string `parser:"@Pair"`
}

var fingerprintParser = participle.MustBuild[fingerprintGrammar](
	participle.Lexer(fingerprintLexer),
)

// joined concatenates the parsed pairs after checking that every pair uses
// the same separator as the first, or none at all.
func (g *fingerprintGrammar) joined() (string, error) {
	if n := 1 + len(g.Rest); n != sha256.Size {
		return "", fmt.Errorf("got %d octets, want %d", n, sha256.Size)
	}

	var b strings.Builder
	b.WriteString(g.First)
	sep := g.Rest[0].Sep
	for _, p := range g.Rest {
		if p.Sep != sep {
			return "", fmt.Errorf("separator %q after %q separators", p.Sep, sep)
		}
		b.WriteString(p.Pair)
	}
	return b.String(), nil
}

// FingerprintOf computes the SHA-256 fingerprint of cert.
func FingerprintOf(cert *x509.Certificate) Fingerprint {
	return Fingerprint(sha256.Sum256(cert.Raw))
}

// ParseFingerprint reads a fingerprint written either as 64 raw hex chars
// ("d7a7a0fb...") or as 32 hex pairs with one consistent separator
// ("D7:A7:A0:FB:...", "d7-a7-...", "d7 a7 ...").
func ParseFingerprint(input string) (Fingerprint, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Fingerprint{}, fmt.Errorf("%w: empty", ErrInvalidFingerprint)
	}

	g, err := fingerprintParser.ParseString("", input)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("%w: %v", ErrInvalidFingerprint, err)
	}
	hexStr, err := g.joined()
	if err != nil {
		return Fingerprint{}, fmt.Errorf("%w: %v", ErrInvalidFingerprint, err)
	}

	var f Fingerprint
	if _, err := hex.Decode(f[:], []byte(hexStr)); err != nil {
		return Fingerprint{}, fmt.Errorf("%w: %v", ErrInvalidFingerprint, err)
	}
	return f, nil
}

// String returns the canonical "AA:BB:CC:..." form.
func (f Fingerprint) String() string {
	parts := make([]string, len(f))
	for i, b := range f {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}

// Truncate returns the first octets of the fingerprint followed by "...".
func (f Fingerprint) Truncate(octets int) string {
	if octets <= 0 {
		return ""
	}
	if octets >= len(f) {
		return f.String()
	}
	return strings.Join(strings.Split(f.String(), ":")[:octets], ":") + "..."
}
