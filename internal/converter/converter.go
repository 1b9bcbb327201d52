// Package converter defines the entry-point contract shared by the four
// message-type converters, plus the identifier and hashing helpers they use.
package converter

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Converter converts one raw SWIFT MT message into ISO 20022 XML text.
// Implementations are stateless per invocation and safe for concurrent use;
// on failure they return one of the converr taxonomy kinds and no XML.
type Converter interface {
	Convert(raw string) (string, error)
}

// Type identifies a source message format.
type Type string

const (
	MT103 Type = "mt103"
	MT101 Type = "mt101"
	MT102 Type = "mt102"
	MT202 Type = "mt202"
)

// MaxIDLength is the target schema's limit for message, instruction and
// end-to-end identifiers.
const MaxIDLength = 35

// ComputeInputHash returns the SHA-256 hex digest of a raw message, used for
// anonymized conversion logging so that payment data never reaches the log.
func ComputeInputHash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// NewMessageID derives a message identifier from the source transaction
// reference and a generation timestamp, truncated to the schema limit.
// Collisions across rapid successive calls are acceptable; the timestamp
// component keeps identifiers distinct across normal traffic.
func NewMessageID(ref string, now time.Time) string {
	return Truncate(Truncate(ref, 15)+"_"+now.UTC().Format("20060102150405"), MaxIDLength)
}

// NewUETR returns a unique end-to-end transaction reference.
func NewUETR() string {
	return uuid.NewString()
}

// Truncate caps s at max bytes.
func Truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
