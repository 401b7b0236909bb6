// Package binkey converts record identifiers between their canonical
// hyphenated text form and the 16-byte binary form used for storage.
package binkey

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// canonicalLen is the length of the 8-4-4-4-12 hyphenated text form.
const canonicalLen = 36

// ErrInvalidFormat is returned when a value is not a canonical identifier.
var ErrInvalidFormat = errors.New("invalid identifier format")

// Key is a 16-byte record identifier. The zero value is the nil identifier.
type Key [16]byte

// Nil is the zero Key.
var Nil Key

// New returns a fresh random identifier.
func New() Key {
	return Key(uuid.New())
}

// Parse converts the canonical 36-character form into a Key.
// Braced, URN and unhyphenated variants are rejected.
func Parse(s string) (Key, error) {
	if len(s) != canonicalLen {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return Key(u), nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests and constants.
func MustParse(s string) Key {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// FromBytes builds a Key from its raw 16-byte form.
func FromBytes(b []byte) (Key, error) {
	if len(b) != len(Nil) {
		return Nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidFormat, len(Nil), len(b))
	}
	var k Key
	copy(k[:], b)
	return k, nil
}

// String returns the lowercase canonical form.
func (k Key) String() string {
	return uuid.UUID(k).String()
}

// Bytes returns a copy of the raw 16 bytes.
func (k Key) Bytes() []byte {
	b := make([]byte, len(k))
	copy(b, k[:])
	return b
}

// IsNil reports whether k is the zero identifier.
func (k Key) IsNil() bool {
	return k == Nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UUIDValue lets pgx bind a Key to a uuid column.
func (k Key) UUIDValue() (pgtype.UUID, error) {
	return pgtype.UUID{Bytes: k, Valid: true}, nil
}

// ScanUUID lets pgx scan a uuid column into a Key. NULL scans as Nil.
func (k *Key) ScanUUID(v pgtype.UUID) error {
	if !v.Valid {
		*k = Nil
		return nil
	}
	*k = Key(v.Bytes)
	return nil
}

// Scan implements sql.Scanner. It accepts raw bytes, canonical text and Keys.
func (k *Key) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*k = Nil
		return nil
	case Key:
		*k = v
		return nil
	case [16]byte:
		*k = Key(v)
		return nil
	case []byte:
		if len(v) == len(Nil) {
			copy(k[:], v)
			return nil
		}
		return k.UnmarshalText(v)
	case string:
		return k.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidFormat, src)
	}
}

// ParseAll converts a list of canonical identifiers, failing on the first malformed one.
func ParseAll(values []string) ([]Key, error) {
	keys := make([]Key, 0, len(values))
	for _, v := range values {
		k, err := Parse(v)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
