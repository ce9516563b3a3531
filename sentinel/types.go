package sentinel

import (
	"time"

	"github.com/google/uuid"
)

// Int is an int whose sentinel is zero.
type Int int

// Sentinel returns 0.
func (Int) Sentinel() Int { return 0 }

// IsSentinel reports whether the value is zero.
func (i Int) IsSentinel() bool { return i == 0 }

// Int16 is an int16 whose sentinel is zero.
type Int16 int16

// Sentinel returns 0.
func (Int16) Sentinel() Int16 { return 0 }

// IsSentinel reports whether the value is zero.
func (i Int16) IsSentinel() bool { return i == 0 }

// Int32 is an int32 whose sentinel is zero.
type Int32 int32

// Sentinel returns 0.
func (Int32) Sentinel() Int32 { return 0 }

// IsSentinel reports whether the value is zero.
func (i Int32) IsSentinel() bool { return i == 0 }

// Int64 is an int64 whose sentinel is zero. This is the usual type for
// auto-increment foreign-key fields.
type Int64 int64

// Sentinel returns 0.
func (Int64) Sentinel() Int64 { return 0 }

// IsSentinel reports whether the value is zero.
func (i Int64) IsSentinel() bool { return i == 0 }

// Uint32 is a uint32 whose sentinel is zero.
type Uint32 uint32

// Sentinel returns 0.
func (Uint32) Sentinel() Uint32 { return 0 }

// IsSentinel reports whether the value is zero.
func (u Uint32) IsSentinel() bool { return u == 0 }

// Uint64 is a uint64 whose sentinel is zero.
type Uint64 uint64

// Sentinel returns 0.
func (Uint64) Sentinel() Uint64 { return 0 }

// IsSentinel reports whether the value is zero.
func (u Uint64) IsSentinel() bool { return u == 0 }

// String is a string whose sentinel is the empty string.
type String string

// Sentinel returns "".
func (String) Sentinel() String { return "" }

// IsSentinel reports whether the string is empty.
func (s String) IsSentinel() bool { return s == "" }

// UUID is a uuid.UUID whose sentinel is the nil UUID.
type UUID uuid.UUID

// Sentinel returns the nil UUID.
func (UUID) Sentinel() UUID { return UUID(uuid.Nil) }

// IsSentinel reports whether the value is the nil UUID.
func (u UUID) IsSentinel() bool { return uuid.UUID(u) == uuid.Nil }

// String returns the canonical textual form of the UUID.
func (u UUID) String() string { return uuid.UUID(u).String() }

// Time is a time.Time whose sentinel is the zero time.
type Time time.Time

// Sentinel returns the zero time.
func (Time) Sentinel() Time { return Time(time.Time{}) }

// IsSentinel reports whether the value is the zero time.
func (t Time) IsSentinel() bool { return time.Time(t).IsZero() }
