// Package sentinel defines the per-type "unset value" contract used by
// factory build steps to decide whether a field needs auto-resolution.
//
// A type joins the contract by designating exactly one distinguished value,
// its sentinel, meaning "no explicit value was supplied". Build steps test
// foreign-key fields against their sentinel and auto-create the dependency
// when it holds. The contract's one law is that the constructed sentinel is
// always recognized by the predicate:
//
//	sentinel.Is(sentinel.Of[T]()) == true
//
// The package ships implementations for the common cases: integer types
// with zero as the sentinel, String with the empty string, UUID with the
// nil UUID, Time with the zero time, and the generic Option wrapper with
// absence. Zero and empty-string are conventions, not enforced rules —
// database identifiers usually start at 1, so zero is rarely a real key.
// A schema where zero is a valid key should use its own wrapper type with
// a different marker:
//
//	// reserves -1 instead of 0
//	type LegacyID int64
//
//	func (LegacyID) Sentinel() LegacyID  { return -1 }
//	func (id LegacyID) IsSentinel() bool { return id == -1 }
package sentinel

// Value is the sentinel contract. T is always the implementing type
// itself: a type declares its own unset marker and the predicate that
// recognizes it.
type Value[T any] interface {
	// Sentinel returns the type's designated unset value. It must be pure,
	// must not depend on the receiver, and must be callable on the zero
	// value of the type.
	Sentinel() T

	// IsSentinel reports whether the receiver is the type's unset value.
	IsSentinel() bool
}

// Of returns T's designated sentinel value.
func Of[T Value[T]]() T {
	var v T
	return v.Sentinel()
}

// Is reports whether v is its type's sentinel.
func Is[T Value[T]](v T) bool {
	return v.IsSentinel()
}
