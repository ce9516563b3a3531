package sentinel

import (
	"database/sql/driver"
	"fmt"
	"reflect"
)

// Option is an optional wrapper whose sentinel is absence. Presence is
// never sentinel at the Option level, even when the wrapped value is its
// own type's sentinel: Some(Int64(0)) is a deliberately supplied zero, not
// an unset field. Option's sentinel-ness is therefore independent of T's.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Sentinel returns the absent Option.
func (Option[T]) Sentinel() Option[T] { return Option[T]{} }

// IsSentinel reports whether the Option is absent.
func (o Option[T]) IsSentinel() bool { return !o.present }

// Present reports whether the Option holds a value.
func (o Option[T]) Present() bool { return o.present }

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOr returns the held value, or fallback when absent.
func (o Option[T]) GetOr(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
// Useful for binding nullable columns in query arguments.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// Value implements driver.Valuer. An absent Option binds as NULL; a present
// one binds its held value, converting defined types (such as Int64 or
// String from this package) through their underlying kind.
func (o Option[T]) Value() (driver.Value, error) {
	if !o.present {
		return nil, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(o.value)
}

// Scan implements sql.Scanner. NULL scans to the absent Option; any other
// source must be convertible to T.
func (o *Option[T]) Scan(src any) error {
	if src == nil {
		*o = Option[T]{}
		return nil
	}
	if v, ok := src.(T); ok {
		*o = Some(v)
		return nil
	}
	rv := reflect.ValueOf(src)
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if !rv.Type().ConvertibleTo(rt) {
		return fmt.Errorf("sentinel: cannot scan %T into Option[%s]", src, rt)
	}
	*o = Some(rv.Convert(rt).Interface().(T))
	return nil
}
