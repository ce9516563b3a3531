package sentinel_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/syssam/factory/sentinel"
)

// legacyID reserves -1 as its marker, leaving zero usable as a real key.
type legacyID int64

func (legacyID) Sentinel() legacyID  { return -1 }
func (id legacyID) IsSentinel() bool { return id == -1 }

// TestSentinelLaw verifies the contract law for every built-in type:
// the constructed sentinel must always be recognized by the predicate.
func TestSentinelLaw(t *testing.T) {
	t.Parallel()

	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Int]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Int16]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Int32]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Int64]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Uint32]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Uint64]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.String]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.UUID]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Time]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Option[int64]]()))
	assert.True(t, sentinel.Is(sentinel.Of[sentinel.Option[string]]()))

	// The law must hold for custom markers too, even when the sentinel
	// differs from the type's zero value.
	assert.True(t, sentinel.Is(sentinel.Of[legacyID]()))
}

func TestIntegerSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    sentinel.Int64
		sentinel bool
	}{
		{"zero", 0, true},
		{"one", 1, false},
		{"negative", -1, false},
		{"typical id", 42, false},
		{"max", math.MaxInt64, false},
		{"min", math.MinInt64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sentinel, tt.value.IsSentinel())
		})
	}

	assert.True(t, sentinel.Int(0).IsSentinel())
	assert.False(t, sentinel.Int(7).IsSentinel())
	assert.True(t, sentinel.Int16(0).IsSentinel())
	assert.False(t, sentinel.Int16(-3).IsSentinel())
	assert.True(t, sentinel.Int32(0).IsSentinel())
	assert.False(t, sentinel.Int32(1).IsSentinel())
	assert.True(t, sentinel.Uint32(0).IsSentinel())
	assert.False(t, sentinel.Uint32(1).IsSentinel())
	assert.True(t, sentinel.Uint64(0).IsSentinel())
	assert.False(t, sentinel.Uint64(math.MaxUint64).IsSentinel())
}

func TestStringSentinel(t *testing.T) {
	t.Parallel()

	assert.True(t, sentinel.String("").IsSentinel())
	assert.False(t, sentinel.String("a").IsSentinel())
	assert.False(t, sentinel.String(" ").IsSentinel())
	assert.False(t, sentinel.String("0").IsSentinel())
}

func TestUUIDSentinel(t *testing.T) {
	t.Parallel()

	assert.True(t, sentinel.UUID(uuid.Nil).IsSentinel())
	assert.False(t, sentinel.UUID(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")).IsSentinel())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", sentinel.Of[sentinel.UUID]().String())
}

func TestTimeSentinel(t *testing.T) {
	t.Parallel()

	assert.True(t, sentinel.Time(time.Time{}).IsSentinel())
	assert.False(t, sentinel.Time(time.Now()).IsSentinel())
	assert.False(t, sentinel.Time(time.Unix(0, 0)).IsSentinel())
}

func TestCustomSentinel(t *testing.T) {
	t.Parallel()

	// Zero is a real key for this type; only -1 marks "unset".
	assert.True(t, legacyID(-1).IsSentinel())
	assert.False(t, legacyID(0).IsSentinel())
	assert.False(t, legacyID(1).IsSentinel())
	assert.Equal(t, legacyID(-1), sentinel.Of[legacyID]())
}
