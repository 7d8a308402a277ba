package tuiotime

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomNormalized returns n normalized values with seconds in [-span, span].
func randomNormalized(r *rand.Rand, n int, span int64) []Time {
	out := make([]Time, n)
	for i := range out {
		out[i] = New(r.Int64N(2*span+1)-span, r.Int64N(MicrosPerSecond))
	}
	return out
}

func TestNew_StoresFieldsVerbatim(t *testing.T) {
	tv := New(-3, 2_500_000)
	assert.Equal(t, int64(-3), tv.Seconds())
	assert.Equal(t, int64(2_500_000), tv.Microseconds())
	assert.False(t, tv.IsNormalized())
}

func TestFromSnapshot(t *testing.T) {
	tv := FromSnapshot(Reading{Sec: 3_913_000_000, Usec: 42})
	assert.Equal(t, New(3_913_000_000, 42), tv)
}

func TestAdd_Carry(t *testing.T) {
	got := New(1, 900_000).Add(New(2, 300_000))
	assert.Equal(t, New(4, 200_000), got)
}

func TestSub_Borrow(t *testing.T) {
	got := New(5, 200_000).Sub(New(3, 400_000))
	assert.Equal(t, New(1, 800_000), got)
}

func TestSub_NegativeResult(t *testing.T) {
	got := New(3, 400_000).Sub(New(5, 200_000))
	assert.Equal(t, New(-2, 200_000), got)
	assert.True(t, got.IsNormalized())
}

func TestValueArithmetic_Normalizes(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	as := randomNormalized(r, 200, 1_000_000)
	bs := randomNormalized(r, 200, 1_000_000)

	for i := range as {
		sum := as[i].Add(bs[i])
		diff := as[i].Sub(bs[i])
		assert.True(t, sum.IsNormalized(), "%v + %v = %v", as[i], bs[i], sum)
		assert.True(t, diff.IsNormalized(), "%v - %v = %v", as[i], bs[i], diff)
	}
}

func TestAddSub_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	as := randomNormalized(r, 200, 1_000_000)
	bs := randomNormalized(r, 200, 1_000_000)

	for i := range as {
		got := as[i].Add(bs[i]).Sub(bs[i])
		assert.True(t, got.Equal(as[i]), "(%v + %v) - %v = %v", as[i], bs[i], bs[i], got)
	}
}

func TestAddMicros(t *testing.T) {
	tests := []struct {
		name  string
		base  Time
		delta int64
		want  Time
	}{
		{"zero", New(5, 200_000), 0, New(5, 200_000)},
		{"fraction only", New(5, 200_000), 300_000, New(5, 500_000)},
		{"whole seconds", New(5, 200_000), 3_000_000, New(8, 200_000)},
		{"mixed", New(5, 200_000), 1_250_000, New(6, 450_000)},
		// Delta path does not re-normalize.
		{"negative delta leaves negative fraction", New(5, 0), -1, New(5, -1)},
		{"negative mixed delta", New(5, 200_000), -1_500_000, New(4, -300_000)},
		{"fraction overflow is not carried", New(1, 900_000), 200_000, New(1, 1_100_000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.AddMicros(tt.delta))
		})
	}
}

func TestAddMicros_MatchesAddWithoutCarry(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 200; i++ {
		n := r.Int64N(50 * MicrosPerSecond)
		// Keep the fraction sum below one second so neither path carries.
		a := New(r.Int64N(1000), r.Int64N(MicrosPerSecond-n%MicrosPerSecond))

		byDelta := a.AddMicros(n)
		byValue := a.Add(New(n/MicrosPerSecond, n%MicrosPerSecond))
		assert.True(t, byDelta.Equal(byValue), "a=%v n=%d: %v != %v", a, n, byDelta, byValue)
	}
}

func TestSubMicros(t *testing.T) {
	tests := []struct {
		name  string
		base  Time
		delta int64
		want  Time
	}{
		{"zero", New(5, 200_000), 0, New(5, 200_000)},
		{"no borrow", New(5, 200_000), 100_000, New(5, 100_000)},
		{"borrow", New(5, 200_000), 1_500_000, New(3, 700_000)},
		{"exact second", New(5, 0), 1_000_000, New(4, 0)},
		{"negative delta adds", New(5, 200_000), -1_500_000, New(6, 700_000)},
		// Only a single borrow is applied, never a carry.
		{"negative delta fraction overflow", New(5, 200_000), -900_000, New(5, 1_100_000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.SubMicros(tt.delta))
		})
	}
}

func TestEqual(t *testing.T) {
	a := New(7, 123_456)
	b := New(7, 123_456)

	assert.True(t, a.Equal(a), "reflexive")
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a), "symmetric")
	assert.False(t, a.Equal(New(7, 123_457)))
	assert.False(t, a.Equal(New(7, 123_455)))
	assert.False(t, a.Equal(New(8, 123_456)))

	// Unnormalized values are compared field by field, not by magnitude.
	assert.False(t, New(1, 0).Equal(New(0, 1_000_000)))
}

func TestTotalMilliseconds(t *testing.T) {
	tests := []struct {
		in   Time
		want int64
	}{
		{New(2, 500_000), 2500},
		{New(0, 999), 0},
		{New(0, 1_999), 1},
		{New(-1, 500_000), -500},
		{New(3, 0), 3000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.TotalMilliseconds(), "%v", tt.in)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Time
		want string
	}{
		{New(0, 0), "0.000000"},
		{New(1, 800_000), "1.800000"},
		{New(12, 250), "12.000250"},
		{New(-1, 0), "-1.000000"},
		{New(-1, 500_000), "-0.500000"},
		{New(-2, 750_000), "-1.250000"},
		{New(5, -1), "5s-1us"},
		{New(5, 1_100_000), "5s+1100000us"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Time
	}{
		{"12", New(12, 0)},
		{"3.5", New(3, 500_000)},
		{"0.000250", New(0, 250)},
		{"+2.000001", New(2, 1)},
		{"-1.25", New(-2, 750_000)},
		{"-0.5", New(-1, 500_000)},
		{"-3", New(-3, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "-", "1.", ".5", "1.2345678", "1a", "1.2.3", "abc", "1.-5", "99999999999999999999"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParse_StringRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for _, tv := range randomNormalized(r, 200, 100_000) {
		got, err := Parse(tv.String())
		require.NoError(t, err)
		assert.Equal(t, tv, got)
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, New(1, 500_000).Duration())
	assert.Equal(t, -500*time.Millisecond, New(-1, 500_000).Duration())

	assert.Equal(t, New(-2, 500_000), FromDuration(-1500*time.Millisecond))
	assert.Equal(t, New(0, 2_500), FromDuration(2500*time.Microsecond+3*time.Nanosecond))
	assert.Equal(t, New(90, 0), FromDuration(90*time.Second))
}
