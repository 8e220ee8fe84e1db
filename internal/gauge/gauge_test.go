package gauge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Conversions(t *testing.T) {
	assert.Equal(t, Value(1000), Units(10))
	assert.Equal(t, Value(250), Percent(Units(10), 25))
	assert.Equal(t, Value(200), Percent(Units(10), 20))
	assert.Equal(t, int64(2), Value(299).Whole())
	assert.Equal(t, int64(-1), Value(-50).Whole())
	assert.Equal(t, "2.50", Value(250).String())
	assert.Equal(t, "-0.05", Value(-5).String())
}

// Generation past the cap: 90 + 20 stops at 100 and 10 is overcap.
func TestGauge_GenerationPastMax(t *testing.T) {
	g := New(Units(100))
	g.Set(0, Units(90))

	g.Add(1000, Units(20))

	assert.Equal(t, Units(100), g.Current())
	assert.Equal(t, Units(10), g.Overcap())
	assert.Equal(t, Sample{Elapsed: 1000, Value: Units(100)}, g.History()[1])
}

// Spending 50 from 30: the last sample is raised to 50, then the gauge
// empties.
func TestGauge_SpendBelowCost(t *testing.T) {
	g := New(Units(100))
	g.Set(500, Units(30))

	g.Spend(2000, Units(50))

	assert.Equal(t, Value(0), g.Current())
	require.Equal(t, []Sample{
		{Elapsed: 500, Value: Units(50)},
		{Elapsed: 2000, Value: 0},
	}, g.History())
	assert.Equal(t, Value(0), g.Overcap())
	assert.Equal(t, 1, g.Consumed())
}

func TestGauge_SpendWithEnough(t *testing.T) {
	g := New(Units(100))
	g.Set(500, Units(80))

	g.Spend(2000, Units(50))

	assert.Equal(t, Units(30), g.Current())
	assert.Equal(t, Units(80), g.History()[0].Value, "history untouched")
}

func TestGauge_SpendOnEmptyHistory(t *testing.T) {
	g := New(Units(100))
	g.Spend(100, Units(50))

	assert.Equal(t, Value(0), g.Current())
	assert.Equal(t, []Sample{{Elapsed: 100, Value: 0}}, g.History())
}

// A death empties the gauge exactly.
func TestGauge_Reset(t *testing.T) {
	for _, start := range []Value{0, 1, Percent(Units(10), 25), Units(50), Units(100)} {
		g := New(Units(100))
		g.Set(0, start)
		g.Add(10, Units(30))
		overcap := g.Overcap()

		g.Reset(20)

		assert.Equal(t, Value(0), g.Current())
		assert.Equal(t, overcap, g.Overcap(), "reset is not overcap")
		last := g.History()[len(g.History())-1]
		assert.Equal(t, Sample{Elapsed: 20, Value: 0}, last)
	}
}

func TestGauge_NegativeClampIsNotOvercap(t *testing.T) {
	g := New(Units(100))
	g.Set(0, Units(-40))
	assert.Equal(t, Value(0), g.Current())
	assert.Equal(t, Value(0), g.Overcap())
}

func TestGauge_HistoryIsCopied(t *testing.T) {
	g := New(Units(100))
	g.Set(0, Units(10))

	h := g.History()
	h[0].Value = Units(99)
	assert.Equal(t, Units(10), g.History()[0].Value)
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name     string
		duration int64
		want     int64
	}{
		{"buff applied at 1000 removed at 9700", 8700, 2},
		{"short buff still ticks once", 500, 1},
		{"zero duration", 0, 1},
		{"exact multiple", 9000, 3},
		{"capped", 20000, 5},
		{"exactly max", 15000, 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ticks(tt.duration, 3000, 5))
		})
	}
}

func TestTicks_CreditsPerTickAmount(t *testing.T) {
	g := New(Units(100))
	g.Add(9700, Value(Ticks(9700-1000, 3000, 5))*Units(10))
	assert.Equal(t, Units(20), g.Current())
}

// Random operation sequences never leave [0, max] and never lower overcap.
func TestGauge_BoundsProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		g := New(Units(100))
		prevOvercap := g.Overcap()
		prevLen := 0

		for step := 0; step < 100; step++ {
			elapsed := int64(step * 1000)
			switch r.Intn(5) {
			case 0:
				g.Add(elapsed, Value(r.Int63n(int64(Units(60)))))
			case 1:
				g.Add(elapsed, -Value(r.Int63n(int64(Units(60)))))
			case 2:
				g.Spend(elapsed, Units(50))
			case 3:
				g.Reset(elapsed)
			case 4:
				g.Set(elapsed, Value(r.Int63n(int64(Units(300)))-int64(Units(100))))
			}

			require.GreaterOrEqual(t, g.Current(), Value(0))
			require.LessOrEqual(t, g.Current(), g.Max())
			require.GreaterOrEqual(t, g.Overcap(), prevOvercap)
			require.Equal(t, prevLen+1, len(g.History()), "every transition appends one sample")

			for _, s := range g.History() {
				require.GreaterOrEqual(t, s.Value, Value(0))
				require.LessOrEqual(t, s.Value, g.Max())
			}
			prevOvercap = g.Overcap()
			prevLen = len(g.History())
		}
	}
}
