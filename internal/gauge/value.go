package gauge

import "fmt"

// Scale is the number of Value steps per whole gauge unit.
const Scale = 100

// Value is a gauge amount in hundredths of a unit.
type Value int64

// Units converts whole units to a Value.
func Units(n int64) Value {
	return Value(n * Scale)
}

// Percent returns pct percent of v, truncated toward zero.
func Percent(v Value, pct int64) Value {
	return v * Value(pct) / 100
}

// Whole returns the whole units in v, rounded down.
func (v Value) Whole() int64 {
	if v < 0 {
		return -((int64(-v) + Scale - 1) / Scale)
	}
	return int64(v) / Scale
}

// String formats v with two decimals: "2.50".
func (v Value) String() string {
	sign := ""
	n := int64(v)
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/Scale, n%Scale)
}
