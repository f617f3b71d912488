package stats

import (
	"math"
	"strconv"
)

// newFigure rounds x to 2 decimals and keeps both representations.
func newFigure(x float64) Figure {
	text := toFixed2(x)
	v, _ := strconv.ParseFloat(text, 64)
	return Figure{Value: v, Text: text}
}

// toFixed2 formats x with two decimals using the nearest value to the exact
// binary x. Exact ties round away from zero, where strconv would round to
// even.
func toFixed2(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	abs := math.Abs(x)
	// A tie needs abs*100 to end in exactly .5, which only happens for
	// multiples of 1/8.
	if scaled := abs * 100; abs*8 == math.Trunc(abs*8) && scaled-math.Floor(scaled) == 0.5 {
		rounded := strconv.FormatFloat((math.Floor(scaled)+1)/100, 'f', 2, 64)
		if x < 0 {
			return "-" + rounded
		}
		return rounded
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}
