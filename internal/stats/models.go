package stats

import "strconv"

// Figure is a rounded statistic. It encodes as its 2-decimal display string,
// or as the number 0 when nothing was recorded. Value holds the number parsed
// back from the display string and is what further arithmetic uses.
type Figure struct {
	Value float64
	Text  string
}

// IsZero reports whether the figure was never set.
func (f Figure) IsZero() bool {
	return f.Text == ""
}

func (f Figure) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.Quote(f.Text)), nil
}

func (f Figure) String() string {
	if f.IsZero() {
		return "0"
	}
	return f.Text
}

type PlayerStats struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	AvgScore     Figure `json:"avgScore"`
	PPD          Figure `json:"ppd"` // points per dart
	BestThrow    int    `json:"bestThrow"`
	NumberOf180s int    `json:"numberOf180s"`
	WinLossRatio string `json:"winLossRatio"`
	GamesPlayed  int    `json:"gamesPlayed"`
}
