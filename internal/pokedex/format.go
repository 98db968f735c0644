package pokedex

import (
	"fmt"
	"math"
	"strconv"
)

// MaxStat is the value a full stat bar represents.
const MaxStat = 250

// FormatStatValue zero-pads values below 100 to three digits.
func FormatStatValue(value int) string {
	if value < 100 {
		return fmt.Sprintf("%03d", value)
	}
	return strconv.Itoa(value)
}

func FormatID(id int) string {
	return FormatStatValue(id)
}

// BarPercent is the width of a stat bar relative to its track. Values above
// MaxStat are not clamped.
func BarPercent(value int) float64 {
	return float64(value) / MaxStat * 100
}

// BarCells is BarPercent expressed in cells of a track that is track cells
// wide.
func BarCells(value, track int) int {
	return int(math.Round(float64(value) / MaxStat * float64(track)))
}

// FormatWeight converts hectograms to kilograms.
func FormatWeight(hectograms int) string {
	return strconv.FormatFloat(float64(hectograms)/10, 'f', -1, 64) + " kg"
}

// FormatHeight converts decimetres to metres.
func FormatHeight(decimetres int) string {
	return strconv.FormatFloat(float64(decimetres)/10, 'f', -1, 64) + " m"
}
