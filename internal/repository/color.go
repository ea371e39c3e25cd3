package repository

import (
	"fmt"
	"math/rand"

	"planner/internal/model"
)

// HueFunc returns a hue in degrees, 0 <= hue < 360.
type HueFunc func() int

// RandomHue picks a uniformly random hue.
func RandomHue() int {
	return rand.Intn(360)
}

// HSLColor renders a pastel color for the given hue.
func HSLColor(hue int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 70%%)", hue)
}

// MissingColors returns a generated color for every course that has no entry
// in existing. Existing entries are never included in the result.
func MissingColors(existing model.ColorMap, courses []model.Course, hue HueFunc) model.ColorMap {
	added := model.ColorMap{}
	for _, c := range courses {
		if _, ok := existing[c.ID]; ok {
			continue
		}
		if _, ok := added[c.ID]; ok {
			continue
		}
		added[c.ID] = HSLColor(hue())
	}
	return added
}
