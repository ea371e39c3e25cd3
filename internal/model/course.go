package model

type Course struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Professor string `json:"professor,omitempty"`
}

// ColorMap maps a course id to its display color.
type ColorMap map[string]string

func (m ColorMap) Clone() ColorMap {
	out := make(ColorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CourseCatalog is the loaded course state: the course list and its colors.
type CourseCatalog struct {
	Courses []Course `json:"courses"`
	Colors  ColorMap `json:"colors"`
}
