package models

import "strings"

// ImageList is stored as a JSON text column and flattened to a single
// semicolon-separated cell on CSV export.
type ImageList []string

func (l ImageList) MarshalCSV() (string, error) {
	return strings.Join(l, ";"), nil
}

func (l *ImageList) UnmarshalCSV(s string) error {
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, ";")
	return nil
}
