package track

import "fmt"

// FormatLatitude converts signed decimal degrees to degrees + decimal
// minutes with a hemisphere letter: 47.87670 -> "4752.60N".
func FormatLatitude(deg float64) string {
	return formatDegrees(deg, 2, 'N', 'S')
}

// FormatLongitude converts signed decimal degrees to degrees + decimal
// minutes with a hemisphere letter: -122.27269 -> "12216.36W".
func FormatLongitude(deg float64) string {
	return formatDegrees(deg, 3, 'E', 'W')
}

func formatDegrees(deg float64, degDigits int, pos, neg byte) string {
	hemi := pos
	if deg < 0 {
		hemi = neg
		deg = -deg
	}
	whole := int(deg)
	minutes := (deg - float64(whole)) * 60
	return fmt.Sprintf("%0*d%05.2f%c", degDigits, whole, minutes, hemi)
}
