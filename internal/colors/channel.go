package colors

import "regexp"

var (
	rgbPattern = regexp.MustCompile(`^rgb\((\d+),(\d+),(\d+)\)$`)
	hslPattern = regexp.MustCompile(`^hsl\(([\d.]+),([\d.]+%),([\d.]+%)\)$`)
)

// RGBChannel turns "rgb(r,g,b)" into "r g b". Input that does not match is
// returned unchanged with ok set to false.
func RGBChannel(value string) (channel string, ok bool) {
	return channels(rgbPattern, value)
}

// HSLChannel turns "hsl(h,s%,l%)" into "h s% l%", keeping decimals as written.
// Input that does not match is returned unchanged with ok set to false.
func HSLChannel(value string) (channel string, ok bool) {
	return channels(hslPattern, value)
}

func channels(pattern *regexp.Regexp, value string) (string, bool) {
	m := pattern.FindStringSubmatch(value)
	if m == nil {
		return value, false
	}
	return m[1] + " " + m[2] + " " + m[3], true
}
