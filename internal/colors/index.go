package colors

import "fmt"

// ChannelScale is a shade enriched with CSS-ready channel triplets.
type ChannelScale struct {
	Scale
	RGBChannel string `json:"rgbChannel"`
	HSLChannel string `json:"hslChannel"`
}

// IndexEntry mirrors Value with channels added to every shade.
type IndexEntry struct {
	Literal string
	Single  *ChannelScale
	Scales  []ChannelScale
}

// MarshalJSON writes the active variant.
func (e IndexEntry) MarshalJSON() ([]byte, error) {
	switch {
	case e.Single != nil:
		return marshalRaw(e.Single)
	case e.Scales != nil:
		return marshalRaw(e.Scales)
	default:
		return marshalRaw(e.Literal)
	}
}

// Find returns the shade with the given scale.
func (e IndexEntry) Find(scale int) (ChannelScale, bool) {
	for _, s := range e.Scales {
		if s.Scale.Scale == scale {
			return s, true
		}
	}
	return ChannelScale{}, false
}

// Index is the colors/index.json document.
type Index = Ordered[IndexEntry]

// BuildIndex adds rgb and hsl channels to every shade of every palette. Values
// that do not match the expected rgb()/hsl() shape are kept as written and
// reported as warnings.
func BuildIndex(palettes Palettes) (Index, []Warning) {
	var (
		index    Index
		warnings []Warning
	)

	for _, name := range palettes.Keys() {
		value, _ := palettes.Get(name)

		switch {
		case value.Single != nil:
			enriched, w := enrich(name, *value.Single)
			warnings = append(warnings, w...)
			index.Set(name, IndexEntry{Single: &enriched})
		case value.Scales != nil:
			scales := make([]ChannelScale, 0, len(value.Scales))
			for _, scale := range value.Scales {
				enriched, w := enrich(name, scale)
				warnings = append(warnings, w...)
				scales = append(scales, enriched)
			}
			index.Set(name, IndexEntry{Scales: scales})
		default:
			index.Set(name, IndexEntry{Literal: value.Literal})
		}
	}

	return index, warnings
}

func enrich(palette string, scale Scale) (ChannelScale, []Warning) {
	var warnings []Warning

	rgb, ok := RGBChannel(scale.RGB)
	if !ok {
		warnings = append(warnings, Warning{
			Palette:   palette,
			Reference: scale.RGB,
			Reason:    fmt.Sprintf("scale %d: rgb value is not rgb(r,g,b)", scale.Scale),
		})
	}

	hsl, ok := HSLChannel(scale.HSL)
	if !ok {
		warnings = append(warnings, Warning{
			Palette:   palette,
			Reference: scale.HSL,
			Reason:    fmt.Sprintf("scale %d: hsl value is not hsl(h,s%%,l%%)", scale.Scale),
		})
	}

	return ChannelScale{Scale: scale, RGBChannel: rgb, HSLChannel: hsl}, warnings
}
