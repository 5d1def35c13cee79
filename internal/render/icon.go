package render

import (
	"encoding/base64"
	"fmt"
)

// Pin geometry shared by every marker. Matches the classic Leaflet default
// pin so custom-colored icons drop in without re-anchoring.
const (
	IconWidth  = 25
	IconHeight = 41

	// Anchor at the bottom tip of the teardrop; popup opens just above it.
	IconAnchorX = 12
	IconAnchorY = 41

	PopupAnchorX = 1
	PopupAnchorY = -34
)

// IconSpec describes one marker icon for the map client: fixed pin geometry
// plus the per-entry tint and a self-contained SVG data URI the client can use
// directly as the icon URL.
type IconSpec struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AnchorX      int    `json:"anchor_x"`
	AnchorY      int    `json:"anchor_y"`
	PopupAnchorX int    `json:"popup_anchor_x"`
	PopupAnchorY int    `json:"popup_anchor_y"`
	Color        string `json:"color"`
	URL          string `json:"url"`
}

// NewIcon builds the icon spec for the given tint color.
func NewIcon(color string) IconSpec {
	return IconSpec{
		Width:        IconWidth,
		Height:       IconHeight,
		AnchorX:      IconAnchorX,
		AnchorY:      IconAnchorY,
		PopupAnchorX: PopupAnchorX,
		PopupAnchorY: PopupAnchorY,
		Color:        color,
		URL:          PinDataURI(color),
	}
}

// PinSVG renders the teardrop pin: a filled drop outline with a white circular
// cutout, tinted with the given color.
func PinSVG(color string) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 25 41">`+
			`<path fill="%s" stroke="#ffffff" stroke-width="1" d="M12.5 0.5 C5.9 0.5 0.5 5.9 0.5 12.5 C0.5 21.5 12.5 40.5 12.5 40.5 C12.5 40.5 24.5 21.5 24.5 12.5 C24.5 5.9 19.1 0.5 12.5 0.5 Z"/>`+
			`<circle cx="12.5" cy="12.5" r="5" fill="#ffffff"/>`+
			`</svg>`,
		IconWidth, IconHeight, color)
}

// PinDataURI encodes the pin SVG as a base64 data URI usable as an image URL.
func PinDataURI(color string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(PinSVG(color)))
	return "data:image/svg+xml;base64," + encoded
}
