package converter

import "github.com/diagram-converter/backend/internal/xmltree"

// ResolveVisuals resolves stroke color, stroke thickness, and fill color
// for a SHAPE element. Primary fields win: Pen/Color for stroke,
// FillColor/Color for fill, Style/StrokeThickness for thickness. A
// ShapeStyle sub-element only fills in stroke (LineColor) or fill
// (FillColor) when the primary field left it unset. All three results are
// always non-empty.
func ResolveVisuals(shape *xmltree.Node) (stroke, thickness, fill string) {
	if pen := shape.Child("Pen"); pen != nil {
		stroke = ToHex(pen.FindText("Color"))
	}
	if fc := shape.Child("FillColor"); fc != nil {
		fill = ToHex(fc.FindText("Color"))
	}
	if style := shape.Child("Style"); style != nil {
		thickness = style.FindText("StrokeThickness")
	}
	if ss := shape.Child("ShapeStyle"); ss != nil {
		if stroke == "" {
			stroke = ToHex(ss.FindText("LineColor"))
		}
		if fill == "" {
			fill = ToHex(ss.FindText("FillColor"))
		}
	}

	if stroke == "" {
		stroke = FallbackColor
	}
	if thickness == "" {
		thickness = "1"
	}
	if fill == "" {
		fill = FallbackColor
	}
	return stroke, thickness, fill
}
