package models

import (
	"fmt"
	"strings"
)

// MarkupElement is one emitted drawing primitive in the output dialect.
// Construction and rendering are separate so tests and validation can work
// on the structured form.
type MarkupElement interface {
	// ElementName returns the synthesized unique name attribute.
	ElementName() string
	// Render serializes the element to its markup text.
	Render() string
}

// RectangleElement renders to a <Rectangle .../> element.
type RectangleElement struct {
	Name       string
	Width      int
	Height     int
	Left       int
	Top        int
	Stroke     string
	Thickness  string
	Fill       string
	Visibility Visibility
}

func (r RectangleElement) ElementName() string { return r.Name }

func (r RectangleElement) Render() string {
	return fmt.Sprintf(`<Rectangle Name="%s" Width="%d" Height="%d" Canvas.Left="%d" Canvas.Top="%d" Stroke="%s" StrokeThickness="%s" Fill="%s" Tag="1" Visibility="%s" Canvas.ZIndex="2"/>`,
		r.Name, r.Width, r.Height, r.Left, r.Top, r.Stroke, r.Thickness, r.Fill, r.Visibility)
}

// TextBlockElement renders to a <TextBlock .../> element. The label, font,
// and foreground are fixed in the output dialect.
type TextBlockElement struct {
	Name       string
	Left       int
	Top        int
	Right      int
	Bottom     int
	Visibility Visibility
}

func (t TextBlockElement) ElementName() string { return t.Name }

func (t TextBlockElement) Render() string {
	return fmt.Sprintf(`<TextBlock Name="%s" Text="control" Canvas.Left="%d" Canvas.Top="%d" Canvas.Right="%d" Canvas.Bottom="%d" Foreground="#808080" FontSize="10" FontWeight="Normal" Tag="1" Visibility="%s"/>`,
		t.Name, t.Left, t.Top, t.Right, t.Bottom, t.Visibility)
}

// PolygonElement renders to a <Polygon .../> element.
type PolygonElement struct {
	Name       string
	Points     []Point
	Stroke     string
	Thickness  string
	Fill       string
	Visibility Visibility
}

func (p PolygonElement) ElementName() string { return p.Name }

// PointList joins the vertices as space-separated "x,y" pairs.
func (p PolygonElement) PointList() string {
	parts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		parts[i] = fmt.Sprintf("%d,%d", pt.X, pt.Y)
	}
	return strings.Join(parts, " ")
}

func (p PolygonElement) Render() string {
	return fmt.Sprintf(`<Polygon Name="%s" Points="%s" Stroke="%s" StrokeThickness="%s" Fill="%s" Tag="17" Visibility="%s" Canvas.ZIndex="2"/>`,
		p.Name, p.PointList(), p.Stroke, p.Thickness, p.Fill, p.Visibility)
}
