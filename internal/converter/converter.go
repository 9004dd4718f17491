// Package converter extracts drawn shapes from diagram-description XML and
// emits the equivalent canvas markup elements.
package converter

import (
	"fmt"
	"strconv"

	"github.com/diagram-converter/backend/internal/models"
	"github.com/diagram-converter/backend/internal/xmltree"
)

// Shape class names recognized by the dispatcher.
const (
	classRectangle     = "CRectangle"
	classTextBox       = "CTextBox"
	classPolygon       = "CPolygon"
	classParallelogram = "CParallelogram"
)

// viewContext holds the state scoped to one ViewObject's processing. It is
// created fresh per ViewObject and never outlives the conversion call.
type viewContext struct {
	symbolKey string
	sysName   string
	fields    map[string]string
}

func newViewContext(vo *xmltree.Node) *viewContext {
	fields := ChildrenText(vo)
	ctx := &viewContext{
		symbolKey: fields["SymbolKey"],
		sysName:   fields["SysName"],
		fields:    fields,
	}
	if ctx.symbolKey == "" {
		ctx.symbolKey = "0"
	}
	if ctx.sysName == "" {
		ctx.sysName = "default"
	}
	return ctx
}

func (v *viewContext) elementName(kind string, counter int) string {
	return fmt.Sprintf("%s-%s-%s-%d", v.sysName, kind, v.symbolKey, counter)
}

func (v *viewContext) className(kind string) string {
	return fmt.Sprintf("%s-%s-%s", v.sysName, kind, v.symbolKey)
}

// ConvertFile parses a source document and converts it. Malformed XML
// aborts the whole file.
func ConvertFile(path string) (*models.ConvertResult, error) {
	root, err := xmltree.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Convert(root), nil
}

// Convert walks every ViewObject in the document, dispatches per shape
// class, and returns the rendered markup elements in traversal order
// together with the structured shape records and the synthesized canvas
// size. Unrecognized or malformed shapes are skipped, never fatal.
func Convert(root *xmltree.Node) *models.ConvertResult {
	result := &models.ConvertResult{}
	var extent models.Extent
	counter := 0

	for _, vo := range root.Descendants("ViewObject") {
		ctx := newViewContext(vo)

		shapeArray := vo.Child("SHAPEARRAY")
		if shapeArray == nil {
			continue
		}

		for idx, shapeObject := range shapeArray.Descendants("ShapeObject") {
			shape := shapeObject.Descendant("SHAPE")
			if shape == nil {
				result.Skipped++
				continue
			}

			className := shape.FindText("MetaData/ClassName")
			if className == "" {
				fmt.Printf("[Convert] Warning: shape %d in %s has no class name, skipping\n", idx, ctx.sysName)
				result.Skipped++
				continue
			}

			_, visibility, ruleFields := ClassifyRule(shapeObject)
			stroke, thickness, fill := ResolveVisuals(shape)
			key := fmt.Sprintf("shape_%d", idx)

			switch className {
			case classRectangle:
				rect := shape.Child("RectShape")
				left, top, right, bottom, err := rectBounds(rect)
				if err != nil {
					fmt.Printf("[Convert] Warning: skipping %s shape %d: %v\n", className, idx, err)
					result.Skipped++
					continue
				}
				counter++
				width := right - left
				height := bottom - top
				extent.Update(left, top)
				extent.Update(right, bottom)

				elem := models.RectangleElement{
					Name:       ctx.elementName("rect", counter),
					Width:      width,
					Height:     height,
					Left:       left,
					Top:        top,
					Stroke:     stroke,
					Thickness:  thickness,
					Fill:       fill,
					Visibility: visibility,
				}
				result.Elements = append(result.Elements, elem.Render())
				result.Shapes = append(result.Shapes, models.ShapeRecord{
					Key:        key,
					Kind:       models.ShapeKindRectangle,
					ClassName:  ctx.className("rect"),
					Visibility: visibility,
					Tag:        "1",
					Left:       left,
					Top:        top,
					Width:      width,
					Height:     height,
					Stroke:     stroke,
					Thickness:  thickness,
					Fill:       fill,
					RuleFields: ruleFields,
				})

			case classTextBox:
				rect := shape.Find("Rectangle/RectShape")
				left, top, right, bottom, err := rectBounds(rect)
				if err != nil {
					fmt.Printf("[Convert] Warning: skipping %s shape %d: %v\n", className, idx, err)
					result.Skipped++
					continue
				}
				counter++
				extent.Update(left, top)
				extent.Update(right, bottom)

				elem := models.TextBlockElement{
					Name:       ctx.elementName("txt", counter),
					Left:       left,
					Top:        top,
					Right:      right,
					Bottom:     bottom,
					Visibility: visibility,
				}
				result.Elements = append(result.Elements, elem.Render())
				result.Shapes = append(result.Shapes, models.ShapeRecord{
					Key:        key,
					Kind:       models.ShapeKindTextBox,
					ClassName:  ctx.className("txt"),
					Visibility: visibility,
					Tag:        "1",
					Left:       left,
					Top:        top,
					Right:      right,
					Bottom:     bottom,
					Text:       "control",
					RuleFields: ruleFields,
				})

			case classPolygon, classParallelogram:
				points, err := polyPoints(shape)
				if err != nil {
					fmt.Printf("[Convert] Warning: skipping %s shape %d: %v\n", className, idx, err)
					result.Skipped++
					continue
				}
				counter++
				for _, pt := range points {
					extent.Update(pt.X, pt.Y)
				}

				elem := models.PolygonElement{
					Name:       ctx.elementName("poly", counter),
					Points:     points,
					Stroke:     stroke,
					Thickness:  thickness,
					Fill:       fill,
					Visibility: visibility,
				}
				result.Elements = append(result.Elements, elem.Render())
				result.Shapes = append(result.Shapes, models.ShapeRecord{
					Key:        key,
					Kind:       models.ShapeKindPolygon,
					ClassName:  ctx.className("poly"),
					Visibility: visibility,
					Tag:        "17",
					Points:     points,
					Stroke:     stroke,
					Thickness:  thickness,
					Fill:       fill,
					RuleFields: ruleFields,
				})

			default:
				// Unknown class names are not an error.
				result.Skipped++
			}
		}
	}

	if extent.Set() {
		result.Canvas = models.CanvasSize{
			Width:  extent.MaxX - extent.MinX,
			Height: extent.MaxY - extent.MinY,
		}
	} else {
		result.Canvas = models.DefaultCanvasSize
	}

	return result
}

// rectBounds reads the four integer bounds of a RectShape element.
func rectBounds(rect *xmltree.Node) (left, top, right, bottom int, err error) {
	if rect == nil {
		return 0, 0, 0, 0, fmt.Errorf("missing RectShape element")
	}
	if left, err = intField(rect, "Left"); err != nil {
		return
	}
	if top, err = intField(rect, "Top"); err != nil {
		return
	}
	if right, err = intField(rect, "Right"); err != nil {
		return
	}
	bottom, err = intField(rect, "Bottom")
	return
}

// polyPoints reads the ordered PolyShape/Point vertex list.
func polyPoints(shape *xmltree.Node) ([]models.Point, error) {
	poly := shape.Child("PolyShape")
	if poly == nil {
		return nil, fmt.Errorf("missing PolyShape element")
	}
	var points []models.Point
	for i := range poly.Children {
		pt := &poly.Children[i]
		if pt.Tag() != "Point" {
			continue
		}
		x, err := intField(pt, "X")
		if err != nil {
			return nil, err
		}
		y, err := intField(pt, "Y")
		if err != nil {
			return nil, err
		}
		points = append(points, models.Point{X: x, Y: y})
	}
	return points, nil
}

func intField(n *xmltree.Node, tag string) (int, error) {
	text := n.FindText(tag)
	if text == "" {
		return 0, fmt.Errorf("missing %s field", tag)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid %s field %q", tag, text)
	}
	return v, nil
}
