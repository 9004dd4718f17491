package models

// Visibility mirrors the XAML visibility values the converter emits.
type Visibility string

const (
	VisibilityVisible   Visibility = "Visible"
	VisibilityCollapsed Visibility = "Collapsed"
)

// Point is one integer polygon vertex.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ShapeKind discriminates the structured shape records.
type ShapeKind string

const (
	ShapeKindRectangle ShapeKind = "rectangle"
	ShapeKindTextBox   ShapeKind = "textbox"
	ShapeKindPolygon   ShapeKind = "polygon"
)

// ShapeRecord is the structured form of one recognized shape, keyed
// "shape_{idx}" within its ViewObject. It carries everything the markup
// element renders plus the advisory rule fields.
type ShapeRecord struct {
	Key        string            `json:"key"`
	Kind       ShapeKind         `json:"kind"`
	ClassName  string            `json:"className"` // "{sysName}-{kind}-{symbolKey}"
	Visibility Visibility        `json:"visibility"`
	Tag        string            `json:"tag"`
	Left       int               `json:"left,omitempty"`
	Top        int               `json:"top,omitempty"`
	Right      int               `json:"right,omitempty"`
	Bottom     int               `json:"bottom,omitempty"`
	Width      int               `json:"width,omitempty"`
	Height     int               `json:"height,omitempty"`
	Points     []Point           `json:"points,omitempty"`
	Text       string            `json:"text,omitempty"`
	Stroke     string            `json:"stroke,omitempty"`
	Thickness  string            `json:"strokeThickness,omitempty"`
	Fill       string            `json:"fill,omitempty"`
	RuleFields map[string]string `json:"ruleFields,omitempty"`
}

// Extent accumulates the minimum and maximum coordinates seen across the
// whole document; it sizes the output canvas.
type Extent struct {
	MinX, MaxX int
	MinY, MaxY int
	set        bool
}

// Update widens the extent to include (x, y).
func (e *Extent) Update(x, y int) {
	if !e.set {
		e.MinX, e.MaxX, e.MinY, e.MaxY = x, x, y, y
		e.set = true
		return
	}
	if x < e.MinX {
		e.MinX = x
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if y > e.MaxY {
		e.MaxY = y
	}
}

// Set reports whether any coordinate was recorded.
func (e *Extent) Set() bool {
	return e.set
}

// CanvasSize is the synthesized document-level drawing surface size.
type CanvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultCanvasSize is used when a document contained no recognized shapes.
var DefaultCanvasSize = CanvasSize{Width: 800, Height: 600}

// ConvertResult is the output of one parse-and-emit pass over a document.
type ConvertResult struct {
	Elements []string      `json:"elements"` // rendered markup, traversal order
	Shapes   []ShapeRecord `json:"shapes"`
	Canvas   CanvasSize    `json:"canvas"`
	Skipped  int           `json:"skipped"` // shape objects skipped, all causes
}
