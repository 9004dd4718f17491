package converter

import (
	"github.com/diagram-converter/backend/internal/models"
	"github.com/diagram-converter/backend/internal/xmltree"
)

// HasRule reports whether a ShapeObject has a RULE element as a direct
// child.
func HasRule(shapeObject *xmltree.Node) bool {
	return shapeObject.Child("RULE") != nil
}

// ClassifyRule derives the display rule for a ShapeObject: whether a RULE
// child exists, the resulting visibility (Collapsed iff a rule is present),
// and the rule's immediate children flattened to tag→trimmed-text pairs
// with empty text omitted. The fields are advisory and carried on the
// shape record only.
func ClassifyRule(shapeObject *xmltree.Node) (bool, models.Visibility, map[string]string) {
	rule := shapeObject.Child("RULE")
	if rule == nil {
		return false, models.VisibilityVisible, nil
	}

	fields := make(map[string]string)
	for i := range rule.Children {
		c := &rule.Children[i]
		if text := c.Text(); text != "" {
			fields[c.Tag()] = text
		}
	}
	return true, models.VisibilityCollapsed, fields
}

// ChildrenText flattens an element's direct child text keyed by tag; a
// child that itself has children contributes its grandchildren instead,
// keyed "child.grandchild". Empty or whitespace-only text is dropped.
func ChildrenText(elem *xmltree.Node) map[string]string {
	data := make(map[string]string)
	for i := range elem.Children {
		child := &elem.Children[i]
		if len(child.Children) > 0 {
			for j := range child.Children {
				sub := &child.Children[j]
				if text := sub.Text(); text != "" {
					data[child.Tag()+"."+sub.Tag()] = text
				}
			}
		} else if text := child.Text(); text != "" {
			data[child.Tag()] = text
		}
	}
	return data
}
