package inspect

import "tagmore/ui/layout"

// Node types used in the component tree.
const (
	TypeBoard     = "Board"
	TypeRow       = "Row"
	TypeTagMore   = "TagMore"
	TypeChip      = "Chip"
	TypeIndicator = "Indicator"
	TypePopover   = "TagPopover"
)

// Node is one component in the inspection tree.
type Node struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Bounds  Bounds `json:"bounds"`
	Visible bool   `json:"visible"`

	// State holds component-specific values such as the visible and hidden
	// tag counts of a TagMore.
	State  map[string]interface{} `json:"state,omitempty"`
	Styles *StyleInfo             `json:"styles,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Content is the full label of a chip or the "+N" text of an indicator.
	Content   string          `json:"content,omitempty"`
	Truncated *TruncationInfo `json:"truncated,omitempty"`
}

// Bounds is a component's position and size in cells.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleInfo is the subset of a lipgloss style that matters for reading a snapshot.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty"` // [top, right, bottom, left]

	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo describes a label cut to fit the maximum item width.
type TruncationInfo struct {
	OriginalLength int    `json:"original_length"`
	DisplayLength  int    `json:"display_length"`
	Ellipsis       bool   `json:"ellipsis"`
	OriginalText   string `json:"original_text,omitempty"`
}

func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

// NewChipNode describes a visible tag. displayed is the label as drawn and
// width the chip's width in cells; a label that was cut records truncation.
func NewChipNode(item layout.Item, displayed string, displayedWidth, width int) *Node {
	n := NewNode(TypeChip).WithID(item.ID).WithContent(item.Name)
	n.Bounds.Width, n.Bounds.Height = width, 1
	if displayed != item.Name {
		n.Truncated = &TruncationInfo{
			OriginalLength: layout.CellMeasurer{}.Measure(item.Name),
			DisplayLength:  displayedWidth,
			Ellipsis:       displayed != "",
			OriginalText:   item.Name,
		}
	}
	return n
}

// NewIndicatorNode describes the "+N" chip standing in for hidden tags.
func NewIndicatorNode(hidden, width int) *Node {
	n := NewNode(TypeIndicator).
		WithContent(layout.IndicatorText(hidden)).
		WithState("hidden", hidden)
	n.Bounds.Width, n.Bounds.Height = width, 1
	return n
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild appends child and returns the parent.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

func (n *Node) WithTruncation(original, displayed int, hasEllipsis bool) *Node {
	n.Truncated = &TruncationInfo{
		OriginalLength: original,
		DisplayLength:  displayed,
		Ellipsis:       hasEllipsis,
	}
	return n
}

// Find returns every node of nodeType in the tree rooted at n, depth first.
func (n *Node) Find(nodeType string) []*Node {
	var found []*Node
	if n.Type == nodeType {
		found = append(found, n)
	}
	for _, child := range n.Children {
		found = append(found, child.Find(nodeType)...)
	}
	return found
}

// ChipLabels returns the full labels of the chips directly under n.
func (n *Node) ChipLabels() []string {
	var labels []string
	for _, child := range n.Children {
		if child.Type == TypeChip {
			labels = append(labels, child.Content)
		}
	}
	return labels
}

// HiddenCount returns the count carried by the indicator directly under n,
// or 0 when every tag is visible.
func (n *Node) HiddenCount() int {
	for _, child := range n.Children {
		if child.Type != TypeIndicator {
			continue
		}
		if hidden, ok := child.State["hidden"].(int); ok {
			return hidden
		}
	}
	return 0
}
