package dom

// Text represents character data in an element's content.
type Text Node

// NewText creates a text node with the given data.
func NewText(data string) *Text {
	node := &Node{nodeType: TextNode, textData: &data}
	return (*Text)(node)
}

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// Data returns the text content.
func (t *Text) Data() string {
	return *t.AsNode().textData
}

// SetData replaces the text content.
func (t *Text) SetData(data string) {
	*t.AsNode().textData = data
}

// Comment represents an XML comment.
type Comment Node

// NewComment creates a comment node with the given data.
func NewComment(data string) *Comment {
	node := &Node{nodeType: CommentNode, commentData: &data}
	return (*Comment)(node)
}

// AsNode returns the underlying Node.
func (c *Comment) AsNode() *Node {
	return (*Node)(c)
}

// Data returns the comment content.
func (c *Comment) Data() string {
	return *c.AsNode().commentData
}

// SetData replaces the comment content.
func (c *Comment) SetData(data string) {
	*c.AsNode().commentData = data
}

// ProcessingInstruction represents an XML processing instruction.
type ProcessingInstruction Node

// NewProcessingInstruction creates a processing instruction node with the
// given target and data.
func NewProcessingInstruction(target, data string) (*ProcessingInstruction, error) {
	if !IsNCName(target) {
		return nil, ErrInvalidCharacter("invalid processing instruction target: " + target)
	}
	node := &Node{nodeType: ProcessingInstructionNode, piData: &piData{target: target, data: data}}
	return (*ProcessingInstruction)(node), nil
}

// AsNode returns the underlying Node.
func (pi *ProcessingInstruction) AsNode() *Node {
	return (*Node)(pi)
}

// Target returns the processing instruction target.
func (pi *ProcessingInstruction) Target() string {
	return pi.AsNode().piData.target
}

// Data returns the processing instruction data.
func (pi *ProcessingInstruction) Data() string {
	return pi.AsNode().piData.data
}

// SetData replaces the processing instruction data.
func (pi *ProcessingInstruction) SetData(data string) {
	pi.AsNode().piData.data = data
}
