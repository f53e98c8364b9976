package component

// Attachment is a named child transform. When Parent is non-zero the
// attachment follows the parent's transform at the local offset.
type Attachment struct {
	Name   string
	Parent uint64
	LocalX float64
	LocalY float64
	// Width and Height size the attachment's drawn shape.
	Width  float64
	Height float64
}

var AttachmentComponent = NewComponent[Attachment]()
