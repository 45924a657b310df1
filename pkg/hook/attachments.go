package hook

import "slices"

// Attachment is a rich block shown under a hook message. Every field is
// optional.
type Attachment struct {
	Title     string `json:"title,omitempty"`
	TitleLink string `json:"titleLink,omitempty"`
	Text      string `json:"text,omitempty"`
	Color     string `json:"color,omitempty"`
}

// IsZero reports whether no field is set.
func (a Attachment) IsZero() bool {
	return a == Attachment{}
}

// AttachmentsBuilder accumulates attachments for a hook message.
type AttachmentsBuilder struct {
	attachments []Attachment
}

// NewAttachmentsBuilder returns an empty AttachmentsBuilder.
func NewAttachmentsBuilder() *AttachmentsBuilder {
	return &AttachmentsBuilder{}
}

// Add appends a. An attachment with no field set is dropped.
func (b *AttachmentsBuilder) Add(a Attachment) *AttachmentsBuilder {
	if !a.IsZero() {
		b.attachments = append(b.attachments, a)
	}
	return b
}

// Create returns an independent copy of the accumulated attachments.
func (b *AttachmentsBuilder) Create() []Attachment {
	return slices.Clone(b.attachments)
}
