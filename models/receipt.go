package models

// ReceiptLineKind discriminates the renderable line variants of a receipt.
type ReceiptLineKind string

const (
	ReceiptLineText  ReceiptLineKind = "text"
	ReceiptLineImage ReceiptLineKind = "image"
)

// ReceiptImageKind tells the printer backend how to size a fetched image.
type ReceiptImageKind string

const (
	// ReceiptImageAvatar renders as a small fixed-size square
	ReceiptImageAvatar ReceiptImageKind = "avatar"
	// ReceiptImageAttachment renders at full printable raster width
	ReceiptImageAttachment ReceiptImageKind = "attachment"
)

// ReceiptLine is one renderable line of a receipt job.
type ReceiptLine struct {
	Kind ReceiptLineKind

	// Text fields (Kind == ReceiptLineText)
	Text string
	Bold bool

	// Image fields (Kind == ReceiptLineImage)
	ImageURL  string
	ImageKind ReceiptImageKind
}

// ReceiptJob is the formatter's output: an ordered sequence of renderable
// lines plus a terminal cut instruction. Jobs are created and consumed
// within the handling of a single event and never persisted.
type ReceiptJob struct {
	Lines []ReceiptLine
	Cut   bool
}

// TextLine builds a plain text line.
func TextLine(text string) ReceiptLine {
	return ReceiptLine{Kind: ReceiptLineText, Text: text}
}

// BoldLine builds a bold text line.
func BoldLine(text string) ReceiptLine {
	return ReceiptLine{Kind: ReceiptLineText, Text: text, Bold: true}
}

// ImageLine builds an image reference line.
func ImageLine(url string, kind ReceiptImageKind) ReceiptLine {
	return ReceiptLine{Kind: ReceiptLineImage, ImageURL: url, ImageKind: kind}
}
