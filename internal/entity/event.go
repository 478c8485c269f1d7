package entity

// Event describes one election report document. It is built once per
// document and copied onto every descendant row. Fields that never match
// stay empty rather than nil.
type Event struct {
	Date         string
	ElectionType string
	County       string
	TotalBallots string
	Party        string

	// SourceFile is the base name of the document the event came from.
	SourceFile string
}
