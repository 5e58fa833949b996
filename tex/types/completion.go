package types

// Candidate is one user-facing completion result. Token is what gets inserted
// (always the label); Display is "<abbreviation> <shortened secondary text>".
type Candidate struct {
	Token   string `json:"token"`
	Display string `json:"display"`
}

// CompletionItem is the transport-neutral completion shape handed to protocol
// adapters (LSP, CLI). Fields map one-to-one onto LSP CompletionItem fields.
type CompletionItem struct {
	Label         string `json:"label"`
	Kind          string `json:"kind"` // reference, citation
	InsertText    string `json:"insert_text"`
	Detail        string `json:"detail,omitempty"`
	Documentation string `json:"documentation,omitempty"`
	SortText      string `json:"sort_text,omitempty"`
}
