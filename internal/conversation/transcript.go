package conversation

import "strings"

// Entry prefixes recorded in a transcript
const (
	PrefixUser           = "User: "
	PrefixAI             = "AI: "
	PrefixInterpretation = "AI Interpretation: "
)

// Transcript is the append-only log of a session. Entries are never
// rewritten or removed.
type Transcript struct {
	entries []string
}

// NewTranscript creates an empty transcript
func NewTranscript() *Transcript {
	return &Transcript{entries: []string{}}
}

// AddUser records user input
func (t *Transcript) AddUser(input string) {
	t.entries = append(t.entries, PrefixUser+input)
}

// AddAI records the payload of a structured reply
func (t *Transcript) AddAI(text string) {
	t.entries = append(t.entries, PrefixAI+text)
}

// AddInterpretation records the model's reading of command output
func (t *Transcript) AddInterpretation(text string) {
	t.entries = append(t.entries, PrefixInterpretation+text)
}

// Len returns the number of entries
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries in order
func (t *Transcript) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

// Join joins all entries with newlines
func (t *Transcript) Join() string {
	return strings.Join(t.entries, "\n")
}

// Query builds the prompt sent to the completion client: the whole
// transcript followed by input on its own line. When input was just recorded
// with AddUser it appears twice.
func (t *Transcript) Query(input string) string {
	return t.Join() + "\n" + input
}
