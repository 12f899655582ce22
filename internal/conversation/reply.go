package conversation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ReplyKind discriminates a structured reply
type ReplyKind int

const (
	// KindResponse is human-readable text. Any unrecognised type maps here.
	KindResponse ReplyKind = iota
	// KindCommand is an executable shell command
	KindCommand
)

func (k ReplyKind) String() string {
	if k == KindCommand {
		return "command"
	}
	return "response"
}

// Reply is the parsed form of the model's {type, response} contract
type Reply struct {
	Kind ReplyKind
	Text string
	// Type is the raw discriminator as sent by the model
	Type string
}

// IsCommand reports whether the reply proposes a command
func (r Reply) IsCommand() bool {
	return r.Kind == KindCommand
}

// DeserializeError is returned when a reply does not match the contract
type DeserializeError struct {
	Raw string
	Err error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("failed to deserialize reply: %v", e.Err)
}

func (e *DeserializeError) Unwrap() error { return e.Err }

type wireReply struct {
	Type     *string `json:"type"`
	Response *string `json:"response"`
}

// ParseReply decodes raw model output into a Reply. Both fields are required;
// only "command" is treated specially.
func ParseReply(raw string) (Reply, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	var w wireReply
	if err := dec.Decode(&w); err != nil {
		return Reply{}, &DeserializeError{Raw: raw, Err: err}
	}
	if strings.TrimSpace(raw[dec.InputOffset():]) != "" {
		return Reply{}, &DeserializeError{Raw: raw, Err: errors.New("trailing data after reply object")}
	}
	if w.Type == nil {
		return Reply{}, &DeserializeError{Raw: raw, Err: errors.New("missing field `type`")}
	}
	if w.Response == nil {
		return Reply{}, &DeserializeError{Raw: raw, Err: errors.New("missing field `response`")}
	}

	kind := KindResponse
	if *w.Type == "command" {
		kind = KindCommand
	}

	return Reply{Kind: kind, Text: *w.Response, Type: *w.Type}, nil
}
