package conversation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply_Command(t *testing.T) {
	reply, err := ParseReply(`{"type":"command","response":"echo hi"}`)
	require.NoError(t, err)

	assert.True(t, reply.IsCommand())
	assert.Equal(t, KindCommand, reply.Kind)
	assert.Equal(t, "echo hi", reply.Text)
	assert.Equal(t, "command", reply.Type)
}

func TestParseReply_Response(t *testing.T) {
	reply, err := ParseReply(`{"type":"response","response":"hello"}`)
	require.NoError(t, err)

	assert.False(t, reply.IsCommand())
	assert.Equal(t, "hello", reply.Text)
}

func TestParseReply_UnknownTypeIsResponse(t *testing.T) {
	for _, typ := range []string{"comand", "Command", "script", ""} {
		reply, err := ParseReply(`{"type":"` + typ + `","response":"x"}`)
		require.NoError(t, err, typ)
		assert.Equal(t, KindResponse, reply.Kind, typ)
		assert.Equal(t, typ, reply.Type)
	}
}

func TestParseReply_ExtraFieldsIgnored(t *testing.T) {
	reply, err := ParseReply(`{"type":"command","response":"ls","reason":"list"}`)
	require.NoError(t, err)
	assert.Equal(t, "ls", reply.Text)
}

func TestParseReply_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json"},
		{"empty", ""},
		{"missing type", `{"response":"hi"}`},
		{"missing response", `{"type":"response"}`},
		{"wrong field type", `{"type":"response","response":42}`},
		{"array", `["command","ls"]`},
		{"null", `null`},
		{"trailing data", `{"type":"response","response":"a"} extra`},
		{"fenced", "```json\n{\"type\":\"response\",\"response\":\"a\"}\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReply(tt.raw)
			require.Error(t, err)

			var de *DeserializeError
			assert.True(t, errors.As(err, &de))
			assert.Equal(t, tt.raw, de.Raw)
		})
	}
}

func TestReplyKind_String(t *testing.T) {
	assert.Equal(t, "command", KindCommand.String())
	assert.Equal(t, "response", KindResponse.String())
}
