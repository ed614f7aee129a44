package tools

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStdio(t *testing.T, reg *Registry, input string) []stdioResponse {
	t.Helper()
	var out bytes.Buffer
	srv := NewStdioServer(reg, strings.NewReader(input), &out, nil)
	require.NoError(t, srv.Run(context.Background()))

	var responses []stdioResponse
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp stdioResponse
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	return responses
}

func TestStdioServer(t *testing.T) {
	reg := NewRegistry(time.Second, nil)
	reg.Register(newEchoTool(t))

	input := strings.Join([]string{
		`{"id":1,"tool":"echo","arguments":{"name":"자이"}}`,
		``,
		`not json`,
		`{"id":2,"tool":"nope","arguments":{}}`,
		`{"id":3,"arguments":{}}`,
		`{"id":4,"tool":"tools/list"}`,
	}, "\n")

	responses := runStdio(t, reg, input)
	require.Len(t, responses, 5)

	assert.Equal(t, float64(1), responses[0].ID)
	assert.Empty(t, responses[0].Error)
	result, ok := responses[0].Result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "자이", result["name"])

	assert.Contains(t, responses[1].Error, "malformed request")

	assert.Equal(t, float64(2), responses[2].ID)
	assert.Contains(t, responses[2].Error, "tool not found")

	assert.Contains(t, responses[3].Error, "missing tool name")

	assert.Equal(t, float64(4), responses[4].ID)
	listing, ok := responses[4].Result.([]any)
	require.True(t, ok)
	assert.Len(t, listing, 1)
}

func TestStdioServerEOF(t *testing.T) {
	reg := NewRegistry(time.Second, nil)
	srv := NewStdioServer(reg, strings.NewReader(""), &bytes.Buffer{}, nil)
	assert.NoError(t, srv.Run(context.Background()))
}
