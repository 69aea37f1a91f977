package nativeapp

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMessage_ReadMessage(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteMessage(&buf, request{Action: ActionCSSEnable, Target: "userChrome"}))
	require.NoError(t, WriteMessage(&buf, request{Action: ActionVersion}))

	assert.Equal(t, uint32(len(`{"action":"css:enable","target":"userChrome"}`)), binary.LittleEndian.Uint32(buf.Bytes()[:4]))

	first, err := ReadMessage(&buf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"css:enable","target":"userChrome"}`, string(first))

	second, err := ReadMessage(&buf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"debug:version"}`, string(second))

	_, err = ReadMessage(&buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadMessage_RejectsOversizedFrame(t *testing.T) {
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], MaxMessageSize+1)

	_, err := ReadMessage(bytes.NewReader(header[:]))

	assert.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestReadMessage_TruncatedBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, request{Action: ActionColors}))
	truncated := buf.Bytes()[:buf.Len()-2]

	_, err := ReadMessage(bytes.NewReader(truncated))

	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
