package clipboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct{}

func (failingSink) Write(string) error { return errors.New("permission denied") }

type recordingSink struct{ got []string }

func (r *recordingSink) Write(text string) error {
	r.got = append(r.got, text)
	return nil
}

func TestHXTrigger(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, HXTrigger{W: rec}.Write("line one\n\"quoted\""))

	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &payload))
	assert.Equal(t, "line one\n\"quoted\"", payload[TriggerEvent]["text"])
}

func TestHXTrigger_NonASCII(t *testing.T) {
	text := "Café – ✓ naïve “quotes” 🚀"
	rec := httptest.NewRecorder()
	require.NoError(t, HXTrigger{W: rec}.Write(text))

	header := rec.Header().Get("HX-Trigger")
	for i := 0; i < len(header); i++ {
		require.Less(t, header[i], byte(0x80), "header byte %d is not ASCII: %q", i, header)
	}
	assert.Contains(t, header, `Caf\u00e9`)
	assert.Contains(t, header, `\ud83d\ude80`, "astral runes use surrogate pairs")

	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(header), &payload))
	assert.Equal(t, text, payload[TriggerEvent]["text"])
}

func TestCopy(t *testing.T) {
	logger := log.New(io.Discard)

	r := &recordingSink{}
	assert.True(t, Copy(r, logger, "prompt"))
	assert.Equal(t, []string{"prompt"}, r.got)

	assert.False(t, Copy(failingSink{}, logger, "prompt"))
	assert.False(t, Copy(failingSink{}, nil, "prompt"))
}
