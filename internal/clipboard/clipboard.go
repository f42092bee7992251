// Package clipboard delivers rendered prompts to the user's clipboard.
package clipboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf16"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/joestump/devguide/internal/metrics"
)

// Sink accepts plain text destined for a clipboard. Writes are one-way.
type Sink interface {
	Write(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// TriggerEvent is the HX-Trigger event the browser listens for.
const TriggerEvent = "copyToClipboard"

// HXTrigger asks the browser to perform the write by setting an HX-Trigger
// response header that htmx dispatches as a DOM event.
type HXTrigger struct {
	W http.ResponseWriter
}

func (h HXTrigger) Write(text string) error {
	payload, err := json.Marshal(map[string]map[string]string{
		TriggerEvent: {"text": text},
	})
	if err != nil {
		return err
	}
	h.W.Header().Set("HX-Trigger", asciiJSON(payload))
	return nil
}

// asciiJSON rewrites every non-ASCII rune of a JSON document as a \uXXXX
// escape. Browsers read response headers as Latin-1, so raw UTF-8 bytes in
// the header would reach the page as mojibake.
func asciiJSON(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, r := range string(b) {
		if r < 0x80 {
			sb.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, hi, lo)
			continue
		}
		fmt.Fprintf(&sb, `\u%04x`, r)
	}
	return sb.String()
}

// Copy writes text to sink. It is best effort: a failure is logged and
// counted, and Copy reports whether the write went through.
func Copy(sink Sink, logger *log.Logger, text string) bool {
	if err := sink.Write(text); err != nil {
		metrics.PromptCopiesTotal.WithLabelValues("error").Inc()
		if logger != nil {
			logger.Warn("clipboard write failed", "err", err, "bytes", len(text))
		}
		return false
	}
	metrics.PromptCopiesTotal.WithLabelValues("ok").Inc()
	return true
}
