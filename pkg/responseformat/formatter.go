package responseformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// Output formats understood by Write and WriteResponse
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMsgPack = "msgpack"
)

// ErrUnsupportedFormat is returned for a format name Write does not know, or
// for text output of a value that has no text rendering
var ErrUnsupportedFormat = errors.New("unsupported output format")

// TextWriter is implemented by values that render themselves as a
// human-readable report
type TextWriter interface {
	WriteText(w io.Writer) error
}

// Formatter handles encoding and writing responses in text, JSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Write encodes data to w in the named format. An empty format means text.
func (f *Formatter) Write(w io.Writer, format string, data any) error {
	switch format {
	case "", FormatText:
		tw, ok := data.(TextWriter)
		if !ok {
			return fmt.Errorf("%w: %T has no text rendering", ErrUnsupportedFormat, data)
		}
		return tw.WriteText(w)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatMsgPack:
		return encodeMsgPack(w, data)
	default:
		return fmt.Errorf("%w: %q. Use '%s', '%s' or '%s'", ErrUnsupportedFormat, format, FormatText, FormatJSON, FormatMsgPack)
	}
}

// WriteResponse writes the response in the appropriate format based on the query parameter.
// JSON is the default. format=msgpack selects MessagePack and format=text selects the
// plain text report when data has one.
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, data any, headers map[string]string) error {
	// Set any provided headers first
	for k, v := range headers {
		w.Header().Set(k, v)
	}

	// Always set CORS header
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch req.URL.Query().Get("format") {
	case FormatMsgPack:
		w.Header().Set("Content-Type", "application/x-msgpack")
		return encodeMsgPack(w, data)
	case FormatText:
		if tw, ok := data.(TextWriter); ok {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			return tw.WriteText(w)
		}
	}

	// Default to JSON format (when no format parameter or any other value)
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error body with the given status code
func (f *Formatter) WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

// ErrorResponse is the body of a failed API request
type ErrorResponse struct {
	Error string `json:"error"`
}

func encodeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}
