package export

import (
	"bytes"
	"encoding/json"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// JSONFormatter writes the snapshot as one indented JSON document. This is
// the lossless interchange format; nothing is reshaped or omitted.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, snap *hwinfo.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func init() {
	Register(".json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
