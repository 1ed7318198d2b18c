package export

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// TOMLFormatter writes the snapshot as a TOML document. Absent sections
// are omitted entirely; TOML has no null.
type TOMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TOMLFormatter) Format(w *bytes.Buffer, snap *hwinfo.Snapshot) error {
	return toml.NewEncoder(w).Encode(snap)
}

func init() {
	Register(".toml", func() Formatter {
		return &TOMLFormatter{}
	})
}

// Ensure TOMLFormatter implements Formatter.
var _ Formatter = (*TOMLFormatter)(nil)
