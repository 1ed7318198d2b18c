package export

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// YAMLFormatter writes the snapshot as a YAML document.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, snap *hwinfo.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	factory := func() Formatter { return &YAMLFormatter{} }
	Register(".yaml", factory)
	Register(".yml", factory)
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
