package surface

import (
	"encoding/json"
	"io"

	"github.com/normscope/normscope/pkg/report"
)

// JSONRenderer marshals a report document to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, doc *report.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
