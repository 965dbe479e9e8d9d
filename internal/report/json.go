package report

import (
	"encoding/json"
	"io"

	"github.com/complyscan/complyscan/internal/types"
)

// WriteJSON serializes the full report with stable field names.
func WriteJSON(w io.Writer, rep *types.AuditReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
