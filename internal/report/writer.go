package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/complyscan/complyscan/internal/types"
)

// Save writes the JSON and Markdown artifacts into outputDir and
// returns the paths written. Failures are reported to the caller,
// which logs them; a failed write never invalidates the audit itself.
func Save(rep *types.AuditReport, outputDir string) (jsonPath, mdPath string, err error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	base := fmt.Sprintf("latest-%s-audit", rep.Taxonomy)
	jsonPath = filepath.Join(outputDir, base+".json")
	mdPath = filepath.Join(outputDir, base+".md")

	jf, err := os.Create(jsonPath)
	if err != nil {
		return "", "", fmt.Errorf("create %s: %w", jsonPath, err)
	}
	defer jf.Close()
	if err := WriteJSON(jf, rep); err != nil {
		return "", "", fmt.Errorf("write %s: %w", jsonPath, err)
	}

	mf, err := os.Create(mdPath)
	if err != nil {
		return "", "", fmt.Errorf("create %s: %w", mdPath, err)
	}
	defer mf.Close()
	if err := WriteMarkdown(mf, rep); err != nil {
		return "", "", fmt.Errorf("write %s: %w", mdPath, err)
	}
	return jsonPath, mdPath, nil
}
