package capture

import (
	"mime"
	"os"
	"path/filepath"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
)

// LoadFiles reads the selected files into evidence items, preserving
// selection order. Type and size are not validated here; the backend
// owns that.
func LoadFiles(paths []string) ([]domain.EvidenceItem, error) {
	items := make([]domain.EvidenceItem, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, e.Wrap("capture.LoadFiles", err)
		}

		mt := mime.TypeByExtension(filepath.Ext(p))
		if mt == "" {
			mt = "application/octet-stream"
		}

		items = append(items, domain.EvidenceItem{
			Name: filepath.Base(p),
			MIME: mt,
			Data: data,
		})
	}
	return items, nil
}
