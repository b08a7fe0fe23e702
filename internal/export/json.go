package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// FileName is the default export name: gitscore-<login>-<unix millis>.<ext>.
func FileName(login, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d.%s", Source, login, now.UnixMilli(), ext)
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// WriteFile writes data to path, or to stdout when path is "-".
func WriteFile(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
