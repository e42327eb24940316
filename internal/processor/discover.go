package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiscoveryError reports the wrong number of candidate input files in the
// lecture materials directory.
type DiscoveryError struct {
	Ext   string
	Found int
}

func (e *DiscoveryError) Error() string {
	if e.Found == 0 {
		return fmt.Sprintf("no %s file found", e.Ext)
	}
	return fmt.Sprintf("%d %s files found, expected exactly 1", e.Found, e.Ext)
}

// discoverLectureFiles finds exactly one slide deck (.pdf), one transcript
// (.vtt) and one timestamp list (.txt) in dir.
func discoverLectureFiles(dir string) (pdfPath, vttPath, txtPath string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", "", fmt.Errorf("read input dir: %w", err)
	}

	byExt := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		switch ext {
		case ".pdf", ".vtt", ".txt":
			byExt[ext] = append(byExt[ext], filepath.Join(dir, e.Name()))
		}
	}

	for _, ext := range []string{".pdf", ".vtt", ".txt"} {
		if len(byExt[ext]) != 1 {
			return "", "", "", &DiscoveryError{Ext: ext, Found: len(byExt[ext])}
		}
	}

	return byExt[".pdf"][0], byExt[".vtt"][0], byExt[".txt"][0], nil
}
