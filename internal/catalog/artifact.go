package catalog

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// ArtifactName returns the output file name for a subject
func ArtifactName(subject Subject) string {
	return string(subject) + "_catalog.txt"
}

// WriteArtifact writes each entry as a ">name" line followed by its
// description line. Text is written verbatim, without escaping.
func WriteArtifact(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(">" + e.Name + "\n" + e.Description + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveArtifact creates or truncates dir/{SUBJECT}_catalog.txt and returns its path
func SaveArtifact(dir string, subject Subject, entries []Entry) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ArtifactName(subject))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := WriteArtifact(f, entries); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
