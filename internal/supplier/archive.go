package supplier

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// unpackArchive достаёт первый файл из zip-архива поставщика.
// Архив остатков всегда содержит единственную таблицу.
func unpackArchive(data []byte) (string, []byte, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("opening archive: %w", err)
	}
	for _, f := range zipReader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", nil, fmt.Errorf("opening archive entry %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", nil, fmt.Errorf("reading archive entry %s: %w", f.Name, err)
		}
		return f.Name, content, nil
	}
	return "", nil, fmt.Errorf("archive has no files")
}
