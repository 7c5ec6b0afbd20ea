package profile

import (
	"fmt"
	"os"
	"path/filepath"
)

// PhotoStore writes uploaded photos under a flat directory, one file per
// NIP. Re-uploading replaces the previous photo.
type PhotoStore struct {
	Dir string
}

func NewPhotoStore(dir string) *PhotoStore {
	return &PhotoStore{Dir: dir}
}

// Save stores the photo blob and returns the path recorded on the employee
// row.
func (p *PhotoStore) Save(nip string, data []byte) (string, error) {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(p.Dir, fmt.Sprintf("%s.jpg", nip))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
