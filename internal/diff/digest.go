package diff

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	rerrors "github.com/relkit/cli/internal/errors"
)

// digestTree walks an artifact directory and returns a mapping of
// slash-separated relative paths to SHA-256 content digests.
func digestTree(dir string) (map[string]string, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, rerrors.NewNotFoundError("artifact directory does not exist", dir, "")
		}
		return nil, rerrors.NewIOError("reading artifact directory", dir, "", err)
	}

	digests := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if isInstructionFile(rel) {
			return nil
		}

		sum, err := digestFile(path)
		if err != nil {
			return err
		}
		digests[rel] = sum
		return nil
	})
	if err != nil {
		return nil, rerrors.NewIOError("digesting artifact directory", dir, "", err)
	}

	return digests, nil
}

// digestFile computes the SHA-256 digest of a single file.
func digestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
