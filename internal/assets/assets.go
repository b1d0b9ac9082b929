// Package assets selects static files under the asset directory and copies
// them into a build.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/maruel/natural"
)

// File is one selected asset.
type File struct {
	Path        string // absolute path on disk
	RelPath     string // slash path relative to the asset root
	Size        int64
	ContentHash string // SHA-256 hex digest
}

// Config controls Walk.
type Config struct {
	RootDir string
	Include []string
	Exclude []string
}

// Walk returns the files under cfg.RootDir that pass the filters, sorted by
// relative path in natural order ("shot2" before "shot10"). A missing root yields no files.
func Walk(cfg Config) ([]File, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if isDefaultExcluded(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !Selected(rel, cfg.Include, cfg.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hash, err := hashFile(path)
		if err != nil {
			return err
		}
		files = append(files, File{Path: path, RelPath: rel, Size: info.Size(), ContentHash: hash})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: walking %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return natural.Less(files[i].RelPath, files[j].RelPath) })
	return files, nil
}

// Copy writes files under destDir, keeping their relative layout.
func Copy(files []File, destDir string) error {
	for _, f := range files {
		dst := filepath.Join(destDir, filepath.FromSlash(f.RelPath))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := copyFile(f.Path, dst); err != nil {
			return fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// fingerprintSpace namespaces build fingerprints.
var fingerprintSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ziadkadry99/folio/build"))

// Fingerprint derives a stable build id from the asset set and any extra
// inputs (the content document, the stylesheet). The same inputs always give
// the same id.
func Fingerprint(files []File, extra ...[]byte) string {
	h := sha256.New()
	for _, f := range files {
		io.WriteString(h, f.RelPath)
		io.WriteString(h, f.ContentHash)
	}
	for _, e := range extra {
		h.Write(e)
	}
	return uuid.NewSHA1(fingerprintSpace, h.Sum(nil)).String()
}

func hashFile(path string) (string, error) {
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
