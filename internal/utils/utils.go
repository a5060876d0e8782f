// Package utils provides small filesystem helpers shared by the commands.
package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// CopyFile copies src to dst, preserving the source's permission bits
// and modification time. Returns the number of bytes copied.
func CopyFile(src, dst string) (int64, error) {
	fi, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", src, err)
	}
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := os.Chtimes(dst, time.Now(), fi.ModTime()); err != nil {
		return n, fmt.Errorf("failed to set times on %s: %w", dst, err)
	}
	return n, nil
}
