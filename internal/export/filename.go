package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DateSuffix returns the date portion in "02.01.2006" format.
func DateSuffix(t time.Time) string {
	return t.Format("02.01.2006")
}

// BuildBase returns base + "_" + date, the stem used for report files.
// A known report extension on base is stripped first.
func BuildBase(base string, t time.Time) string {
	base = TrimReportExt(base)
	return fmt.Sprintf("%s_%s", base, DateSuffix(t))
}

// TrimReportExt removes a trailing .csv or .txt from path.
func TrimReportExt(path string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".csv") || strings.EqualFold(ext, ".txt") {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
