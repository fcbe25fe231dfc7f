package corpus

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/vecna/rush"
)

// ComputeHash computes a hash of raw file content using xxhash.
// It identifies content for display and change detection; the extraction
// cache uses its own collision-resistant key.
func ComputeHash(content []byte) string {
	return formatHash(xxhash.Sum64(content))
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// writeFingerprint feeds one file's identity into a corpus fingerprint.
func writeFingerprint(h *xxhash.Digest, entry rush.FileEntry) {
	_, _ = h.WriteString(entry.Name)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(strconv.FormatInt(entry.Size, 10))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(strconv.FormatInt(entry.ModifiedAt.UnixNano(), 10))
	_, _ = h.WriteString("\n")
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
