package storage

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"
)

// FileInfo holds the derived metadata for an uploaded attachment.
type FileInfo struct {
	// Type is the primary segment of the MIME type ("image" for "image/png").
	Type string
	// SizeKB is the byte count divided by 1024, rounded, stringified.
	SizeKB string
	// StorageName is the unique name the blob is stored under.
	StorageName string
}

// Classify derives attachment metadata from an upload. The storage name is
// {randomHex}-{epochMillis}.{ext}; the random component makes collisions
// negligible, so there is no detection retry.
func Classify(byteCount int64, mimeType, originalName string) FileInfo {
	return FileInfo{
		Type:        fileType(mimeType),
		SizeKB:      strconv.Itoa(sizeKB(byteCount)),
		StorageName: storageName(originalName),
	}
}

func fileType(mimeType string) string {
	if idx := strings.Index(mimeType, "/"); idx >= 0 {
		return mimeType[:idx]
	}
	return mimeType
}

func sizeKB(byteCount int64) int {
	return int(math.Round(float64(byteCount) / 1024))
}

func storageName(originalName string) string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return hex.EncodeToString(buf) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "." + extension(originalName)
}

func extension(fileName string) string {
	if idx := strings.LastIndex(fileName, "."); idx >= 0 {
		return fileName[idx+1:]
	}
	return ""
}
