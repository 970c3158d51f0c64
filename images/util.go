package images

import (
	"crypto/md5"
	"fmt"
	"image"
)

// ComputeChecksum generates a deterministic checksum for a pixel buffer, used to verify
// that repeated tints from the same source produce identical output.
//
// Arguments:
// - pix: The raw pixel bytes.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for an empty buffer.
//
// Example:
//
// ```go
//
//	checksum := ComputeChecksum(frame.Pix)
//	fmt.Printf("Frame checksum: %s\n", checksum)
//
// ```
func ComputeChecksum(pix []byte) string {
	if len(pix) == 0 {
		return "empty"
	}

	hash := md5.New()
	hash.Write(pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// ComputeImageChecksum is ComputeChecksum over the packed pixels of img.
func ComputeImageChecksum(img *image.NRGBA) string {
	if img == nil {
		return "empty"
	}
	return ComputeChecksum(ToNRGBA(img).Pix)
}
