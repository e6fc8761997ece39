package contentutil

// binarySampleSize defines the number of bytes to scan for null bytes when
// detecting binary content. Matches Git's heuristic of 8000 bytes.
const binarySampleSize = 8000

// IsBinaryContent checks if content bytes contain binary data by looking for
// null bytes. It handles UTF-16 and UTF-32 BOMs specially to avoid false
// positives. Pure function with no state.
func IsBinaryContent(content []byte) bool {
	if len(content) >= 2 {
		if (content[0] == 0xFF && content[1] == 0xFE) ||
			(content[0] == 0xFE && content[1] == 0xFF) {
			return false // UTF-16 BOM - treat as text, skip null check
		}
	}
	if len(content) >= 4 {
		if (content[0] == 0xFF && content[1] == 0xFE && content[2] == 0x00 && content[3] == 0x00) ||
			(content[0] == 0x00 && content[1] == 0x00 && content[2] == 0xFE && content[3] == 0xFF) {
			return false // UTF-32 BOM - treat as text, skip null check
		}
	}

	sampleSize := min(len(content), binarySampleSize)
	for i := range sampleSize {
		if content[i] == 0 {
			return true
		}
	}
	return false
}
