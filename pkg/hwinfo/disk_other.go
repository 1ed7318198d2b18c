//go:build !linux

package hwinfo

// hwClassifyByRotational has no rotational flag to read off-Linux; the
// path heuristics in hwClassifyDisk are the only signal.
func hwClassifyByRotational(device string) DiskType {
	return DiskUnknown
}
