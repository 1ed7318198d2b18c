package hwinfo

import "context"

// hwCollectBoard reports the motherboard vendor and product. Unreadable
// boards degrade to the defined "N/A" placeholder, never to an empty
// string.
func hwCollectBoard(ctx context.Context, opts Options) string {
	if board := hwReadBoard(ctx, opts); board != "" {
		return board
	}
	return BoardUnknown
}
