//go:build windows

package hwinfo

import (
	"context"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

// win32BaseBoard mirrors the WMI class of the same name.
type win32BaseBoard struct {
	Manufacturer string
	Product      string
}

func hwReadBoard(ctx context.Context, opts Options) string {
	var boards []win32BaseBoard
	if err := wmi.Query("SELECT Manufacturer, Product FROM Win32_BaseBoard", &boards); err != nil {
		opts.logger().Debug("wmi baseboard query failed", "err", err)
		return ""
	}
	for _, b := range boards {
		manufacturer := strings.TrimSpace(b.Manufacturer)
		product := strings.TrimSpace(b.Product)
		if manufacturer == "" || product == "" {
			continue
		}
		return manufacturer + " " + product
	}
	return ""
}
