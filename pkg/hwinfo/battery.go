package hwinfo

import (
	"context"
	"fmt"

	"github.com/distatus/battery"
)

// hwCollectBattery reports charge state on battery-powered hosts. Desktops
// and servers simply have no battery, so a nil record is the common case.
func hwCollectBattery(ctx context.Context, opts Options) *BatteryInfo {
	bats, err := battery.GetAll()
	if err != nil {
		// Per-battery errors still deliver the readable entries; anything
		// else means no battery subsystem at all.
		if _, partial := err.(battery.Errors); !partial {
			opts.logger().Debug("battery detection failed", "err", err)
			return nil
		}
	}

	for _, bat := range bats {
		if bat == nil || bat.Full <= 0 {
			continue
		}
		return hwBatteryInfo(bat)
	}
	return nil
}

func hwBatteryInfo(bat *battery.Battery) *BatteryInfo {
	info := &BatteryInfo{
		Percent: hwClampPercent(bat.Current / bat.Full * 100),
		Plugged: hwBatteryPlugged(bat.State.Raw),
	}

	switch {
	case bat.State.Raw == battery.Charging:
		info.TimeLeft = "Charging"
	case bat.State.Raw == battery.Full, bat.State.Raw == battery.Idle:
		info.TimeLeft = "Unlimited"
	case bat.State.Raw == battery.Discharging && bat.ChargeRate > 0:
		secs := int64(bat.Current / bat.ChargeRate * 3600)
		info.TimeLeft = hwFormatBatterySeconds(secs)
		info.TimeLeftSeconds = hwPtr(secs)
	default:
		info.TimeLeft = "Unknown"
	}
	return info
}

func hwBatteryPlugged(state battery.AgnosticState) bool {
	switch state {
	case battery.Charging, battery.Full, battery.Idle:
		return true
	}
	return false
}

// hwFormatBatterySeconds renders a runtime estimate as "3h 24m".
func hwFormatBatterySeconds(secs int64) string {
	if secs < 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%dh %dm", secs/3600, secs%3600/60)
}
