package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// BatteryInfo contains information about a single battery.
type BatteryInfo struct {
	// Name is the power supply name (e.g., "BAT0", "BAT1").
	Name string
	// Status is the charging status ("Charging", "Discharging", "Full", "Not charging").
	Status string
	// Capacity is the current charge level as a percentage (0-100).
	Capacity int
	// Manufacturer is the battery manufacturer.
	Manufacturer string
	// ModelName is the battery model name.
	ModelName string
	// Technology is the battery technology (e.g., "Li-ion", "Li-poly").
	Technology string
}

// BatteryReader reads battery information from /sys/class/power_supply.
type BatteryReader struct {
	PowerSupplyPath string
}

// NewBatteryReader creates a BatteryReader with the default sysfs path.
func NewBatteryReader() *BatteryReader {
	return &BatteryReader{
		PowerSupplyPath: "/sys/class/power_supply",
	}
}

// Read returns every present battery, sorted by name. A system without a
// power_supply class or without batteries yields ErrNotAvailable.
func (r *BatteryReader) Read() ([]BatteryInfo, error) {
	entries, err := os.ReadDir(r.PowerSupplyPath)
	if os.IsNotExist(err) {
		return nil, NewComponentError(ErrorSourceBattery, ErrNotAvailable)
	}
	if err != nil {
		return nil, NewComponentError(ErrorSourceBattery, fmt.Errorf("reading %s: %w", r.PowerSupplyPath, err))
	}

	var batteries []BatteryInfo
	for _, entry := range entries {
		devicePath := filepath.Join(r.PowerSupplyPath, entry.Name())
		supplyType, err := readTrimmed(filepath.Join(devicePath, "type"))
		if err != nil || !strings.EqualFold(supplyType, "battery") {
			continue
		}
		// Peripheral batteries (mice, headsets) report scope "Device".
		if scope, err := readTrimmed(filepath.Join(devicePath, "scope")); err == nil && strings.EqualFold(scope, "device") {
			continue
		}
		if present, err := readTrimmed(filepath.Join(devicePath, "present")); err == nil && present == "0" {
			continue
		}
		batteries = append(batteries, r.readBattery(devicePath, entry.Name()))
	}

	if len(batteries) == 0 {
		return nil, NewComponentError(ErrorSourceBattery, ErrNotAvailable)
	}
	sort.Slice(batteries, func(i, j int) bool { return batteries[i].Name < batteries[j].Name })
	return batteries, nil
}

// readBattery reads battery information from a power supply device path.
func (r *BatteryReader) readBattery(devicePath, name string) BatteryInfo {
	battery := BatteryInfo{Name: name}

	battery.Status, _ = readTrimmed(filepath.Join(devicePath, "status"))
	battery.Manufacturer, _ = readTrimmed(filepath.Join(devicePath, "manufacturer"))
	battery.ModelName, _ = readTrimmed(filepath.Join(devicePath, "model_name"))
	battery.Technology, _ = readTrimmed(filepath.Join(devicePath, "technology"))

	if s, err := readTrimmed(filepath.Join(devicePath, "capacity")); err == nil {
		if capacity, err := strconv.Atoi(s); err == nil {
			battery.Capacity = capacity
		}
	} else {
		battery.Capacity = capacityFromEnergy(devicePath)
	}

	return battery
}

// capacityFromEnergy derives a percentage from energy_* or charge_* files
// for drivers that do not expose capacity directly.
func capacityFromEnergy(devicePath string) int {
	for _, prefix := range []string{"energy", "charge"} {
		now, errNow := readUint(filepath.Join(devicePath, prefix+"_now"))
		full, errFull := readUint(filepath.Join(devicePath, prefix+"_full"))
		if errNow == nil && errFull == nil && full > 0 {
			return int(now * 100 / full)
		}
	}
	return 0
}

func readUint(path string) (uint64, error) {
	s, err := readTrimmed(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(s, 10, 64)
}
