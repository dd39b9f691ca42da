package monitor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBatteryReader(t *testing.T) {
	reader := NewBatteryReader()
	if reader.PowerSupplyPath != "/sys/class/power_supply" {
		t.Errorf("PowerSupplyPath = %q, want %q", reader.PowerSupplyPath, "/sys/class/power_supply")
	}
}

func TestBatteryReaderMissingDirectory(t *testing.T) {
	reader := &BatteryReader{PowerSupplyPath: "/nonexistent/power_supply"}

	_, err := reader.Read()
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("Read() error = %v, want ErrNotAvailable", err)
	}
	if !IsComponentError(err, ErrorSourceBattery) {
		t.Error("expected a battery ComponentError")
	}
}

func TestBatteryReaderWithMockBatteries(t *testing.T) {
	tmpDir := t.TempDir()

	bat1 := mkdir(t, tmpDir, "BAT1")
	writeFile(t, bat1, "type", "Battery")
	writeFile(t, bat1, "status", "Charging")
	writeFile(t, bat1, "energy_now", "20000000")
	writeFile(t, bat1, "energy_full", "40000000")

	bat0 := mkdir(t, tmpDir, "BAT0")
	writeFile(t, bat0, "type", "Battery")
	writeFile(t, bat0, "present", "1")
	writeFile(t, bat0, "status", "Discharging")
	writeFile(t, bat0, "capacity", "75")
	writeFile(t, bat0, "technology", "Li-ion")
	writeFile(t, bat0, "manufacturer", "TestMfr")
	writeFile(t, bat0, "model_name", "TestModel")

	ac := mkdir(t, tmpDir, "AC")
	writeFile(t, ac, "type", "Mains")
	writeFile(t, ac, "online", "1")

	mouse := mkdir(t, tmpDir, "hidpp_battery_0")
	writeFile(t, mouse, "type", "Battery")
	writeFile(t, mouse, "scope", "Device")
	writeFile(t, mouse, "capacity", "10")

	absent := mkdir(t, tmpDir, "BAT2")
	writeFile(t, absent, "type", "Battery")
	writeFile(t, absent, "present", "0")

	reader := &BatteryReader{PowerSupplyPath: tmpDir}
	got, err := reader.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []BatteryInfo{
		{Name: "BAT0", Status: "Discharging", Capacity: 75, Manufacturer: "TestMfr", ModelName: "TestModel", Technology: "Li-ion"},
		{Name: "BAT1", Status: "Charging", Capacity: 50},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestBatteryReaderNoBatteries(t *testing.T) {
	tmpDir := t.TempDir()
	ac := mkdir(t, tmpDir, "AC")
	writeFile(t, ac, "type", "Mains")

	reader := &BatteryReader{PowerSupplyPath: tmpDir}
	if _, err := reader.Read(); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("Read() error = %v, want ErrNotAvailable", err)
	}
}

func mkdir(t *testing.T, parent, name string) string {
	t.Helper()
	dir := filepath.Join(parent, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
