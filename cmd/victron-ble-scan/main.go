// victron-ble-scan — Victron Instant Readout BLE advertisement scanner
//
// Scans for Victron Energy Instant Readout advertisements, decrypts them
// with per-device keys, and prints the decoded readings.
//
// Build (native):
//   go build -o victron-ble-scan ./cmd/victron-ble-scan
//
// Usage:
//   sudo ./victron-ble-scan -keys devices.keys
//   sudo ./victron-ble-scan -keys devices.keys -duration 30s -json
//
// devices.keys is a text file of "MAC=hexkey" lines, one device per line.
//
// Requires: Linux with BlueZ or macOS with CoreBluetooth. Must run as root
// (sudo) on Linux for BLE scanning privileges.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"tinygo.org/x/bluetooth"

	"github.com/chadmayfield/victron-ble/cipher"
	"github.com/chadmayfield/victron-ble/keyring"
	"github.com/chadmayfield/victron-ble/victron"
)

// version is set at build time via -ldflags "-X main.version=v1.0.0"
var version = "dev"

// victronManufacturerID is the Bluetooth SIG company identifier Victron
// broadcasts Instant Readout data under.
const victronManufacturerID uint16 = 0x02E1

// jsonReading is the flattened, JSON-friendly projection of a victron.Reading.
type jsonReading struct {
	MAC       string    `json:"mac"`
	RSSI      int16     `json:"rssi"`
	ModelID   uint16    `json:"model_id"`
	ModelName string    `json:"model_name"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Fields    any       `json:"fields"`
}

// tracker deduplicates re-broadcast advertisements by (MAC, IV) — a
// bounded cache, cleared when it reaches 1000 entries,
// per the scanner-side de-duplication the core decoder leaves to its
// caller.
type tracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newTracker() *tracker {
	return &tracker{seen: make(map[string]struct{})}
}

func (t *tracker) isNew(mac string, iv uint16) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := fmt.Sprintf("%s:%d", mac, iv)
	if _, ok := t.seen[key]; ok {
		return false
	}
	if len(t.seen) >= 1000 {
		t.seen = make(map[string]struct{})
	}
	t.seen[key] = struct{}{}
	return true
}

func loadKeyring(path string) (*keyring.Keyring, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keys file: %w", err)
	}
	defer f.Close()

	kr := keyring.New()
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		mac, hexKey, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("keys file line %d: expected MAC=HEXKEY", lineNum)
		}
		raw, err := hex.DecodeString(strings.TrimSpace(hexKey))
		if err != nil || len(raw) != cipher.KeyLen {
			return nil, fmt.Errorf("keys file line %d: key must be %d hex bytes", lineNum, cipher.KeyLen)
		}
		var key [cipher.KeyLen]byte
		copy(key[:], raw)
		kr.Set(strings.TrimSpace(mac), key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read keys file: %w", err)
	}
	return kr, nil
}

func printReading(log *logrus.Logger, reading victron.Reading, mac string, rssi int16, jsonOut bool) {
	var fields any
	switch reading.Kind {
	case victron.DeviceBatteryMonitor:
		fields = reading.BatteryMonitor
	case victron.DeviceBatterySense:
		fields = reading.BatterySense
	case victron.DeviceDcEnergyMeter:
		fields = reading.DcEnergyMeter
	case victron.DeviceDcDcConverter:
		fields = reading.DcDcConverter
	case victron.DeviceAcCharger:
		fields = reading.AcCharger
	case victron.DeviceSolarCharger:
		fields = reading.SolarCharger
	case victron.DeviceInverter:
		fields = reading.Inverter
	case victron.DeviceVEBus:
		fields = reading.VEBus
	case victron.DeviceMultiRS:
		fields = reading.MultiRS
	case victron.DeviceOrionXS:
		fields = reading.OrionXS
	case victron.DeviceLynxSmartBMS:
		fields = reading.LynxSmartBMS
	case victron.DeviceSmartLithium:
		fields = reading.SmartLithium
	case victron.DeviceSmartBatteryProtect:
		fields = reading.SmartBatteryProtect
	}

	if jsonOut {
		b, _ := json.Marshal(jsonReading{
			MAC:       mac,
			RSSI:      rssi,
			ModelID:   reading.ModelID,
			ModelName: reading.ModelName,
			Kind:      reading.Kind.String(),
			Timestamp: time.Now(),
			Fields:    fields,
		})
		fmt.Println(string(b))
		return
	}

	log.WithFields(logrus.Fields{
		"mac":   mac,
		"rssi":  rssi,
		"model": reading.ModelName,
		"kind":  reading.Kind.String(),
	}).Infof("%+v", fields)
}

func main() {
	duration := flag.Duration("duration", 0, "scan duration (0 = continuous, e.g. 30s, 5m)")
	jsonOut := flag.Bool("json", false, "output readings as JSON lines")
	showAll := flag.Bool("all", false, "show all advertisements (don't deduplicate by IV)")
	keysPath := flag.String("keys", "", "path to a MAC=HEXKEY device keys file (required)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("victron-ble-scan %s\n", version)
		os.Exit(0)
	}

	log := logrus.New()
	if *jsonOut {
		log.SetOutput(os.Stderr)
	}

	if *keysPath == "" {
		log.Fatal("missing required -keys flag")
	}
	kr, err := loadKeyring(*keysPath)
	if err != nil {
		log.Fatalf("loading keys: %v", err)
	}

	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		log.Fatalf("failed to enable BLE adapter: %v (hint: on Linux, run with sudo)", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("stopping scan")
		cancel()
	}()

	if *duration > 0 {
		go func() {
			select {
			case <-time.After(*duration):
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	t := newTracker()
	if !*jsonOut {
		log.Info("scanning for Victron Instant Readout advertisements")
	}

	err = adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
		select {
		case <-ctx.Done():
			adapter.StopScan()
			return
		default:
		}

		mac := strings.ToUpper(result.Address.String())

		for _, entry := range result.ManufacturerData() {
			if entry.CompanyID != victronManufacturerID {
				continue
			}

			kind, err := victron.DetectDeviceTypeRaw(entry.Data)
			if err != nil {
				log.WithError(err).WithField("mac", mac).Debug("malformed frame")
				continue
			}
			if kind == victron.DeviceUnknown {
				log.WithField("mac", mac).Debug("unknown device type")
				continue
			}

			key, err := kr.Lookup(mac)
			if err != nil {
				log.WithField("mac", mac).Debug("no key configured")
				continue
			}

			reading, err := victron.Parse(entry.Data, key)
			if err != nil {
				log.WithError(err).WithField("mac", mac).Warn("failed to parse advertisement")
				continue
			}

			if !*showAll {
				var iv uint16
				if len(entry.Data) >= 7 {
					iv = uint16(entry.Data[5]) | uint16(entry.Data[6])<<8
				}
				if !t.isNew(mac, iv) {
					continue
				}
			}

			printReading(log, reading, mac, result.RSSI, *jsonOut)
		}
	})

	if err != nil && ctx.Err() == nil {
		log.Fatalf("scan failed: %v", err)
	}

	if !*jsonOut {
		log.Info("scan complete")
	}
}
