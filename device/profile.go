// Package device holds the device identity descriptor embedded in every
// signature record.
package device

import (
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/alex0twery0/POGOLib/rng"
)

// Profile describes the simulated handset. Every field is reported verbatim
// inside the signature record, so values must stay mutually consistent (a
// Samsung model with an LGE board would flag the session).
type Profile struct {
	DeviceID              string `json:"deviceId"`
	InstallID             string `json:"installId"`
	AndroidBoardName      string `json:"androidBoardName"`
	AndroidBootloader     string `json:"androidBootloader"`
	DeviceBrand           string `json:"deviceBrand"`
	DeviceModel           string `json:"deviceModel"`
	DeviceModelIdentifier string `json:"deviceModelIdentifier"`
	DeviceModelBoot       string `json:"deviceModelBoot"`
	HardwareManufacturer  string `json:"hardwareManufacturer"`
	HardwareModel         string `json:"hardwareModel"`
	FirmwareBrand         string `json:"firmwareBrand"`
	FirmwareTags          string `json:"firmwareTags"`
	FirmwareType          string `json:"firmwareType"`
	FirmwareFingerprint   string `json:"firmwareFingerprint"`
}

// hardware is one internally consistent handset build.
type hardware struct {
	boardName     string
	bootloader    string
	brand         string
	model         string
	boot          string
	identifier    string
	manufacturer  string
	hardwareModel string
	fingerprint   string
}

// knownHardware lists real handset builds observed in the wild. Picking a
// row wholesale keeps board/bootloader/fingerprint consistent.
var knownHardware = []hardware{
	{
		boardName:     "msm8996",
		bootloader:    "8996-012001-1711291800",
		brand:         "google",
		model:         "Pixel XL",
		boot:          "qcom",
		identifier:    "marlin",
		manufacturer:  "Google",
		hardwareModel: "Pixel XL",
		fingerprint:   "google/marlin/marlin:8.1.0/OPM1.171019.011/4448085:user/release-keys",
	},
	{
		boardName:     "universal9810",
		bootloader:    "G960FXXU2BRJ3",
		brand:         "samsung",
		model:         "SM-G960F",
		boot:          "exynos9810",
		identifier:    "starlte",
		manufacturer:  "samsung",
		hardwareModel: "SM-G960F",
		fingerprint:   "samsung/starltexx/starlte:8.0.0/R16NW/G960FXXU2BRJ3:user/release-keys",
	},
	{
		boardName:     "sdm845",
		bootloader:    "b1c1-0.1-4997261",
		brand:         "google",
		model:         "Pixel 3",
		boot:          "qcom",
		identifier:    "blueline",
		manufacturer:  "Google",
		hardwareModel: "Pixel 3",
		fingerprint:   "google/blueline/blueline:9/PQ1A.181205.002.A1/5098120:user/release-keys",
	},
	{
		boardName:     "msm8998",
		bootloader:    "OnePlus5TOxygen_43",
		brand:         "OnePlus",
		model:         "ONEPLUS A5010",
		boot:          "qcom",
		identifier:    "OnePlus5T",
		manufacturer:  "OnePlus",
		hardwareModel: "ONEPLUS A5010",
		fingerprint:   "OnePlus/OnePlus5T/OnePlus5T:8.1.0/OPM1.171019.011/1806102055:user/release-keys",
	},
	{
		boardName:     "exynos9820",
		bootloader:    "G973FXXU3ASG8",
		brand:         "samsung",
		model:         "SM-G973F",
		boot:          "exynos9820",
		identifier:    "beyond1",
		manufacturer:  "samsung",
		hardwareModel: "SM-G973F",
		fingerprint:   "samsung/beyond1ltexx/beyond1:9/PPR1.180610.011/G973FXXU3ASG8:user/release-keys",
	},
}

const deviceIDBytes = 8

// NewRandom builds a Profile from a random known hardware row. Every random
// value, including the install id UUID, is drawn from src so a seeded
// session reproduces the same identity.
func NewRandom(src *rng.Source) *Profile {
	hw := knownHardware[src.Intn(len(knownHardware))]
	// src.Read never fails, so neither does UUID generation.
	installID, _ := uuid.NewRandomFromReader(src)
	return &Profile{
		DeviceID:              hex.EncodeToString(src.Bytes(deviceIDBytes)),
		InstallID:             installID.String(),
		AndroidBoardName:      hw.boardName,
		AndroidBootloader:     hw.bootloader,
		DeviceBrand:           hw.brand,
		DeviceModel:           hw.model,
		DeviceModelIdentifier: hw.identifier,
		DeviceModelBoot:       hw.boot,
		HardwareManufacturer:  hw.manufacturer,
		HardwareModel:         hw.hardwareModel,
		FirmwareBrand:         hw.identifier,
		FirmwareTags:          "release-keys",
		FirmwareType:          "user",
		FirmwareFingerprint:   hw.fingerprint,
	}
}
