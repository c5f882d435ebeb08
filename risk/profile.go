/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Profile holds the demographic attributes used to adapt thresholds.
// Zero height or weight means the value is unknown.
type Profile struct {
	Age      int     `json:"age"`
	HeightCM float64 `json:"height"`
	WeightKG float64 `json:"weight"`
}

// ProfileFromMap builds a Profile from a loosely typed payload such as a
// stored JSON document. Malformed or non-positive fields are treated as unknown.
func ProfileFromMap(m map[string]any) Profile {
	var p Profile

	if age, ok := Normalize(m["age"]); ok && age > 0 {
		p.Age = int(age)
	}

	if h, ok := Normalize(m["height"]); ok && h > 0 {
		p.HeightCM = h
	}

	if w, ok := Normalize(m["weight"]); ok && w > 0 {
		p.WeightKG = w
	}

	return p
}

// BMI returns weight/(height in metres)^2, or false when either input is unknown.
func (p Profile) BMI() (float64, bool) {
	if p.HeightCM <= 0 || p.WeightKG <= 0 {
		return 0, false
	}

	h := p.HeightCM / 100.0

	return p.WeightKG / (h * h), true
}

// AgeGroup is a coarse age band.
type AgeGroup string

// AgeGroup values.
const (
	AgeUnknown AgeGroup = "unknown"
	AgeTeen    AgeGroup = "teen"
	Age18To29  AgeGroup = "18_29"
	Age30To44  AgeGroup = "30_44"
	Age45To59  AgeGroup = "45_59"
	Age60Plus  AgeGroup = "60_plus"
)

// AgeBand classifies an age in years. An unset age (0) is unknown.
func AgeBand(age int) AgeGroup {
	switch {
	case age <= 0:
		return AgeUnknown
	case age < 18:
		return AgeTeen
	case age < 30:
		return Age18To29
	case age < 45:
		return Age30To44
	case age < 60:
		return Age45To59
	default:
		return Age60Plus
	}
}

// BMIBand is a coarse body-mass-index band.
type BMIBand string

// BMIBand values.
const (
	BMIUnknown BMIBand = "unknown"
	BMIUnder   BMIBand = "under"
	BMINormal  BMIBand = "normal"
	BMIOver    BMIBand = "over"
	BMIObese   BMIBand = "obese"
)

// BMIBandOf classifies a BMI value; ok=false yields BMIUnknown.
func BMIBandOf(bmi float64, ok bool) BMIBand {
	if !ok {
		return BMIUnknown
	}

	switch {
	case bmi < 18.5:
		return BMIUnder
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOver
	default:
		return BMIObese
	}
}

// AgeGroup returns the profile's age band.
func (p Profile) AgeGroup() AgeGroup {
	return AgeBand(p.Age)
}

// BMIBand returns the profile's BMI band.
func (p Profile) BMIBand() BMIBand {
	return BMIBandOf(p.BMI())
}
