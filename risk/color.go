/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

import (
	"encoding/json"
	"fmt"
)

// Color is the traffic-light risk verdict, ordered Green < Yellow < Red.
type Color int

// Color values in ascending severity.
const (
	Green Color = iota
	Yellow
	Red
)

func (c Color) String() string {
	switch c {
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	case Red:
		return "Red"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Rank returns the severity rank used for ordering.
func (c Color) Rank() int {
	return int(c)
}

// Max returns the more severe of c and other.
func (c Color) Max(other Color) Color {
	if other > c {
		return other
	}

	return c
}

// MarshalJSON encodes the color by name.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a color name.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "Green":
		*c = Green
	case "Yellow":
		*c = Yellow
	case "Red":
		*c = Red
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	return nil
}
