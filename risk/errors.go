/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

import "errors"

// ErrUnknownColor is returned when decoding a color name that is not Green, Yellow or Red.
var ErrUnknownColor = errors.New("unknown risk color")
