// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import "errors"

var (
	ErrUnsupported = errors.New("no clipboard utility available")
	ErrTimeout     = errors.New("clipboard copy timed out")
)
