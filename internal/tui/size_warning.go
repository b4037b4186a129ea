// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "fmt"

const (
	minWidth  = 110
	minHeight = 31
)

func tooSmall(width, height int) bool {
	// before the first WindowSizeMsg the size is unknown
	if width == 0 && height == 0 {
		return false
	}
	return width < minWidth || height < minHeight
}

func renderSizeWarning(width, height int) string {
	text := fmt.Sprintf(
		"Terminal size too small:\nWidth = %d Height = %d\n\nNeeded to display properly:\nWidth = %d Height = %d",
		width, height, minWidth, minHeight,
	)
	return placeCenter(width, height, warningStyle.Render(text))
}
