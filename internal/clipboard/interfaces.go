// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Copier places text on the system clipboard.
type Copier interface {
	// Copy returns once the clipboard has been written, the copier's
	// timeout has elapsed ([ErrTimeout]) or ctx is done. A copy that
	// outlives the timeout is not cancelled; its result is dropped.
	Copy(ctx context.Context, text string) error
}
