// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import "github.com/decred/slog"

// log is the package-level logger used throughout stake. It is disabled by
// default and can be set by the caller via UseLogger.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}
