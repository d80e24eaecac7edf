// Package error provides structured errors for clipdash.
//
// Package: error
// Title: clipdash Error Handling
// Description: Errors carry a code and a severity so the dashboard can show
//              a short status message while the log file records the full
//              context. Bad user input is low severity, failing helper
//              programs are medium, failed file writes are high.
// Author: clipdash contributors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Contextual errors and codes
// - 2026-10-19 v0.2.0: Constructors for clipboard, file and tool failures
//
// Usage:
//
//	import cderror "github.com/msto63/clipdash/foundation/core/error"
//
//	err := cderror.InvalidInput("list.center", "Width must be a number").
//	    WithDetail("arg", "abc")
//
//	if cderror.HasCode(err, cderror.CodeInvalidInput) {
//	    // show in status line only
//	}
package error
