// Package filex implements the file operations clipdash needs.
//
// Package: filex
// Title: File Utilities for clipdash
// Description: Saving buffers to disk, loading text files into buffers and
//              writing temporary files for external viewers and diff tools.
// Author: clipdash contributors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Read and write helpers
// - 2026-10-19 v0.2.0: Text detection and temp files
//
// Usage:
//
//	path, err := filex.TempFile("clipdash_view_", ".txt", []byte(text))
//	if err != nil {
//	    return err
//	}
//	defer filex.SafeRemove(path)
package filex
