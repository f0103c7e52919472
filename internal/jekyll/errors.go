package jekyll

import "fmt"

// Typed errors enabling structured classification without string parsing
// upstream. The orchestrator decides which of these are fatal for a run.

// ReadError indicates a source file is missing or not readable as UTF-8 text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError indicates an output file could not be materialized.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// LayoutError indicates the destination path is unusable as a site root.
type LayoutError struct {
	Path string
	Err  error
}

func (e *LayoutError) Error() string { return fmt.Sprintf("layout %s: %v", e.Path, e.Err) }
func (e *LayoutError) Unwrap() error { return e.Err }

// AssetCopyError indicates a single asset could not be relocated.
type AssetCopyError struct {
	Path string
	Err  error
}

func (e *AssetCopyError) Error() string { return fmt.Sprintf("copy asset %s: %v", e.Path, e.Err) }
func (e *AssetCopyError) Unwrap() error { return e.Err }
