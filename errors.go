package embedcli

import "errors"

// Sentinel errors returned by construction and configuration. Per-call
// runtime conditions (ingest overflow, command-buffer overflow, unknown
// command, full binding table) are never errors — they are surfaced as
// booleans, result codes, or engine flags, per the error handling design.
var (
	// ErrArenaTooSmall is returned by New when a caller-supplied buffer
	// (Config.Buffer) is smaller than RequiredSize(Config) demands.
	ErrArenaTooSmall = errors.New("embedcli: supplied buffer is smaller than the required arena size")

	// ErrInvalidConfig is returned when a configuration value cannot be
	// honored (for example a command buffer too small to hold anything).
	ErrInvalidConfig = errors.New("embedcli: invalid configuration")
)

// ResultNoMatchDirect is the result code ParseDirectCommand returns when no
// binding matches the submitted line. See the Open Question in SPEC_FULL.md:
// the direct-dispatch path distinguishes "no match" from any handler result
// by construction, rather than silently returning 1 as the original design
// did.
const ResultNoMatchDirect int = -1
