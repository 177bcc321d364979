package main

// ExitCode mirrors the *shape* of foundry/exit_codes.go (a small
// int-backed catalog of well-known process exit codes) without its
// crucible-backed generation pipeline: flexacc has five outcomes total,
// not a multi-hundred-entry ecosystem-wide catalog, so a local const
// block replaces the re-exported bindings (see DESIGN.md).
type ExitCode = int

const (
	ExitSuccess       ExitCode = 0
	ExitItemFlagged   ExitCode = 1
	ExitUsageError    ExitCode = 2
	ExitIOOrParse     ExitCode = 3
	ExitConfigInvalid ExitCode = 4
)
