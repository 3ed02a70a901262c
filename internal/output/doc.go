// Package output provides structured output handling for the journey2html CLI.
//
// This package handles both human-readable and JSON output formats, so the
// converter works equally well interactively and inside scripts that parse
// its results.
//
// # Printer
//
// The Printer is the primary interface for command output. It automatically
// handles format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Converted 42 entries", "output": htmlPath})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", "output": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines the converter's exit codes and error types:
//
//	output.ExitSuccess    // 0: Success
//	output.ExitUserError  // 1: User error (bad args, unknown flag values)
//	output.ExitEntryError // 10: Malformed entry JSON or missing required field
//	output.ExitFilesystem // 20: Filesystem error (missing input, collision, bad archive)
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("unknown --title-source value")
//	output.NewEntryError("parsing entry file foo.json: unexpected end of input")
//	output.NewFilesystemError("destination directory already exists")
//
// These errors carry exit codes that are used for both JSON error output
// and the process exit code.
package output
