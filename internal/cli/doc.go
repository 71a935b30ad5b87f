// Package cli implements the vigil command-line interface.
//
// Commands:
//
//	vigil watch       - full-screen dashboard with idle screensaver
//	vigil check       - one-shot status check (supports --json)
//	vigil init        - create a .vigil.yaml config interactively
//	vigil version     - version information
//	vigil completion  - shell completion scripts
//
// The CLI layer wires the config loader, the feed client, the background
// poller, and the Bubble Tea dashboard together; all the interesting
// behavior lives in the internal/status and internal/dashboard packages.
package cli
