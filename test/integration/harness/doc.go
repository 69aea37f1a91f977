// Package harness provides utilities for integration testing the pywalfox CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - PYWALFOX_HOME: Isolated per test (temp directory)
//   - PYWALFOX_DEBUG: Disabled to reduce noise
//   - PYWALFOX_HELPER: Points at a binary that does not exist, so nothing reaches a real helper
package harness
