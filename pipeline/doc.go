// SPDX-License-Identifier: MIT

// Package pipeline wires configuration, logging and the core stages into
// one Runner. Every stage logs its start, outcome and duration under a
// per-run run_id, so the core packages stay free of logging.
package pipeline
