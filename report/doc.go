// SPDX-License-Identifier: MIT

// Package report renders tables, pairwise matrices and completeness verdicts
// as markdown tables for the terminal. Boolean verdicts are colored green or
// red unless color output is disabled (fatih/color honours NO_COLOR).
package report
