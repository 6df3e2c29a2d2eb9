// SPDX-License-Identifier: MIT

// Command tollmatrix runs the distance, rate and completeness stages over
// CSV inputs and prints markdown tables.
//
//	tollmatrix distance dataset-3.csv
//	tollmatrix unroll dataset-3.csv --out unrolled.csv
//	tollmatrix threshold unrolled.csv --ref 1001400
//	tollmatrix rates unrolled.csv --arrow-out rates.arrow
//	tollmatrix coverage dataset-2.csv
//	tollmatrix fleet dataset-1.csv
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
