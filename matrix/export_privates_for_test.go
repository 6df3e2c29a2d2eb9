// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for internal options and fold policy.
//
// Purpose:
//   - Expose the resolved Options and Reconcile.fold to matrix_test ONLY.
//   - File name ends in _test.go, so nothing here reaches production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Eps       float64
	Directed  bool
	Reconcile Reconcile
}

// GatherOptionsSnapshot_TestOnly resolves opts the way Build does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Directed: o.directed, Reconcile: o.reconcile}
}

// Fold_TestOnly forwards to the private Reconcile.fold.
func Fold_TestOnly(r Reconcile, fwd, back float64, hasFwd, hasBack bool, eps float64) (float64, error) {
	return r.fold(fwd, back, hasFwd, hasBack, eps)
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
	PanicReconcileInvalid_TestOnly = panicReconcileInvalid
)
