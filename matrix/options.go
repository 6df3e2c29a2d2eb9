// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the pairwise builder and
// validators. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// Reconcile selects how a pair observed in both directions folds into the
// symmetric cell. Every policy is commutative, so the result never depends
// on observation order.
type Reconcile int

const (
	// ReconcileMirror mirrors a one-directional value; when both directions
	// are present they must agree within eps, else ErrConflictingPair.
	ReconcileMirror Reconcile = iota

	// ReconcileSum stores P[a,b] + P[b,a] (the literal "matrix plus its
	// transpose" fill). Identical to Mirror for one-directional input.
	ReconcileSum

	// ReconcileMax stores max(P[a,b], P[b,a]).
	ReconcileMax
)

// String implements fmt.Stringer.
func (r Reconcile) String() string {
	switch r {
	case ReconcileMirror:
		return "mirror"
	case ReconcileSum:
		return "sum"
	case ReconcileMax:
		return "max"
	default:
		return fmt.Sprintf("Reconcile(%d)", int(r))
	}
}

// ParseReconcile maps a config string ("mirror", "sum", "max") to a policy.
func ParseReconcile(s string) (Reconcile, error) {
	switch s {
	case "", "mirror":
		return ReconcileMirror, nil
	case "sum":
		return ReconcileSum, nil
	case "max":
		return ReconcileMax, nil
	default:
		return 0, fmt.Errorf("ParseReconcile: %q: %w", s, ErrUnknownReconcile)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by symmetry/diagonal checks and by
	// ReconcileMirror when comparing mirrored values.
	DefaultEpsilon = 1e-9

	// DefaultDirected controls whether the builder mirrors pairs.
	// false ⇒ symmetric fill per Reconcile.
	DefaultDirected = false

	// DefaultReconcile is the mirrored-pair policy.
	DefaultReconcile = ReconcileMirror
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicReconcileInvalid = "matrix: WithReconcile: unknown policy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps       float64   // >= 0; DefaultEpsilon
	directed  bool      // DefaultDirected
	reconcile Reconcile // DefaultReconcile
}

// WithEpsilon sets the comparison tolerance.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDirected disables symmetric fill: M[a,b] is exactly the observed
// a→b value (0 when absent). The diagonal is still forced to 0.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected restores the default symmetric fill.
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithReconcile selects the mirrored-pair policy.
// Panics on values outside the declared Reconcile constants.
func WithReconcile(r Reconcile) Option {
	if r < ReconcileMirror || r > ReconcileMax {
		panic(panicReconcileInvalid)
	}

	return func(o *Options) { o.reconcile = r }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		directed:  DefaultDirected,
		reconcile: DefaultReconcile,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
