// SPDX-License-Identifier: MIT

// Package config loads tollmatrix.yaml.
//
// Config fields:
//   - Log.Level / Log.Format       — debug|info|warn|error, text|json (default info, text)
//   - Matrix.Reconcile             — mirror|sum|max (default mirror)
//   - Matrix.Directed              — skip the symmetric fill (default false)
//   - Matrix.Epsilon               — symmetry tolerance (default 1e-9)
//   - Matrix.Cumulative            — chain legs into route distances (default false)
//   - Threshold.Band               — relative half-width (default 0.10)
//   - Threshold.ExcludeReference   — drop the reference key (default false)
//   - Rates.Categories             — ordered name/coefficient list (moto…truck)
//   - Rates.Windows                — daily window starts and factors
//   - Rates.WeekendFactor          — default 0.7
//   - Rates.WindowPolicy           — start|strict (default start)
//   - Rates.WeekendPolicy          — override|stack (default override)
//   - Fleet.*                      — bus factor, truck minimum, scale pivot/factors
//
// Load(path) applies defaults before unmarshalling, then validates.
// Default() returns the same defaults without reading a file.
package config
