// SPDX-License-Identifier: MIT

// Package fleet holds the per-route vehicle-count helpers that sit next to
// the distance pipeline: the id_1 × id_2 car matrix, car-count
// classification, bus outliers, heavy-truck routes and matrix scaling.
//
// Input columns: id_1, id_2, route, moto, car, rv, bus, truck.
package fleet
