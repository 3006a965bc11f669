// Package board projects derived quotes onto the visible column subset.
//
// The twelve-field superset has one canonical order; Project filters it
// down per the visibility configuration and emits the exact
// row/column/alignment/color payload the render layer consumes.
package board
