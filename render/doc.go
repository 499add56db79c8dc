// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints ring gauges onto a gg drawing context.
//
// It is the reference ring.Surface implementation: a Canvas owns a
// *gg.Context and a set of per-ring Painters; each Painter retains the
// latest published VisualState and tip pose for its ring, and Canvas.Paint
// composites track, gradient arc, shadow blob and tip marker for every ring
// in one pass. Because gg is immediate-mode, "moving" the tip is a retained
// pose update here; the context is only repainted when something changed.
package render
