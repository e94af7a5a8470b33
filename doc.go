// Package reportkit provides the core page model for building paginated,
// vector-drawn engineering report documents.
//
// A document is an ordered sequence of fixed-size pages; a page is an
// ordered list of drawable primitives (rectangles, lines, text runs, paths,
// images). Higher-level layout lives in the compose and chart subpackages,
// document types in report, and PDF output in raster.
//
// All geometry is expressed in millimetres on a portrait A4 page. Every
// page produced by this module uses the identical physical size; the
// conformance subpackage checks that invariant across all document types.
package reportkit
