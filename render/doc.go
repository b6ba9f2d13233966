// Package render turns a validated configuration snapshot into the
// external build-system representations: the -D flag vector passed to
// CMake, the init-cache script, and the CMakeUserPresets document.
//
// All renderers are pure functions of the snapshot plus an explicit
// Options value carrying the environment-derived hints (the active conda
// prefix). Rendering the same inputs twice produces byte-identical
// output; file writers overwrite their target wholesale via an atomic
// temp-file rename.
package render
