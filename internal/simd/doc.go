// Package simd generates the per-dispatch-mode translation units and the
// declarations header used by OpenCV's CPU dispatch machinery.
//
// For a base name such as "arithm" and the modes [SSE4_2, AVX2] it produces
// arithm.sse4_2.cpp, arithm.avx2.cpp and arithm.simd_declarations.hpp. The
// CV_CPU_DISPATCH_MODES_ALL macro in the declarations header lists modes in
// reverse input order followed by BASELINE: OpenCV tries them left to right,
// so the last mode given is the first one tried.
package simd
