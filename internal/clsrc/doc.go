// Package clsrc embeds OpenCL kernel sources into generated C++ files for
// the OpenCV program registry.
//
// Each kernel is stored as colon-separated hex text so the generated
// translation unit never has to escape quotes, control characters or
// non-ASCII bytes. The generated code decodes the text lazily, at static
// initialization of the ProgramEntry, and carries the MD5 digest of the
// raw bytes that OpenCV uses as the program cache key.
//
// Output is a pure function of the module name, the output header's base
// name and the kernel bytes: no timestamps, no map iteration.
package clsrc
