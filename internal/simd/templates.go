package simd

import "text/template"

var stubTemplate = template.Must(template.New("stub").Parse(
	`#include "precomp.hpp"
#include "{{.Filename}}.simd.hpp"
`))

// CV_CPU_DISPATCH_MODE is redefined per mode; the included OpenCV header
// undefines it again.
var declarationsTemplate = template.Must(template.New("declarations").Parse(
	`#define CV_CPU_SIMD_FILENAME "{{.Filename}}.simd.hpp"
{{range .Modes}}
#define CV_CPU_DISPATCH_MODE {{.}}
#include "opencv2/core/private/cv_cpu_include_simd_declarations.hpp"
{{end}}
#define CV_CPU_DISPATCH_MODES_ALL {{.ModesAll}}
`))

type templateData struct {
	Filename string
	Modes    []string
	ModesAll string
}
