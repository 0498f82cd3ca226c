package clsrc

import "text/template"

// headerTemplate declares one ProgramEntry per kernel. The file compiles to
// nothing when OpenCL support is disabled.
var headerTemplate = template.Must(template.New("header").Parse(
	`// This file is auto-generated. Do not edit!

#include "opencv2/core/ocl.hpp"
#include "opencv2/core/ocl_genbase.hpp"
#include "opencv2/core/opencl/ocl_defs.hpp"

#ifdef HAVE_OPENCL

namespace cv
{
namespace ocl
{
namespace {{.Module}}
{

{{range .Kernels}}extern struct cv::ocl::internal::ProgramEntry {{.Symbol}};
{{end}}
}}}
#endif`))

// sourceTemplate defines the ProgramEntry records. unhexify walks the
// "xx:xx:..." text three characters at a time.
var sourceTemplate = template.Must(template.New("source").Parse(
	`// This file is auto-generated. Do not edit!

#include <string.h>

#include <sstream>
#include <string>

#include "precomp.hpp"
#include "cvconfig.h"
#include "{{.Header}}"

#ifdef HAVE_OPENCL

namespace cv
{
namespace ocl
{
namespace {{.Module}}
{

namespace {
const char* unhexify(const std::string& data) {
  std::ostringstream ostr;
  for (size_t i = 0; i + 1 < data.size(); i += 3) {
     const char val = std::stoi(data.substr(i, 2), nullptr, 16);
     ostr.write(&val, 1);
  }
  return ::strdup(ostr.str().c_str());
}
}

static const char* const moduleName = "{{.Module}}";

{{range .Kernels}}struct cv::ocl::internal::ProgramEntry {{.Symbol}}={moduleName, "{{.Name}}", unhexify("{{.Hex}}"), "{{.Digest}}", NULL};
{{end}}
}}}
#endif`))

// templateData is the data passed to both templates.
type templateData struct {
	Module  string
	Header  string
	Kernels []Kernel
}
