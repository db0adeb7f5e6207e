// Package directive binds user directives to the program elements of an HDL
// design.
//
// Directives are registered by module, task, variable, block or file
// pattern. IR passes then ask the Engine which markers to attach to the
// element they are building; the Engine never holds IR nodes itself.
//
// One Engine serves one compilation and is not safe for concurrent use.
package directive
