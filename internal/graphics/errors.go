package graphics

import "fmt"

// LoadError reports an asset file that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// CompileError carries the driver's info log for a stage that failed to compile.
type CompileError struct {
	Program string
	Stage   StageKind
	Log     string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("program %q: %s shader failed to compile:\n%s", e.Program, e.Stage, e.Log)
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program %q failed to link:\n%s", e.Program, e.Log)
}
