package graphics

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// StageKind identifies a programmable pipeline stage
type StageKind uint32

const (
	VertexStage   StageKind = gl.VERTEX_SHADER
	FragmentStage StageKind = gl.FRAGMENT_SHADER
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("stage(0x%x)", uint32(k))
}

// Stage is the source text of one shader stage
type Stage struct {
	Kind   StageKind
	Source string
}

// ReadStage reads a stage's source from disk
func ReadStage(kind StageKind, path string) (Stage, error) {
	log.Printf("Reading %s shader: %s", kind, path)
	src, err := os.ReadFile(path)
	if err != nil {
		return Stage{}, &LoadError{Path: path, Err: err}
	}
	return Stage{Kind: kind, Source: string(src)}, nil
}

// Program is a linked shader program with a lazily filled uniform location cache
type Program struct {
	ID   uint32
	Name string

	locations map[string]int32
}

// LoadProgram reads a vertex and fragment shader from disk and links them
func LoadProgram(name, vertexPath, fragmentPath string) (*Program, error) {
	vs, err := ReadStage(VertexStage, vertexPath)
	if err != nil {
		return nil, err
	}
	fs, err := ReadStage(FragmentStage, fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewProgram(name, vs, fs)
}

// NewProgram compiles every stage and links them into one program. On failure
// all intermediate GL objects are deleted and no program is returned.
func NewProgram(name string, stages ...Stage) (*Program, error) {
	if len(stages) == 0 {
		return nil, errors.New("graphics: program " + name + " has no stages")
	}

	shaders := make([]uint32, 0, len(stages))
	defer func() {
		// shaders can be deleted once linked or on failure
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, st := range stages {
		s, err := compileShader(name, st)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, s)
	}

	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)

		return nil, &LinkError{Program: name, Log: strings.TrimRight(infoLog, "\x00")}
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}

	return &Program{ID: program, Name: name, locations: make(map[string]int32)}, nil
}

func compileShader(program string, st Stage) (uint32, error) {
	shader := gl.CreateShader(uint32(st.Kind))
	csources, free := gl.Strs(st.Source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		return 0, &CompileError{Program: program, Stage: st.Kind, Log: strings.TrimRight(infoLog, "\x00")}
	}
	return shader, nil
}

// Bind makes the program current
func (p *Program) Bind() {
	gl.UseProgram(p.ID)
}

// Location returns the uniform's location, asking the driver only the first
// time a name is seen. Unknown names resolve to -1.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// The setters below are silent no-ops for names the linker did not keep.

// SetInt sets an integer (or sampler) uniform
func (p *Program) SetInt(name string, value int32) {
	if loc := p.Location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

// SetFloat sets a float uniform
func (p *Program) SetFloat(name string, value float32) {
	if loc := p.Location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

// SetVec3 sets a vec3 uniform
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.Location(name); loc != -1 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

// SetMat4 sets a mat4 uniform
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.Location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
