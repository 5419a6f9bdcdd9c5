package graphics

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// Shader is a linked program with its uniform locations cached by name.
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// Per-vertex colour passed straight through; the model matrix places each chunk.
const chunkVertexSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec4 aColor;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
out vec4 vColor;
void main() {
	vColor = aColor;
	gl_Position = projection * view * model * vec4(aPos, 1.0);
}`

const chunkFragmentSrc = `#version 410 core
in vec4 vColor;
uniform bool wireframe;
out vec4 fragColor;
void main() {
	fragColor = wireframe ? vec4(0.0, 0.0, 0.0, 1.0) : vColor;
}`

// NewChunkShader compiles the program used to draw chunk batches.
func NewChunkShader() (*Shader, error) {
	program, err := linkProgram(
		shaderStage{"vertex", gl.VERTEX_SHADER, chunkVertexSrc},
		shaderStage{"fragment", gl.FRAGMENT_SHADER, chunkFragmentSrc},
	)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// location looks a uniform up once; -1 (unknown or optimised out) is cached too.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

func (s *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(s.location(name), v)
}

// SetMatrix4 uploads a column-major 4x4 matrix
func (s *Shader) SetMatrix4(name string, value *float32) {
	gl.UniformMatrix4fv(s.location(name), 1, false, value)
}

func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
	clear(s.uniforms)
}

type shaderStage struct {
	name   string
	kind   uint32
	source string
}

// linkProgram compiles every stage and links them. Stage objects are released either way.
func linkProgram(stages ...shaderStage) (uint32, error) {
	program := gl.CreateProgram()
	var compiled []uint32
	defer func() {
		for _, sh := range compiled {
			gl.DeleteShader(sh)
		}
	}()

	for _, st := range stages {
		sh, err := compileStage(st)
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		compiled = append(compiled, sh)
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, errors.Errorf("link chunk program: %s", msg)
	}
	return program, nil
}

func compileStage(st shaderStage) (uint32, error) {
	sh := gl.CreateShader(st.kind)
	csources, free := gl.Strs(st.source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, errors.Errorf("compile %s shader: %s", st.name, msg)
	}
	return sh, nil
}

// infoLog reads the driver log of a shader or program object.
func infoLog(obj uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := strings.Repeat("\x00", int(n+1))
	getLog(obj, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}
