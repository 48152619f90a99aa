package imglfw

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

// Renderer submits ImGui draw data to a graphics context.
//
// The default implementation targets OpenGL 3.3 core. Inject a custom
// implementation via WithRenderer; custom renderers are responsible for
// building their own font-atlas texture.
type Renderer interface {
	// Render draws the frame's draw data. displaySize and framebufferSize
	// are in logical and physical pixels respectively; they differ on
	// high-DPI displays.
	Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) error

	// Dispose releases all graphics resources held by the renderer.
	Dispose()
}

// TextureManager registers application images for use as ImGui textures
// (imgui.Image, imgui.ImageButton). The OpenGL renderer implements it.
type TextureManager interface {
	// CreateTexture uploads img and returns its ImGui texture id.
	CreateTexture(img image.Image) (imgui.TextureID, error)

	// UpdateTexture replaces the pixel data of a registered texture.
	UpdateTexture(id imgui.TextureID, img image.Image) error

	// DeleteTexture releases a registered texture.
	DeleteTexture(id imgui.TextureID) error
}

// glRenderer renders ImGui draw data through an OpenGL 3.3 core context.
type glRenderer struct {
	program    uint32
	vertShader uint32
	fragShader uint32

	locTexture    int32
	locProjMtx    int32
	locPosition   int32
	locUV         int32
	locColor      int32
	vertexBuffer  uint32
	elementBuffer uint32

	fontTexture    uint32
	textures       map[imgui.TextureID]uint32
	maxTextureSize int32
}

const vertexShaderSource = `#version 150
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main() {
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

const fragmentShaderSource = `#version 150
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main() {
	Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
`

// NewOpenGLRenderer creates the default renderer on the current OpenGL
// context and uploads the ImGui font atlas. The window's context must be
// current on the calling goroutine.
func NewOpenGLRenderer(io imgui.IO) (Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("imglfw: initialize OpenGL: %w", err)
	}

	r := &glRenderer{
		textures: make(map[imgui.TextureID]uint32),
	}
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &r.maxTextureSize)

	if err := r.createDeviceObjects(); err != nil {
		return nil, err
	}
	r.createFontTexture(io)

	Logger().Info("imglfw: OpenGL renderer ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"maxTextureSize", r.maxTextureSize)
	return r, nil
}

func (r *glRenderer) createDeviceObjects() error {
	var err error
	r.vertShader, err = compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	r.fragShader, err = compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(r.vertShader)
		return err
	}

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, r.vertShader)
	gl.AttachShader(r.program, r.fragShader)
	gl.LinkProgram(r.program)

	var status int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := programInfoLog(r.program)
		r.Dispose()
		return fmt.Errorf("imglfw: link shader program: %s", msg)
	}

	r.locTexture = gl.GetUniformLocation(r.program, gl.Str("Texture\x00"))
	r.locProjMtx = gl.GetUniformLocation(r.program, gl.Str("ProjMtx\x00"))
	r.locPosition = gl.GetAttribLocation(r.program, gl.Str("Position\x00"))
	r.locUV = gl.GetAttribLocation(r.program, gl.Str("UV\x00"))
	r.locColor = gl.GetAttribLocation(r.program, gl.Str("Color\x00"))

	gl.GenBuffers(1, &r.vertexBuffer)
	gl.GenBuffers(1, &r.elementBuffer)
	return nil
}

// createFontTexture uploads the font atlas and hands its id back to ImGui
// so untextured and text draw commands resolve to it.
func (r *glRenderer) createFontTexture(io imgui.IO) {
	atlas := io.Fonts().TextureDataRGBA32()

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(atlas.Width), int32(atlas.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, atlas.Pixels)

	io.Fonts().SetTextureID(imgui.TextureID(r.fontTexture))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))

	Logger().Debug("imglfw: font atlas uploaded",
		"width", atlas.Width, "height", atlas.Height)
}

// Render draws the frame's draw data to the current framebuffer.
//
// The GL state it touches (blend, scissor, buffers, program, texture unit
// 0) is saved first and restored afterwards, so the host can draw its own
// content before and after the UI without re-establishing state.
func (r *glRenderer) Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) error {
	if !drawData.Valid() {
		return nil
	}
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 {
		// Window minimized.
		return nil
	}
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbWidth / displayWidth,
		Y: fbHeight / displayHeight,
	})

	state := backupGLState()
	defer state.restore()

	// Alpha blending, no face culling, no depth testing, scissor enabled.
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	// ImGui emits coordinates with the origin at the top-left.
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	ortho := orthoProjection(displayWidth, displayHeight)
	gl.UseProgram(r.program)
	gl.Uniform1i(r.locTexture, 0)
	gl.UniformMatrix4fv(r.locProjMtx, 1, false, &ortho[0][0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindSampler(0, 0)

	// A transient VAO keeps the attribute bindings out of the host's way.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertexBuffer)
	gl.EnableVertexAttribArray(uint32(r.locPosition))
	gl.EnableVertexAttribArray(uint32(r.locUV))
	gl.EnableVertexAttribArray(uint32(r.locColor))
	vertexSize, posOffset, uvOffset, colorOffset := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(uint32(r.locPosition), 2, gl.FLOAT, false,
		int32(vertexSize), uintptr(posOffset))
	gl.VertexAttribPointerWithOffset(uint32(r.locUV), 2, gl.FLOAT, false,
		int32(vertexSize), uintptr(uvOffset))
	gl.VertexAttribPointerWithOffset(uint32(r.locColor), 4, gl.UNSIGNED_BYTE, true,
		int32(vertexSize), uintptr(colorOffset))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset uintptr

		vertexData, vertexDataSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vertexBuffer)
		gl.BufferData(gl.ARRAY_BUFFER, vertexDataSize, vertexData, gl.STREAM_DRAW)

		indexData, indexDataSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.elementBuffer)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexDataSize, indexData, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else if x, y, w, h, ok := clipScissor(cmd.ClipRect(), fbWidth, fbHeight); ok {
				gl.Scissor(x, y, w, h)
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()),
					drawType, indexBufferOffset)
			}
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}
	gl.DeleteVertexArrays(1, &vao)

	return nil
}

// Dispose releases all OpenGL objects held by the renderer, including
// registered application textures and the font atlas.
func (r *glRenderer) Dispose() {
	for id, handle := range r.textures {
		gl.DeleteTextures(1, &handle)
		delete(r.textures, id)
	}
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		r.fontTexture = 0
	}
	if r.vertexBuffer != 0 {
		gl.DeleteBuffers(1, &r.vertexBuffer)
		r.vertexBuffer = 0
	}
	if r.elementBuffer != 0 {
		gl.DeleteBuffers(1, &r.elementBuffer)
		r.elementBuffer = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.vertShader != 0 {
		gl.DeleteShader(r.vertShader)
		r.vertShader = 0
	}
	if r.fragShader != 0 {
		gl.DeleteShader(r.fragShader)
		r.fragShader = 0
	}
}

// orthoProjection builds the projection matrix mapping ImGui's top-left
// origin display space onto clip space.
func orthoProjection(displayWidth, displayHeight float32) [4][4]float32 {
	return [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
}

// clipScissor converts a clip rectangle in framebuffer coordinates into
// GL scissor parameters (origin bottom-left). The rectangle is clamped to
// the framebuffer; rectangles that end up empty or entirely outside
// report ok=false so the caller can skip the draw call.
func clipScissor(clip imgui.Vec4, fbWidth, fbHeight float32) (x, y, w, h int32, ok bool) {
	if clip.X >= fbWidth || clip.Y >= fbHeight {
		return 0, 0, 0, 0, false
	}
	x0, y0, x1, y1 := clip.X, clip.Y, clip.Z, clip.W
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > fbWidth {
		x1 = fbWidth
	}
	if y1 > fbHeight {
		y1 = fbHeight
	}
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return int32(x0), int32(fbHeight - y1), int32(x1 - x0), int32(y1 - y0), true
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength)+1)
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("imglfw: compile shader: %s", strings.TrimRight(msg, "\x00"))
	}
	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength)+1)
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

// glState is the subset of OpenGL state the render pass touches.
type glState struct {
	lastActiveTexture      int32
	lastProgram            int32
	lastTexture            int32
	lastSampler            int32
	lastArrayBuffer        int32
	lastElementArrayBuffer int32
	lastVertexArray        int32
	lastPolygonMode        [2]int32
	lastViewport           [4]int32
	lastScissorBox         [4]int32
	lastBlendSrcRGB        int32
	lastBlendDstRGB        int32
	lastBlendSrcAlpha      int32
	lastBlendDstAlpha      int32
	lastBlendEquationRGB   int32
	lastBlendEquationAlpha int32
	blendEnabled           bool
	cullFaceEnabled        bool
	depthTestEnabled       bool
	scissorTestEnabled     bool
}

func backupGLState() *glState {
	s := &glState{}
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &s.lastActiveTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &s.lastTexture)
	gl.GetIntegerv(gl.SAMPLER_BINDING, &s.lastSampler)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &s.lastArrayBuffer)
	gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &s.lastElementArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.lastVertexArray)
	gl.GetIntegerv(gl.POLYGON_MODE, &s.lastPolygonMode[0])
	gl.GetIntegerv(gl.VIEWPORT, &s.lastViewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.lastScissorBox[0])
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &s.lastBlendSrcRGB)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &s.lastBlendDstRGB)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.lastBlendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.lastBlendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &s.lastBlendEquationRGB)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &s.lastBlendEquationAlpha)
	s.blendEnabled = gl.IsEnabled(gl.BLEND)
	s.cullFaceEnabled = gl.IsEnabled(gl.CULL_FACE)
	s.depthTestEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	s.scissorTestEnabled = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s *glState) restore() {
	gl.UseProgram(uint32(s.lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.lastTexture))
	gl.BindSampler(0, uint32(s.lastSampler))
	gl.ActiveTexture(uint32(s.lastActiveTexture))
	gl.BindVertexArray(uint32(s.lastVertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(s.lastArrayBuffer))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(s.lastElementArrayBuffer))
	gl.BlendEquationSeparate(uint32(s.lastBlendEquationRGB), uint32(s.lastBlendEquationAlpha))
	gl.BlendFuncSeparate(uint32(s.lastBlendSrcRGB), uint32(s.lastBlendDstRGB),
		uint32(s.lastBlendSrcAlpha), uint32(s.lastBlendDstAlpha))
	setEnabled(gl.BLEND, s.blendEnabled)
	setEnabled(gl.CULL_FACE, s.cullFaceEnabled)
	setEnabled(gl.DEPTH_TEST, s.depthTestEnabled)
	setEnabled(gl.SCISSOR_TEST, s.scissorTestEnabled)
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(s.lastPolygonMode[0]))
	gl.Viewport(s.lastViewport[0], s.lastViewport[1], s.lastViewport[2], s.lastViewport[3])
	gl.Scissor(s.lastScissorBox[0], s.lastScissorBox[1], s.lastScissorBox[2], s.lastScissorBox[3])
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
