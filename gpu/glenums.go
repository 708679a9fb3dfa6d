// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/bplus/gl"
)

// This file is the only place where engine enumerations are converted
// to and from the driver's native codes. Every table is total over its
// enum; a missing entry is a bug and panics at the conversion.

var formatToGL = map[Format]uint32{
	R8:               gl.R8,
	RG8:              gl.RG8,
	RGB8:             gl.RGB8,
	RGBA8:            gl.RGBA8,
	SRGB8:            gl.SRGB8,
	SRGB8A8:          gl.SRGB8_ALPHA8,
	R16F:             gl.R16F,
	RG16F:            gl.RG16F,
	RGBA16F:          gl.RGBA16F,
	R32F:             gl.R32F,
	RG32F:            gl.RG32F,
	RGBA32F:          gl.RGBA32F,
	R8UI:             gl.R8UI,
	R32UI:            gl.R32UI,
	RGBA8UI:          gl.RGBA8UI,
	RGBA32UI:         gl.RGBA32UI,
	R32I:             gl.R32I,
	RGBA32I:          gl.RGBA32I,
	Depth16:          gl.DEPTH_COMPONENT16,
	Depth24:          gl.DEPTH_COMPONENT24,
	Depth32F:         gl.DEPTH_COMPONENT32F,
	Depth24Stencil8:  gl.DEPTH24_STENCIL8,
	Depth32FStencil8: gl.DEPTH32F_STENCIL8,
	BC1:              gl.COMPRESSED_RGB_S3TC_DXT1_EXT,
	BC3:              gl.COMPRESSED_RGBA_S3TC_DXT5_EXT,
	BC4:              gl.COMPRESSED_RED_RGTC1,
	BC5:              gl.COMPRESSED_RG_RGTC2,
	BC6H:             gl.COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT,
	BC7:              gl.COMPRESSED_RGBA_BPTC_UNORM,
}

var targetToGL = map[Targets]uint32{
	Target1D:        gl.TEXTURE_1D,
	Target2D:        gl.TEXTURE_2D,
	Target3D:        gl.TEXTURE_3D,
	Target1DArray:   gl.TEXTURE_1D_ARRAY,
	Target2DArray:   gl.TEXTURE_2D_ARRAY,
	TargetCube:      gl.TEXTURE_CUBE_MAP,
	TargetCubeArray: gl.TEXTURE_CUBE_MAP_ARRAY,
}

var componentDataToGL = map[ComponentData]uint32{
	DataRed:     gl.RED,
	DataRG:      gl.RG,
	DataRGB:     gl.RGB,
	DataBGR:     gl.BGR,
	DataRGBA:    gl.RGBA,
	DataBGRA:    gl.BGRA,
	DataDepth:   gl.DEPTH_COMPONENT,
	DataStencil: gl.STENCIL_INDEX,
	DataRedInt:  gl.RED_INTEGER,
	DataRGInt:   gl.RG_INTEGER,
	DataRGBInt:  gl.RGB_INTEGER,
	DataRGBAInt: gl.RGBA_INTEGER,
}

var componentTypeToGL = map[ComponentType]uint32{
	TypeUInt8:   gl.UNSIGNED_BYTE,
	TypeInt8:    gl.BYTE,
	TypeUInt16:  gl.UNSIGNED_SHORT,
	TypeInt16:   gl.SHORT,
	TypeUInt32:  gl.UNSIGNED_INT,
	TypeInt32:   gl.INT,
	TypeFloat32: gl.FLOAT,
}

// valueTestToGL has no entry for TestOff, which is expressed
// by disabling the capability instead.
var valueTestToGL = map[ValueTests]uint32{
	TestNever:          gl.NEVER,
	TestAlways:         gl.ALWAYS,
	TestLess:           gl.LESS,
	TestLessOrEqual:    gl.LEQUAL,
	TestGreater:        gl.GREATER,
	TestGreaterOrEqual: gl.GEQUAL,
	TestEqual:          gl.EQUAL,
	TestNotEqual:       gl.NOTEQUAL,
}

// cullToGL has no entry for CullOff.
var cullToGL = map[FaceCullModes]uint32{
	CullOn:        gl.BACK,
	CullBackwards: gl.FRONT,
	CullAll:       gl.FRONT_AND_BACK,
}

var blendFactorToGL = map[BlendFactors]uint32{
	BlendZero:                 gl.ZERO,
	BlendOne:                  gl.ONE,
	BlendSrcColor:             gl.SRC_COLOR,
	BlendInverseSrcColor:      gl.ONE_MINUS_SRC_COLOR,
	BlendSrcAlpha:             gl.SRC_ALPHA,
	BlendInverseSrcAlpha:      gl.ONE_MINUS_SRC_ALPHA,
	BlendDstColor:             gl.DST_COLOR,
	BlendInverseDstColor:      gl.ONE_MINUS_DST_COLOR,
	BlendDstAlpha:             gl.DST_ALPHA,
	BlendInverseDstAlpha:      gl.ONE_MINUS_DST_ALPHA,
	BlendConstantColor:        gl.CONSTANT_COLOR,
	BlendInverseConstantColor: gl.ONE_MINUS_CONSTANT_COLOR,
	BlendConstantAlpha:        gl.CONSTANT_ALPHA,
	BlendInverseConstantAlpha: gl.ONE_MINUS_CONSTANT_ALPHA,
}

var blendOpToGL = map[BlendOps]uint32{
	BlendAdd:             gl.FUNC_ADD,
	BlendSubtract:        gl.FUNC_SUBTRACT,
	BlendReverseSubtract: gl.FUNC_REVERSE_SUBTRACT,
	BlendMin:             gl.MIN,
	BlendMax:             gl.MAX,
}

var stencilOpToGL = map[StencilOps]uint32{
	StencilKeep:          gl.KEEP,
	StencilZero:          gl.ZERO,
	StencilReplace:       gl.REPLACE,
	StencilIncrement:     gl.INCR,
	StencilIncrementWrap: gl.INCR_WRAP,
	StencilDecrement:     gl.DECR,
	StencilDecrementWrap: gl.DECR_WRAP,
	StencilInvert:        gl.INVERT,
}

var accessToGL = map[ImageAccessModes]uint32{
	AccessRead:      gl.READ_ONLY,
	AccessWrite:     gl.WRITE_ONLY,
	AccessReadWrite: gl.READ_WRITE,
}

var wrappingToGL = map[WrappingModes]uint32{
	WrapRepeat:       gl.REPEAT,
	WrapMirrorRepeat: gl.MIRRORED_REPEAT,
	WrapClamp:        gl.CLAMP_TO_EDGE,
	WrapMirrorClamp:  gl.MIRROR_CLAMP_TO_EDGE,
	WrapBorder:       gl.CLAMP_TO_BORDER,
}

// minFilterToGL is indexed by [PixelFilters][MipFilters].
var minFilterToGL = [2][3]uint32{
	PixelRough:  {MipOff: gl.NEAREST, MipRough: gl.NEAREST_MIPMAP_NEAREST, MipSmooth: gl.NEAREST_MIPMAP_LINEAR},
	PixelSmooth: {MipOff: gl.LINEAR, MipRough: gl.LINEAR_MIPMAP_NEAREST, MipSmooth: gl.LINEAR_MIPMAP_LINEAR},
}

var magFilterToGL = [2]uint32{
	PixelRough:  gl.NEAREST,
	PixelSmooth: gl.LINEAR,
}

var (
	valueTestFromGL   = invert(valueTestToGL)
	cullFromGL        = invert(cullToGL)
	blendFactorFromGL = invert(blendFactorToGL)
	blendOpFromGL     = invert(blendOpToGL)
	stencilOpFromGL   = invert(stencilOpToGL)
)

func invert[K, V comparable](m map[K]V) map[V]K {
	r := make(map[V]K, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}

// toGL looks up v in table, panicking if it has no driver code.
func toGL[K comparable](table map[K]uint32, what string, v K) uint32 {
	code, ok := table[v]
	if !ok {
		panic(fmt.Sprintf("gpu: %s %v has no OpenGL equivalent", what, v))
	}
	return code
}

// fromGL looks up a driver code, panicking if it is not one the
// engine knows about; this only happens when foreign GL code has
// put the driver into a state the engine cannot represent.
func fromGL[K comparable](table map[uint32]K, what string, code int32) K {
	v, ok := table[uint32(code)]
	if !ok {
		panic(fmt.Sprintf("gpu: driver reported unknown %s 0x%04X", what, uint32(code)))
	}
	return v
}

// GLEnum returns the OpenGL sized internal format of f.
func (f Format) GLEnum() uint32 { return toGL(formatToGL, "Format", f) }

func (t Targets) glEnum() uint32           { return toGL(targetToGL, "Targets", t) }
func (cd ComponentData) glEnum() uint32    { return toGL(componentDataToGL, "ComponentData", cd) }
func (ct ComponentType) glEnum() uint32    { return toGL(componentTypeToGL, "ComponentType", ct) }
func (vt ValueTests) glEnum() uint32       { return toGL(valueTestToGL, "ValueTests", vt) }
func (cm FaceCullModes) glEnum() uint32    { return toGL(cullToGL, "FaceCullModes", cm) }
func (bf BlendFactors) glEnum() uint32     { return toGL(blendFactorToGL, "BlendFactors", bf) }
func (bo BlendOps) glEnum() uint32         { return toGL(blendOpToGL, "BlendOps", bo) }
func (so StencilOps) glEnum() uint32       { return toGL(stencilOpToGL, "StencilOps", so) }
func (am ImageAccessModes) glEnum() uint32 { return toGL(accessToGL, "ImageAccessModes", am) }
func (wm WrappingModes) glEnum() uint32    { return toGL(wrappingToGL, "WrappingModes", wm) }

// funcGL returns the stencil function for a face; a face
// whose test is off always passes.
func (st StencilTest) funcGL() uint32 {
	if st.Test == TestOff {
		return gl.ALWAYS
	}
	return st.Test.glEnum()
}
