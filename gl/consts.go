// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Enumerant values, as defined by the Khronos OpenGL registry.
const (
	NONE  = 0
	FALSE = 0
	TRUE  = 1

	// Capabilities.
	BLEND                     = 0x0BE2
	CULL_FACE                 = 0x0B44
	DEPTH_TEST                = 0x0B71
	STENCIL_TEST              = 0x0B90
	SCISSOR_TEST              = 0x0C11
	TEXTURE_CUBE_MAP_SEAMLESS = 0x884F

	// State queries.
	VIEWPORT                     = 0x0BA2
	SCISSOR_BOX                  = 0x0C10
	DEPTH_FUNC                   = 0x0B74
	DEPTH_WRITEMASK              = 0x0B72
	COLOR_WRITEMASK              = 0x0C23
	CULL_FACE_MODE               = 0x0B45
	BLEND_DST_RGB                = 0x80C8
	BLEND_SRC_RGB                = 0x80C9
	BLEND_DST_ALPHA              = 0x80CA
	BLEND_SRC_ALPHA              = 0x80CB
	BLEND_EQUATION_RGB           = 0x8009
	BLEND_EQUATION_ALPHA         = 0x883D
	BLEND_COLOR                  = 0x8005
	STENCIL_FUNC                 = 0x0B92
	STENCIL_VALUE_MASK           = 0x0B93
	STENCIL_FAIL                 = 0x0B94
	STENCIL_PASS_DEPTH_FAIL      = 0x0B95
	STENCIL_PASS_DEPTH_PASS      = 0x0B96
	STENCIL_REF                  = 0x0B97
	STENCIL_WRITEMASK            = 0x0B98
	STENCIL_BACK_FUNC            = 0x8800
	STENCIL_BACK_FAIL            = 0x8801
	STENCIL_BACK_PASS_DEPTH_FAIL = 0x8802
	STENCIL_BACK_PASS_DEPTH_PASS = 0x8803
	STENCIL_BACK_REF             = 0x8CA3
	STENCIL_BACK_VALUE_MASK      = 0x8CA4
	STENCIL_BACK_WRITEMASK       = 0x8CA5
	NUM_EXTENSIONS               = 0x821D
	EXTENSIONS                   = 0x1F03

	// Faces.
	FRONT          = 0x0404
	BACK           = 0x0405
	FRONT_AND_BACK = 0x0408

	// Comparison functions.
	NEVER    = 0x0200
	LESS     = 0x0201
	EQUAL    = 0x0202
	LEQUAL   = 0x0203
	GREATER  = 0x0204
	NOTEQUAL = 0x0205
	GEQUAL   = 0x0206
	ALWAYS   = 0x0207

	// Blend factors.
	ZERO                     = 0
	ONE                      = 1
	SRC_COLOR                = 0x0300
	ONE_MINUS_SRC_COLOR      = 0x0301
	SRC_ALPHA                = 0x0302
	ONE_MINUS_SRC_ALPHA      = 0x0303
	DST_ALPHA                = 0x0304
	ONE_MINUS_DST_ALPHA      = 0x0305
	DST_COLOR                = 0x0306
	ONE_MINUS_DST_COLOR      = 0x0307
	SRC_ALPHA_SATURATE       = 0x0308
	CONSTANT_COLOR           = 0x8001
	ONE_MINUS_CONSTANT_COLOR = 0x8002
	CONSTANT_ALPHA           = 0x8003
	ONE_MINUS_CONSTANT_ALPHA = 0x8004

	// Blend equations.
	FUNC_ADD              = 0x8006
	MIN                   = 0x8007
	MAX                   = 0x8008
	FUNC_SUBTRACT         = 0x800A
	FUNC_REVERSE_SUBTRACT = 0x800B

	// Stencil operations.
	KEEP      = 0x1E00
	REPLACE   = 0x1E01
	INCR      = 0x1E02
	DECR      = 0x1E03
	INVERT    = 0x150A
	INCR_WRAP = 0x8507
	DECR_WRAP = 0x8508

	// Clear buffers.
	COLOR   = 0x1800
	DEPTH   = 0x1801
	STENCIL = 0x1802

	// Texture targets.
	TEXTURE_1D             = 0x0DE0
	TEXTURE_2D             = 0x0DE1
	TEXTURE_3D             = 0x806F
	TEXTURE_1D_ARRAY       = 0x8C18
	TEXTURE_2D_ARRAY       = 0x8C1A
	TEXTURE_CUBE_MAP       = 0x8513
	TEXTURE_CUBE_MAP_ARRAY = 0x9009

	// Texture and sampler parameters.
	TEXTURE_MAG_FILTER     = 0x2800
	TEXTURE_MIN_FILTER     = 0x2801
	TEXTURE_WRAP_S         = 0x2802
	TEXTURE_WRAP_T         = 0x2803
	TEXTURE_WRAP_R         = 0x8072
	TEXTURE_COMPARE_MODE   = 0x884C
	TEXTURE_COMPARE_FUNC   = 0x884D
	COMPARE_REF_TO_TEXTURE = 0x884E

	// Filters.
	NEAREST                = 0x2600
	LINEAR                 = 0x2601
	NEAREST_MIPMAP_NEAREST = 0x2700
	LINEAR_MIPMAP_NEAREST  = 0x2701
	NEAREST_MIPMAP_LINEAR  = 0x2702
	LINEAR_MIPMAP_LINEAR   = 0x2703

	// Wrap modes.
	REPEAT               = 0x2901
	CLAMP_TO_BORDER      = 0x812D
	CLAMP_TO_EDGE        = 0x812F
	MIRRORED_REPEAT      = 0x8370
	MIRROR_CLAMP_TO_EDGE = 0x8743

	// Image access.
	READ_ONLY  = 0x88B8
	WRITE_ONLY = 0x88B9
	READ_WRITE = 0x88BA

	// Sized internal formats.
	R8                                 = 0x8229
	RG8                                = 0x822B
	RGB8                               = 0x8051
	RGBA8                              = 0x8058
	SRGB8                              = 0x8C41
	SRGB8_ALPHA8                       = 0x8C43
	R16F                               = 0x822D
	R32F                               = 0x822E
	RG16F                              = 0x822F
	RG32F                              = 0x8230
	RGBA32F                            = 0x8814
	RGBA16F                            = 0x881A
	R8UI                               = 0x8232
	R32I                               = 0x8235
	R32UI                              = 0x8236
	RGBA32UI                           = 0x8D70
	RGBA8UI                            = 0x8D7C
	RGBA32I                            = 0x8D82
	DEPTH_COMPONENT16                  = 0x81A5
	DEPTH_COMPONENT24                  = 0x81A6
	DEPTH_COMPONENT32F                 = 0x8CAC
	DEPTH24_STENCIL8                   = 0x88F0
	DEPTH32F_STENCIL8                  = 0x8CAD
	COMPRESSED_RGB_S3TC_DXT1_EXT       = 0x83F0
	COMPRESSED_RGBA_S3TC_DXT5_EXT      = 0x83F3
	COMPRESSED_RED_RGTC1               = 0x8DBB
	COMPRESSED_RG_RGTC2                = 0x8DBD
	COMPRESSED_RGBA_BPTC_UNORM         = 0x8E8C
	COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT = 0x8E8F

	// Pixel transfer formats.
	STENCIL_INDEX   = 0x1901
	DEPTH_COMPONENT = 0x1902
	RED             = 0x1903
	RGB             = 0x1907
	RGBA            = 0x1908
	BGR             = 0x80E0
	BGRA            = 0x80E1
	RG              = 0x8227
	RG_INTEGER      = 0x8228
	RED_INTEGER     = 0x8D94
	RGB_INTEGER     = 0x8D98
	RGBA_INTEGER    = 0x8D99

	// Pixel transfer types.
	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
)

// BindlessExtension is the extension that every [Driver] must support.
const BindlessExtension = "GL_ARB_bindless_texture"
