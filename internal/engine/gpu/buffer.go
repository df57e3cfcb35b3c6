// Package gpu uploads meshes and textures to OpenGL and draws them.
package gpu

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/vertex"
	"github.com/Faultbox/orrery/pkg/mesh"
)

// Buffer is a mesh resident on the GPU.
type Buffer struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
	indexed       bool
}

// UploadSphere uploads an indexed, interleaved triangle mesh.
func UploadSphere(m *mesh.Mesh) (*Buffer, error) {
	if m.Topology != mesh.Triangles || len(m.Indices) == 0 {
		return nil, fmt.Errorf("%w: sphere upload needs indexed triangles", vertex.ErrLayout)
	}
	vertices, err := vertex.Interleave(m)
	if err != nil {
		return nil, err
	}

	b := &Buffer{count: int32(len(m.Indices)), mode: gl.TRIANGLES, indexed: true}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(vertex.Stride * 4)
	gl.VertexAttribPointerWithOffset(vertex.AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(vertex.AttribPosition)
	gl.VertexAttribPointerWithOffset(vertex.AttribNormal, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(vertex.AttribNormal)
	gl.VertexAttribPointerWithOffset(vertex.AttribTexCoord, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(vertex.AttribTexCoord)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return b, nil
}

// UploadLines uploads a position-only line loop.
func UploadLines(m *mesh.Mesh) (*Buffer, error) {
	if m.Topology != mesh.LineLoop || len(m.Positions) == 0 {
		return nil, fmt.Errorf("%w: line upload needs a non-empty line loop", vertex.ErrLayout)
	}
	return uploadPositions(vertex.Positions(m), gl.LINE_LOOP), nil
}

// UploadPositions uploads xyz triples drawn as triangles, as used by the skybox cube.
func UploadPositions(vertices []float32) (*Buffer, error) {
	if len(vertices) == 0 || len(vertices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d floats is not a list of xyz triples", vertex.ErrLayout, len(vertices))
	}
	return uploadPositions(vertices, gl.TRIANGLES), nil
}

func uploadPositions(vertices []float32, mode uint32) *Buffer {
	b := &Buffer{count: int32(len(vertices) / 3), mode: mode}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(vertex.AttribPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(vertex.AttribPosition)

	gl.BindVertexArray(0)
	return b
}

// Draw issues the draw call for the whole buffer.
func (b *Buffer) Draw() {
	gl.BindVertexArray(b.vao)
	if b.indexed {
		gl.DrawElements(b.mode, b.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (b *Buffer) Delete() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	*b = Buffer{}
}
