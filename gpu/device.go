// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the primary integration point between this renderer
// and the host's GPU framework. The host implements DeviceHandle and
// passes it to the renderer at construction, so the renderer shares the
// host's device rather than creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving this
// package's own name for the interface while staying fully compatible
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes parameters for creating a texture, mirroring
// the WebGPU GPUTextureDescriptor shape.
type TextureDescriptor struct {
	Label string

	Width  uint32
	Height uint32

	// Depth is the texture depth for 3D textures, or array layer count.
	// Use 1 for regular 2D textures.
	Depth uint32

	// MipLevelCount is the number of mipmap levels. Use 1 for none.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling. Use 1 for
	// none.
	SampleCount uint32

	Format gputypes.TextureFormat
	Usage  TextureUsage
}

// TextureUsage specifies how a texture can be used. Flags combine with
// bitwise OR.
type TextureUsage uint32

const (
	TextureUsageCopySrc TextureUsage = 1 << iota
	TextureUsageCopyDst
	TextureUsageTextureBinding
	TextureUsageStorageBinding
	TextureUsageRenderAttachment
)

// Texture represents a GPU texture resource.
type Texture interface {
	Width() uint32
	Height() uint32
	Format() gputypes.TextureFormat
	CreateView() TextureView
	Destroy()
}

// TextureView represents a view into a texture, used to bind textures to
// shader stages.
type TextureView interface {
	Destroy()
}

// DefaultTextureDescriptor returns a TextureDescriptor with sensible
// defaults. Only Width, Height, and Format need to be set.
func DefaultTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:         width,
		Height:        height,
		Depth:         1,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        format,
		Usage:         TextureUsageTextureBinding | TextureUsageRenderAttachment,
	}
}

// DeviceCapabilities describes a GPU device's capabilities, used to
// determine available features and limits for rendering decisions.
type DeviceCapabilities struct {
	MaxTextureSize          uint32
	MaxBindGroups           uint32
	SupportsCompute         bool
	SupportsStorageTextures bool
	VendorName              string
	DeviceName              string
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations,
// used when no GPU is available (CPU-only tiling without a fine stage).
type NullDeviceHandle struct{}

func (NullDeviceHandle) Device() gpucontext.Device   { return nil }
func (NullDeviceHandle) Queue() gpucontext.Queue     { return nil }
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}
