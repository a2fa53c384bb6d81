// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides render targets and GPU device integration for
// the pano viewer.
//
// A RenderTarget is where a renderer writes its frames. The CPU-backed
// PixmapTarget is the default for software rendering and host
// compositing; TextureTarget wraps a GPU texture for backends that
// render on device.
//
// DeviceHandle is the integration point with GPU frameworks: the host
// application provides the shared device, renderers receive it. The
// package never creates a device of its own.
package render
