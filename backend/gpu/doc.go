// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu provides the GPU rendering backend for pano, built on
// gogpu/wgpu. It registers itself as "gpu" in the backend registry on
// import:
//
//	import _ "github.com/gogpu/pano/backend/gpu"
//
// The backend probes for a usable adapter at Init; hosts on machines
// without one fall back to the software backend. Build with the nogpu
// tag to exclude the GPU path entirely.
package gpu
