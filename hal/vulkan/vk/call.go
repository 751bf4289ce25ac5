// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Call invokes a raw Vulkan function pointer with register-width arguments,
// mirroring the calling convention of syscall.SyscallN: every argument and
// the return value are treated as a single machine word. Vulkan's C ABI
// passes handles, enums, and pointers interchangeably in general-purpose
// registers, so a uniform word-sized signature is sufficient for the whole
// API surface without hand-describing each function's true C prototype.
//
// This lets the same call path work on any platform goffi supports, unlike
// syscall.SyscallN which only exists on Windows.
func Call(fn uintptr, args ...uintptr) (r1, r2 uintptr, err error) {
	cif := cifForArgc(len(args))

	argPtrs := make([]unsafe.Pointer, len(args))
	words := make([]uintptr, len(args))
	for i, a := range args {
		words[i] = a
		argPtrs[i] = unsafe.Pointer(&words[i])
	}

	var ret uintptr
	callErr := ffi.CallFunction(cif, unsafe.Pointer(fn), unsafe.Pointer(&ret), argPtrs)
	return ret, 0, callErr
}

// cifCache holds one lazily-prepared CallInterface per argument count, since
// goffi requires a signature matching argument count up front but Vulkan
// calls otherwise share a uniform word-sized shape.
var (
	cifCacheMu sync.Mutex
	cifCache   = map[int]*types.CallInterface{}
)

func cifForArgc(argc int) *types.CallInterface {
	cifCacheMu.Lock()
	defer cifCacheMu.Unlock()

	if cif, ok := cifCache[argc]; ok {
		return cif
	}

	argTypes := make([]*types.TypeDescriptor, argc)
	for i := range argTypes {
		argTypes[i] = types.UInt64TypeDescriptor
	}

	cif := &types.CallInterface{}
	if err := ffi.PrepareCallInterface(cif, types.DefaultCall, types.UInt64TypeDescriptor, argTypes); err != nil {
		panic("vk: failed to prepare call interface for argc " + itoa(argc) + ": " + err.Error())
	}
	cifCache[argc] = cif
	return cif
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
