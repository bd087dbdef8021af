// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vk

import (
	"fmt"

	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/command"
)

var (
	sampleLayers = []string{
		"layer0",
		"layer1: test layer",
	}
	sampleExtensions = []string{
		"VK_KHR_8bit_storage",
		"VK_KHR_android_surface",
		"VK_MVK_macos_surface",
	}
)

// SampleInstanceCreateInfo returns an instance create info with application
// info and two name arrays.
func SampleInstanceCreateInfo() InstanceCreateInfo {
	return InstanceCreateInfo{
		SType: StructureTypeInstanceCreateInfo,
		ApplicationInfo: &ApplicationInfo{
			SType:              StructureTypeApplicationInfo,
			ApplicationName:    "VulkanStreamTest",
			ApplicationVersion: 6,
			EngineName:         "VulkanStreamTestEngine",
			EngineVersion:      4,
			APIVersion:         APIVersion10,
		},
		EnabledLayerNames:     append([]string(nil), sampleLayers...),
		EnabledExtensionNames: append([]string(nil), sampleExtensions...),
	}
}

// SamplePhysicalDeviceProperties returns properties with every limit set to
// a distinct value.
func SamplePhysicalDeviceProperties() PhysicalDeviceProperties {
	p := PhysicalDeviceProperties{
		APIVersion:    APIVersion10,
		DriverVersion: 0,
		VendorID:      0x8086,
		DeviceID:      0x7800,
		DeviceType:    PhysicalDeviceTypeIntegratedGPU,
		Limits: PhysicalDeviceLimits{
			MaxImageDimension1D:                             0x00,
			MaxImageDimension2D:                             0x01,
			MaxImageDimension3D:                             0x02,
			MaxImageDimensionCube:                           0x03,
			MaxImageArrayLayers:                             0x04,
			MaxTexelBufferElements:                          0x05,
			MaxUniformBufferRange:                           0x06,
			MaxStorageBufferRange:                           0x07,
			MaxPushConstantsSize:                            0x08,
			MaxMemoryAllocationCount:                        0x09,
			MaxSamplerAllocationCount:                       0x0a,
			BufferImageGranularity:                          0x0b,
			SparseAddressSpaceSize:                          0x0c,
			MaxBoundDescriptorSets:                          0x0d,
			MaxPerStageDescriptorSamplers:                   0x0e,
			MaxPerStageDescriptorUniformBuffers:             0x0f,
			MaxPerStageDescriptorStorageBuffers:             0x10,
			MaxPerStageDescriptorSampledImages:              0x11,
			MaxPerStageDescriptorStorageImages:              0x12,
			MaxPerStageDescriptorInputAttachments:           0x13,
			MaxPerStageResources:                            0x14,
			MaxDescriptorSetSamplers:                        0x15,
			MaxDescriptorSetUniformBuffers:                  0x16,
			MaxDescriptorSetUniformBuffersDynamic:           0x17,
			MaxDescriptorSetStorageBuffers:                  0x18,
			MaxDescriptorSetStorageBuffersDynamic:           0x19,
			MaxDescriptorSetSampledImages:                   0x1a,
			MaxDescriptorSetStorageImages:                   0x1b,
			MaxDescriptorSetInputAttachments:                0x1c,
			MaxVertexInputAttributes:                        0x1d,
			MaxVertexInputBindings:                          0x1e,
			MaxVertexInputAttributeOffset:                   0x1f,
			MaxVertexInputBindingStride:                     0x20,
			MaxVertexOutputComponents:                       0x21,
			MaxTessellationGenerationLevel:                  0x22,
			MaxTessellationPatchSize:                        0x23,
			MaxTessellationControlPerVertexInputComponents:  0x24,
			MaxTessellationControlPerVertexOutputComponents: 0x25,
			MaxTessellationControlPerPatchOutputComponents:  0x26,
			MaxTessellationControlTotalOutputComponents:     0x27,
			MaxTessellationEvaluationInputComponents:        0x28,
			MaxTessellationEvaluationOutputComponents:       0x29,
			MaxGeometryShaderInvocations:                    0x2a,
			MaxGeometryInputComponents:                      0x2b,
			MaxGeometryOutputComponents:                     0x2c,
			MaxGeometryOutputVertices:                       0x2d,
			MaxGeometryTotalOutputComponents:                0x2e,
			MaxFragmentInputComponents:                      0x2f,
			MaxFragmentOutputAttachments:                    0x30,
			MaxFragmentDualSrcAttachments:                   0x31,
			MaxFragmentCombinedOutputResources:              0x32,
			MaxComputeSharedMemorySize:                      0x33,
			MaxComputeWorkGroupCount:                        [3]uint32{0x1, 0x2, 0x3},
			MaxComputeWorkGroupInvocations:                  0x35,
			MaxComputeWorkGroupSize:                         [3]uint32{0x4, 0x5, 0x6},
			SubPixelPrecisionBits:                           0x37,
			SubTexelPrecisionBits:                           0x38,
			MipmapPrecisionBits:                             0x39,
			MaxDrawIndexedIndexValue:                        0x3a,
			MaxDrawIndirectCount:                            0x3b,
			MaxSamplerLodBias:                               1.0,
			MaxSamplerAnisotropy:                            1.0,
			MaxViewports:                                    0x3e,
			MaxViewportDimensions:                           [2]uint32{0x7, 0x8},
			ViewportBoundsRange:                             [2]float32{0.4, 0.5},
			ViewportSubPixelBits:                            0x41,
			MinMemoryMapAlignment:                           0x42,
			MinTexelBufferOffsetAlignment:                   0x43,
			MinUniformBufferOffsetAlignment:                 0x44,
			MinStorageBufferOffsetAlignment:                 0x45,
			MinTexelOffset:                                  0x46,
			MaxTexelOffset:                                  0x47,
			MinTexelGatherOffset:                            0x48,
			MaxTexelGatherOffset:                            0x49,
			MinInterpolationOffset:                          10.0,
			MaxInterpolationOffset:                          11.0,
			SubPixelInterpolationOffsetBits:                 0x4c,
			MaxFramebufferWidth:                             0x4d,
			MaxFramebufferHeight:                            0x4e,
			MaxFramebufferLayers:                            0x4f,
			FramebufferColorSampleCounts:                    0x50,
			FramebufferDepthSampleCounts:                    0x51,
			FramebufferStencilSampleCounts:                  0x52,
			FramebufferNoAttachmentsSampleCounts:            0x53,
			MaxColorAttachments:                             0x54,
			SampledImageColorSampleCounts:                   0x55,
			SampledImageIntegerSampleCounts:                 0x56,
			SampledImageDepthSampleCounts:                   0x57,
			SampledImageStencilSampleCounts:                 0x58,
			StorageImageSampleCounts:                        0x59,
			MaxSampleMaskWords:                              0x5a,
			TimestampComputeAndGraphics:                     0x5b,
			TimestampPeriod:                                 100.0,
			MaxClipDistances:                                0x5d,
			MaxCullDistances:                                0x5e,
			MaxCombinedClipAndCullDistances:                 0x5f,
			DiscreteQueuePriorities:                         0x60,
			PointSizeRange:                                  [2]float32{0.0, 1.0},
			LineWidthRange:                                  [2]float32{1.0, 2.0},
			PointSizeGranularity:                            3.0,
			LineWidthGranularity:                            4.0,
			StrictLines:                                     0x65,
			StandardSampleLocations:                         0x66,
			OptimalBufferCopyOffsetAlignment:                0x67,
			OptimalBufferCopyRowPitchAlignment:              0x68,
			NonCoherentAtomSize:                             0x69,
		},
		SparseProperties: PhysicalDeviceSparseProperties{
			ResidencyStandard2DBlockShape:            0xff,
			ResidencyStandard2DMultisampleBlockShape: 0x00,
			ResidencyStandard3DBlockShape:            0x11,
			ResidencyAlignedMipSize:                  0x22,
			ResidencyNonResidentStrict:               0x33,
		},
	}
	p.SetName("Intel740")
	copy(p.PipelineCacheUUID[:], "123456789abcdef")
	return p
}

// SampleBindCount is the number of binds in SampleSparseImageMemoryBindInfo.
const SampleBindCount = 14

// SampleSparseImageMemoryBindInfo returns a bind info whose binds differ in
// every varying field.
func SampleSparseImageMemoryBindInfo() SparseImageMemoryBindInfo {
	info := SparseImageMemoryBindInfo{
		Image: 54,
		Binds: make([]SparseImageMemoryBind, SampleBindCount),
	}
	for i := range info.Binds {
		u := uint32(i)
		info.Binds[i] = SparseImageMemoryBind{
			Subresource: ImageSubresource{
				AspectMask: ImageAspectColorBit | ImageAspectDepthBit,
				MipLevel:   u,
				ArrayLayer: u * 2,
			},
			Offset:       Offset3D{X: 1, Y: 2 + int32(i), Z: 3},
			Extent:       Extent3D{Width: 10, Height: 20 * u, Depth: 30},
			Memory:       DeviceMemory(0xff - i),
			MemoryOffset: DeviceSize(0x12345678 + i),
			Flags:        SparseMemoryBindMetadataBit,
		}
	}
	return info
}

// SampleQueueCount is the number of priorities in
// SampleDeviceQueueCreateInfo.
const SampleQueueCount = 4

// SampleDeviceQueueCreateInfo returns a queue create info for family 1.
func SampleDeviceQueueCreateInfo() DeviceQueueCreateInfo {
	info := DeviceQueueCreateInfo{
		SType:            StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: 1,
		QueuePriorities:  make([]float32, SampleQueueCount),
	}
	for i := range info.QueuePriorities {
		info.QueuePriorities[i] = float32(i) * 4.0
	}
	return info
}

// Sizes of SampleSpecializationInfo.
const (
	SampleMapEntries = 5
	SampleDataSize   = 54
)

// SampleSpecializationInfo returns a specialization info whose data bytes
// count up from zero.
func SampleSpecializationInfo() SpecializationInfo {
	info := SpecializationInfo{
		MapEntries: make([]SpecializationMapEntry, SampleMapEntries),
		DataSize:   SampleDataSize,
		Data:       make([]byte, SampleDataSize),
	}
	for i := range info.MapEntries {
		u := uint32(i)
		info.MapEntries[i] = SpecializationMapEntry{
			ConstantID: 8*u + 0,
			Offset:     8*u + 1,
			Size:       uint64(8*u + 2),
		}
	}
	for i := range info.Data {
		info.Data[i] = byte(i)
	}
	return info
}

// Call is one step of a scripted command sequence.
type Call struct {
	// Request is sent as-is after Prepare.
	Request cereal.Marshallable

	// Reply receives the reply body; nil for status-only commands.
	Reply cereal.Marshallable

	// Prepare, if set, is called with the whole sequence once the earlier
	// calls have completed, and fills handles from their replies.
	Prepare func(calls []Call)
}

// SampleCalls returns a command sequence that touches every command of this
// package: create an instance, query its device, create a logical device,
// bind sparse memory, build a specialized compute pipeline, then tear
// everything down.
func SampleCalls() []Call {
	instance := func(calls []Call) Instance {
		return calls[0].Reply.(*CreateInstanceReply).Instance
	}
	physical := func(calls []Call) PhysicalDevice {
		return calls[1].Reply.(*EnumeratePhysicalDevicesReply).PhysicalDevices[0]
	}
	device := func(calls []Call) Device {
		return calls[3].Reply.(*CreateDeviceReply).Device
	}

	spec := SampleSpecializationInfo()
	sparse := SampleSparseImageMemoryBindInfo()
	return []Call{
		{
			Request: &CreateInstanceParams{CreateInfo: SampleInstanceCreateInfo()},
			Reply:   new(CreateInstanceReply),
		},
		{
			Request: new(EnumeratePhysicalDevicesParams),
			Reply:   new(EnumeratePhysicalDevicesReply),
			Prepare: func(calls []Call) {
				calls[1].Request.(*EnumeratePhysicalDevicesParams).Instance = instance(calls)
			},
		},
		{
			Request: new(GetPhysicalDevicePropertiesParams),
			Reply:   new(GetPhysicalDevicePropertiesReply),
			Prepare: func(calls []Call) {
				calls[2].Request.(*GetPhysicalDevicePropertiesParams).PhysicalDevice = physical(calls)
			},
		},
		{
			Request: &CreateDeviceParams{
				CreateInfo: DeviceCreateInfo{
					SType:                 StructureTypeDeviceCreateInfo,
					QueueCreateInfos:      []DeviceQueueCreateInfo{SampleDeviceQueueCreateInfo()},
					EnabledExtensionNames: []string{"VK_KHR_8bit_storage"},
				},
			},
			Reply: new(CreateDeviceReply),
			Prepare: func(calls []Call) {
				calls[3].Request.(*CreateDeviceParams).PhysicalDevice = physical(calls)
			},
		},
		{
			Request: &QueueBindSparseParams{
				Queue: 1,
				BindInfos: []BindSparseInfo{{
					SType:            StructureTypeBindSparseInfo,
					WaitSemaphores:   []Semaphore{7, 8},
					ImageBinds:       []SparseImageMemoryBindInfo{sparse},
					SignalSemaphores: []Semaphore{9},
				}},
			},
		},
		{
			Request: &CreateComputePipelinesParams{
				CreateInfos: []ComputePipelineCreateInfo{{
					SType: StructureTypeComputePipelineCreateInfo,
					Stage: PipelineShaderStageCreateInfo{
						SType:              StructureTypePipelineShaderStageCreateInfo,
						Stage:              ShaderStageComputeBit,
						Module:             3,
						Name:               "main",
						SpecializationInfo: &spec,
					},
					BasePipelineIndex: -1,
				}},
			},
			Reply: new(CreateComputePipelinesReply),
			Prepare: func(calls []Call) {
				calls[5].Request.(*CreateComputePipelinesParams).Device = device(calls)
			},
		},
		{
			Request: new(DestroyDeviceParams),
			Prepare: func(calls []Call) {
				calls[6].Request.(*DestroyDeviceParams).Device = device(calls)
			},
		},
		{
			Request: new(DestroyInstanceParams),
			Prepare: func(calls []Call) {
				calls[7].Request.(*DestroyInstanceParams).Instance = instance(calls)
			},
		},
	}
}

// Play issues calls in order through cl and stops at the first failure.
func Play(cl *command.Client, calls []Call) error {
	for i := range calls {
		c := &calls[i]
		if c.Prepare != nil {
			c.Prepare(calls)
		}
		if err := cl.Call(c.Request, c.Reply); err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
	}
	return nil
}
