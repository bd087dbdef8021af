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

// Package vk expresses a subset of the Vulkan API as Go types that travel
// over a cereal stream. The methods of every type marked "+cereal" are
// generated by tools/cerealgen into vk_cereal_autogen.go.
package vk

import "fmt"

//go:generate go run goldfish.dev/cereal/tools/cerealgen -pkg vk -output vk_cereal_autogen.go types.go commands.go

// Limits of the fixed-size character arrays.
const (
	MaxPhysicalDeviceNameSize = 256
	UUIDSize                  = 16
)

// StructureType identifies the type of an extensible structure.
type StructureType uint32

// Structure types used by this package.
const (
	StructureTypeApplicationInfo               StructureType = 0
	StructureTypeInstanceCreateInfo            StructureType = 1
	StructureTypeDeviceQueueCreateInfo         StructureType = 2
	StructureTypeDeviceCreateInfo              StructureType = 3
	StructureTypeBindSparseInfo                StructureType = 7
	StructureTypePipelineShaderStageCreateInfo StructureType = 18
	StructureTypeComputePipelineCreateInfo     StructureType = 29
)

// Bool32 is a 32-bit boolean.
type Bool32 uint32

// True and False are the only valid Bool32 values.
const (
	False Bool32 = 0
	True  Bool32 = 1
)

// DeviceSize is a device memory size or offset.
type DeviceSize uint64

// Result is the status of a command.
type Result int32

// Results returned by the host.
const (
	Success                   Result = 0
	ErrorOutOfHostMemory      Result = -1
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorIncompatibleDriver   Result = -9
)

var resultNames = map[Result]string{
	Success:                   "VK_SUCCESS",
	ErrorOutOfHostMemory:      "VK_ERROR_OUT_OF_HOST_MEMORY",
	ErrorInitializationFailed: "VK_ERROR_INITIALIZATION_FAILED",
	ErrorDeviceLost:           "VK_ERROR_DEVICE_LOST",
	ErrorLayerNotPresent:      "VK_ERROR_LAYER_NOT_PRESENT",
	ErrorExtensionNotPresent:  "VK_ERROR_EXTENSION_NOT_PRESENT",
	ErrorIncompatibleDriver:   "VK_ERROR_INCOMPATIBLE_DRIVER",
}

// String implements fmt.Stringer.String.
func (r Result) String() string {
	if n, ok := resultNames[r]; ok {
		return n
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

// Error makes Result usable as an error for failures.
func (r Result) Error() string { return r.String() }

// Dispatchable and non-dispatchable handles are 64 bits on the wire.
type (
	Instance       uint64
	PhysicalDevice uint64
	Device         uint64
	Queue          uint64
	Image          uint64
	DeviceMemory   uint64
	Semaphore      uint64
	Fence          uint64
	ShaderModule   uint64
	Pipeline       uint64
	PipelineCache  uint64
	PipelineLayout uint64
)

// Flag and enum types.
type (
	InstanceCreateFlags            uint32
	DeviceCreateFlags              uint32
	DeviceQueueCreateFlags         uint32
	PhysicalDeviceType             uint32
	ImageAspectFlags               uint32
	SparseMemoryBindFlags          uint32
	SampleCountFlags               uint32
	ShaderStageFlags               uint32
	PipelineCreateFlags            uint32
	PipelineShaderStageCreateFlags uint32
)

// Physical device types.
const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGPU PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGPU   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGPU    PhysicalDeviceType = 3
	PhysicalDeviceTypeCPU           PhysicalDeviceType = 4
)

// Image aspects.
const (
	ImageAspectColorBit    ImageAspectFlags = 0x1
	ImageAspectDepthBit    ImageAspectFlags = 0x2
	ImageAspectStencilBit  ImageAspectFlags = 0x4
	ImageAspectMetadataBit ImageAspectFlags = 0x8
)

// SparseMemoryBindMetadataBit marks a metadata binding.
const SparseMemoryBindMetadataBit SparseMemoryBindFlags = 0x1

// ShaderStageComputeBit selects the compute stage.
const ShaderStageComputeBit ShaderStageFlags = 0x20

// MakeVersion packs a version number the way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// APIVersion10 is VK_API_VERSION_1_0.
var APIVersion10 = MakeVersion(1, 0, 0)

// ApplicationInfo describes the application to the driver.
//
// +cereal
type ApplicationInfo struct {
	SType              StructureType
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo holds the parameters of vkCreateInstance.
//
// +cereal
type InstanceCreateInfo struct {
	SType                 StructureType
	Flags                 InstanceCreateFlags
	ApplicationInfo       *ApplicationInfo
	EnabledLayerNames     []string
	EnabledExtensionNames []string
}

// PhysicalDeviceLimits reports implementation limits. size_t members are
// carried as 64-bit values.
//
// +cereal
type PhysicalDeviceLimits struct {
	MaxImageDimension1D                             uint32
	MaxImageDimension2D                             uint32
	MaxImageDimension3D                             uint32
	MaxImageDimensionCube                           uint32
	MaxImageArrayLayers                             uint32
	MaxTexelBufferElements                          uint32
	MaxUniformBufferRange                           uint32
	MaxStorageBufferRange                           uint32
	MaxPushConstantsSize                            uint32
	MaxMemoryAllocationCount                        uint32
	MaxSamplerAllocationCount                       uint32
	BufferImageGranularity                          DeviceSize
	SparseAddressSpaceSize                          DeviceSize
	MaxBoundDescriptorSets                          uint32
	MaxPerStageDescriptorSamplers                   uint32
	MaxPerStageDescriptorUniformBuffers             uint32
	MaxPerStageDescriptorStorageBuffers             uint32
	MaxPerStageDescriptorSampledImages              uint32
	MaxPerStageDescriptorStorageImages              uint32
	MaxPerStageDescriptorInputAttachments           uint32
	MaxPerStageResources                            uint32
	MaxDescriptorSetSamplers                        uint32
	MaxDescriptorSetUniformBuffers                  uint32
	MaxDescriptorSetUniformBuffersDynamic           uint32
	MaxDescriptorSetStorageBuffers                  uint32
	MaxDescriptorSetStorageBuffersDynamic           uint32
	MaxDescriptorSetSampledImages                   uint32
	MaxDescriptorSetStorageImages                   uint32
	MaxDescriptorSetInputAttachments                uint32
	MaxVertexInputAttributes                        uint32
	MaxVertexInputBindings                          uint32
	MaxVertexInputAttributeOffset                   uint32
	MaxVertexInputBindingStride                     uint32
	MaxVertexOutputComponents                       uint32
	MaxTessellationGenerationLevel                  uint32
	MaxTessellationPatchSize                        uint32
	MaxTessellationControlPerVertexInputComponents  uint32
	MaxTessellationControlPerVertexOutputComponents uint32
	MaxTessellationControlPerPatchOutputComponents  uint32
	MaxTessellationControlTotalOutputComponents     uint32
	MaxTessellationEvaluationInputComponents        uint32
	MaxTessellationEvaluationOutputComponents       uint32
	MaxGeometryShaderInvocations                    uint32
	MaxGeometryInputComponents                      uint32
	MaxGeometryOutputComponents                     uint32
	MaxGeometryOutputVertices                       uint32
	MaxGeometryTotalOutputComponents                uint32
	MaxFragmentInputComponents                      uint32
	MaxFragmentOutputAttachments                    uint32
	MaxFragmentDualSrcAttachments                   uint32
	MaxFragmentCombinedOutputResources              uint32
	MaxComputeSharedMemorySize                      uint32
	MaxComputeWorkGroupCount                        [3]uint32
	MaxComputeWorkGroupInvocations                  uint32
	MaxComputeWorkGroupSize                         [3]uint32
	SubPixelPrecisionBits                           uint32
	SubTexelPrecisionBits                           uint32
	MipmapPrecisionBits                             uint32
	MaxDrawIndexedIndexValue                        uint32
	MaxDrawIndirectCount                            uint32
	MaxSamplerLodBias                               float32
	MaxSamplerAnisotropy                            float32
	MaxViewports                                    uint32
	MaxViewportDimensions                           [2]uint32
	ViewportBoundsRange                             [2]float32
	ViewportSubPixelBits                            uint32
	MinMemoryMapAlignment                           uint64
	MinTexelBufferOffsetAlignment                   DeviceSize
	MinUniformBufferOffsetAlignment                 DeviceSize
	MinStorageBufferOffsetAlignment                 DeviceSize
	MinTexelOffset                                  int32
	MaxTexelOffset                                  uint32
	MinTexelGatherOffset                            int32
	MaxTexelGatherOffset                            uint32
	MinInterpolationOffset                          float32
	MaxInterpolationOffset                          float32
	SubPixelInterpolationOffsetBits                 uint32
	MaxFramebufferWidth                             uint32
	MaxFramebufferHeight                            uint32
	MaxFramebufferLayers                            uint32
	FramebufferColorSampleCounts                    SampleCountFlags
	FramebufferDepthSampleCounts                    SampleCountFlags
	FramebufferStencilSampleCounts                  SampleCountFlags
	FramebufferNoAttachmentsSampleCounts            SampleCountFlags
	MaxColorAttachments                             uint32
	SampledImageColorSampleCounts                   SampleCountFlags
	SampledImageIntegerSampleCounts                 SampleCountFlags
	SampledImageDepthSampleCounts                   SampleCountFlags
	SampledImageStencilSampleCounts                 SampleCountFlags
	StorageImageSampleCounts                        SampleCountFlags
	MaxSampleMaskWords                              uint32
	TimestampComputeAndGraphics                     Bool32
	TimestampPeriod                                 float32
	MaxClipDistances                                uint32
	MaxCullDistances                                uint32
	MaxCombinedClipAndCullDistances                 uint32
	DiscreteQueuePriorities                         uint32
	PointSizeRange                                  [2]float32
	LineWidthRange                                  [2]float32
	PointSizeGranularity                            float32
	LineWidthGranularity                            float32
	StrictLines                                     Bool32
	StandardSampleLocations                         Bool32
	OptimalBufferCopyOffsetAlignment                DeviceSize
	OptimalBufferCopyRowPitchAlignment              DeviceSize
	NonCoherentAtomSize                             DeviceSize
}

// +cereal
type PhysicalDeviceSparseProperties struct {
	ResidencyStandard2DBlockShape            Bool32
	ResidencyStandard2DMultisampleBlockShape Bool32
	ResidencyStandard3DBlockShape            Bool32
	ResidencyAlignedMipSize                  Bool32
	ResidencyNonResidentStrict               Bool32
}

// PhysicalDeviceProperties is the reply to
// vkGetPhysicalDeviceProperties. DeviceName is NUL padded.
//
// +cereal
type PhysicalDeviceProperties struct {
	APIVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        [MaxPhysicalDeviceNameSize]byte
	PipelineCacheUUID [UUIDSize]uint8
	Limits            PhysicalDeviceLimits
	SparseProperties  PhysicalDeviceSparseProperties
}

// Name returns DeviceName up to its first NUL.
func (p *PhysicalDeviceProperties) Name() string {
	for i, c := range p.DeviceName {
		if c == 0 {
			return string(p.DeviceName[:i])
		}
	}
	return string(p.DeviceName[:])
}

// SetName copies name into DeviceName, truncating so that a NUL remains.
func (p *PhysicalDeviceProperties) SetName(name string) {
	p.DeviceName = [MaxPhysicalDeviceNameSize]byte{}
	copy(p.DeviceName[:MaxPhysicalDeviceNameSize-1], name)
}

// +cereal
type ImageSubresource struct {
	AspectMask ImageAspectFlags
	MipLevel   uint32
	ArrayLayer uint32
}

// +cereal
type Offset3D struct {
	X, Y, Z int32
}

// +cereal
type Extent3D struct {
	Width, Height, Depth uint32
}

// +cereal
type SparseImageMemoryBind struct {
	Subresource  ImageSubresource
	Offset       Offset3D
	Extent       Extent3D
	Memory       DeviceMemory
	MemoryOffset DeviceSize
	Flags        SparseMemoryBindFlags
}

// +cereal
type SparseImageMemoryBindInfo struct {
	Image Image
	Binds []SparseImageMemoryBind
}

// BindSparseInfo is one batch of vkQueueBindSparse.
//
// +cereal
type BindSparseInfo struct {
	SType            StructureType
	WaitSemaphores   []Semaphore
	ImageBinds       []SparseImageMemoryBindInfo
	SignalSemaphores []Semaphore
}

// +cereal
type DeviceQueueCreateInfo struct {
	SType            StructureType
	Flags            DeviceQueueCreateFlags
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

// DeviceCreateInfo holds the parameters of vkCreateDevice.
//
// +cereal
type DeviceCreateInfo struct {
	SType                 StructureType
	Flags                 DeviceCreateFlags
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledLayerNames     []string
	EnabledExtensionNames []string
}

// +cereal
type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uint64
}

// SpecializationInfo carries shader specialization constants. Data holds
// DataSize opaque bytes.
//
// +cereal
type SpecializationInfo struct {
	MapEntries []SpecializationMapEntry
	DataSize   uint64
	Data       []byte `cereal:"blob=DataSize"`
}

// PipelineShaderStageCreateInfo describes one shader stage. A nil
// SpecializationInfo is distinct from an empty one.
//
// +cereal
type PipelineShaderStageCreateInfo struct {
	SType              StructureType
	Flags              PipelineShaderStageCreateFlags
	Stage              ShaderStageFlags
	Module             ShaderModule
	Name               string
	SpecializationInfo *SpecializationInfo
}

// +cereal
type ComputePipelineCreateInfo struct {
	SType             StructureType
	Flags             PipelineCreateFlags
	Stage             PipelineShaderStageCreateInfo
	Layout            PipelineLayout
	BasePipelineIndex int32
}
