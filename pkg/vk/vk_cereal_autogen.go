// Automatically generated cereal implementation. See tools/cerealgen.

package vk

import (
	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/check"
	"goldfish.dev/cereal/pkg/cereal/deepcopy"
)

// Marshallable types defined by this file.
var (
	_ cereal.Marshallable = (*ApplicationInfo)(nil)
	_ cereal.Marshallable = (*InstanceCreateInfo)(nil)
	_ cereal.Marshallable = (*PhysicalDeviceLimits)(nil)
	_ cereal.Marshallable = (*PhysicalDeviceSparseProperties)(nil)
	_ cereal.Marshallable = (*PhysicalDeviceProperties)(nil)
	_ cereal.Marshallable = (*ImageSubresource)(nil)
	_ cereal.Marshallable = (*Offset3D)(nil)
	_ cereal.Marshallable = (*Extent3D)(nil)
	_ cereal.Marshallable = (*SparseImageMemoryBind)(nil)
	_ cereal.Marshallable = (*SparseImageMemoryBindInfo)(nil)
	_ cereal.Marshallable = (*BindSparseInfo)(nil)
	_ cereal.Marshallable = (*DeviceQueueCreateInfo)(nil)
	_ cereal.Marshallable = (*DeviceCreateInfo)(nil)
	_ cereal.Marshallable = (*SpecializationMapEntry)(nil)
	_ cereal.Marshallable = (*SpecializationInfo)(nil)
	_ cereal.Marshallable = (*PipelineShaderStageCreateInfo)(nil)
	_ cereal.Marshallable = (*ComputePipelineCreateInfo)(nil)
	_ cereal.Marshallable = (*CreateInstanceParams)(nil)
	_ cereal.Marshallable = (*CreateInstanceReply)(nil)
	_ cereal.Marshallable = (*DestroyInstanceParams)(nil)
	_ cereal.Marshallable = (*EnumeratePhysicalDevicesParams)(nil)
	_ cereal.Marshallable = (*EnumeratePhysicalDevicesReply)(nil)
	_ cereal.Marshallable = (*GetPhysicalDevicePropertiesParams)(nil)
	_ cereal.Marshallable = (*GetPhysicalDevicePropertiesReply)(nil)
	_ cereal.Marshallable = (*CreateDeviceParams)(nil)
	_ cereal.Marshallable = (*CreateDeviceReply)(nil)
	_ cereal.Marshallable = (*DestroyDeviceParams)(nil)
	_ cereal.Marshallable = (*QueueBindSparseParams)(nil)
	_ cereal.Marshallable = (*CreateComputePipelinesParams)(nil)
	_ cereal.Marshallable = (*CreateComputePipelinesReply)(nil)
)

// Marshal implements cereal.Marshaler.Marshal.
func (x *ApplicationInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.SType); err != nil {
		return err
	}
	if err := s.PutString(x.ApplicationName); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.ApplicationVersion); err != nil {
		return err
	}
	if err := s.PutString(x.EngineName); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.EngineVersion); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.APIVersion); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *ApplicationInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.SType); err != nil {
		return err
	}
	if x.ApplicationName, err = s.GetString(); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.ApplicationVersion); err != nil {
		return err
	}
	if x.EngineName, err = s.GetString(); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.EngineVersion); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.APIVersion); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *ApplicationInfo) CheckEqual(y *ApplicationInfo, c *check.Checker) {
	check.Scalar(c, "SType", x.SType, y.SType)
	check.String(c, "ApplicationName", x.ApplicationName, y.ApplicationName)
	check.Scalar(c, "ApplicationVersion", x.ApplicationVersion, y.ApplicationVersion)
	check.String(c, "EngineName", x.EngineName, y.EngineName)
	check.Scalar(c, "EngineVersion", x.EngineVersion, y.EngineVersion)
	check.Scalar(c, "APIVersion", x.APIVersion, y.APIVersion)
}

// DeepCopy implements deepcopy.Copier.
func (x *ApplicationInfo) DeepCopy(p *deepcopy.Pool, dst *ApplicationInfo) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *InstanceCreateInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.SType); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Flags); err != nil {
		return err
	}
	if err := cereal.PutOptional(s, x.ApplicationInfo); err != nil {
		return err
	}
	if err := s.PutStringArray(x.EnabledLayerNames); err != nil {
		return err
	}
	if err := s.PutStringArray(x.EnabledExtensionNames); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *InstanceCreateInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.SType); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Flags); err != nil {
		return err
	}
	if err = cereal.GetOptional(s, &x.ApplicationInfo); err != nil {
		return err
	}
	if x.EnabledLayerNames, err = s.GetStringArray(x.EnabledLayerNames); err != nil {
		return err
	}
	if x.EnabledExtensionNames, err = s.GetStringArray(x.EnabledExtensionNames); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *InstanceCreateInfo) CheckEqual(y *InstanceCreateInfo, c *check.Checker) {
	check.Scalar(c, "SType", x.SType, y.SType)
	check.Scalar(c, "Flags", x.Flags, y.Flags)
	check.Optional(c, "ApplicationInfo", x.ApplicationInfo, y.ApplicationInfo)
	check.Strings(c, "EnabledLayerNames", x.EnabledLayerNames, y.EnabledLayerNames)
	check.Strings(c, "EnabledExtensionNames", x.EnabledExtensionNames, y.EnabledExtensionNames)
}

// DeepCopy implements deepcopy.Copier.
func (x *InstanceCreateInfo) DeepCopy(p *deepcopy.Pool, dst *InstanceCreateInfo) {
	*dst = *x
	dst.ApplicationInfo = deepcopy.Optional(p, x.ApplicationInfo)
	dst.EnabledLayerNames = deepcopy.Strings(p, x.EnabledLayerNames)
	dst.EnabledExtensionNames = deepcopy.Strings(p, x.EnabledExtensionNames)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *PhysicalDeviceLimits) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.MaxImageDimension1D); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxImageDimension2D); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxImageDimension3D); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxImageDimensionCube); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxImageArrayLayers); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTexelBufferElements); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxUniformBufferRange); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxStorageBufferRange); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxPushConstantsSize); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxMemoryAllocationCount); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxSamplerAllocationCount); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.BufferImageGranularity); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.SparseAddressSpaceSize); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxBoundDescriptorSets); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxPerStageDescriptorSamplers); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxPerStageDescriptorUniformBuffers); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxPerStageDescriptorStorageBuffers); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxPerStageDescriptorSampledImages); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxPerStageDescriptorStorageImages); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxPerStageDescriptorInputAttachments); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxPerStageResources); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDescriptorSetSamplers); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDescriptorSetUniformBuffers); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDescriptorSetUniformBuffersDynamic); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDescriptorSetStorageBuffers); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDescriptorSetStorageBuffersDynamic); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDescriptorSetSampledImages); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDescriptorSetStorageImages); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDescriptorSetInputAttachments); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxVertexInputAttributes); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxVertexInputBindings); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxVertexInputAttributeOffset); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxVertexInputBindingStride); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxVertexOutputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTessellationGenerationLevel); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTessellationPatchSize); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTessellationControlPerVertexInputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTessellationControlPerVertexOutputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTessellationControlPerPatchOutputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTessellationControlTotalOutputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTessellationEvaluationInputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTessellationEvaluationOutputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxGeometryShaderInvocations); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxGeometryInputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxGeometryOutputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxGeometryOutputVertices); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxGeometryTotalOutputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxFragmentInputComponents); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxFragmentOutputAttachments); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxFragmentDualSrcAttachments); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxFragmentCombinedOutputResources); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxComputeSharedMemorySize); err != nil {
		return err
	}
	for i := range x.MaxComputeWorkGroupCount {
		if err := cereal.PutInt(s, x.MaxComputeWorkGroupCount[i]); err != nil {
			return err
		}
	}
	if err := cereal.PutInt(s, x.MaxComputeWorkGroupInvocations); err != nil {
		return err
	}
	for i := range x.MaxComputeWorkGroupSize {
		if err := cereal.PutInt(s, x.MaxComputeWorkGroupSize[i]); err != nil {
			return err
		}
	}
	if err := cereal.PutInt(s, x.SubPixelPrecisionBits); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.SubTexelPrecisionBits); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MipmapPrecisionBits); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDrawIndexedIndexValue); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxDrawIndirectCount); err != nil {
		return err
	}
	if err := cereal.PutFloat(s, x.MaxSamplerLodBias); err != nil {
		return err
	}
	if err := cereal.PutFloat(s, x.MaxSamplerAnisotropy); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxViewports); err != nil {
		return err
	}
	for i := range x.MaxViewportDimensions {
		if err := cereal.PutInt(s, x.MaxViewportDimensions[i]); err != nil {
			return err
		}
	}
	for i := range x.ViewportBoundsRange {
		if err := cereal.PutFloat(s, x.ViewportBoundsRange[i]); err != nil {
			return err
		}
	}
	if err := cereal.PutInt(s, x.ViewportSubPixelBits); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MinMemoryMapAlignment); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MinTexelBufferOffsetAlignment); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MinUniformBufferOffsetAlignment); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MinStorageBufferOffsetAlignment); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MinTexelOffset); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTexelOffset); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MinTexelGatherOffset); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxTexelGatherOffset); err != nil {
		return err
	}
	if err := cereal.PutFloat(s, x.MinInterpolationOffset); err != nil {
		return err
	}
	if err := cereal.PutFloat(s, x.MaxInterpolationOffset); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.SubPixelInterpolationOffsetBits); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxFramebufferWidth); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxFramebufferHeight); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxFramebufferLayers); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.FramebufferColorSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.FramebufferDepthSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.FramebufferStencilSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.FramebufferNoAttachmentsSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxColorAttachments); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.SampledImageColorSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.SampledImageIntegerSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.SampledImageDepthSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.SampledImageStencilSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.StorageImageSampleCounts); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxSampleMaskWords); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.TimestampComputeAndGraphics); err != nil {
		return err
	}
	if err := cereal.PutFloat(s, x.TimestampPeriod); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxClipDistances); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxCullDistances); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MaxCombinedClipAndCullDistances); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.DiscreteQueuePriorities); err != nil {
		return err
	}
	for i := range x.PointSizeRange {
		if err := cereal.PutFloat(s, x.PointSizeRange[i]); err != nil {
			return err
		}
	}
	for i := range x.LineWidthRange {
		if err := cereal.PutFloat(s, x.LineWidthRange[i]); err != nil {
			return err
		}
	}
	if err := cereal.PutFloat(s, x.PointSizeGranularity); err != nil {
		return err
	}
	if err := cereal.PutFloat(s, x.LineWidthGranularity); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.StrictLines); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.StandardSampleLocations); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.OptimalBufferCopyOffsetAlignment); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.OptimalBufferCopyRowPitchAlignment); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.NonCoherentAtomSize); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *PhysicalDeviceLimits) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.MaxImageDimension1D); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxImageDimension2D); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxImageDimension3D); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxImageDimensionCube); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxImageArrayLayers); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTexelBufferElements); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxUniformBufferRange); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxStorageBufferRange); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxPushConstantsSize); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxMemoryAllocationCount); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxSamplerAllocationCount); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.BufferImageGranularity); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.SparseAddressSpaceSize); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxBoundDescriptorSets); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxPerStageDescriptorSamplers); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxPerStageDescriptorUniformBuffers); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxPerStageDescriptorStorageBuffers); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxPerStageDescriptorSampledImages); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxPerStageDescriptorStorageImages); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxPerStageDescriptorInputAttachments); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxPerStageResources); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDescriptorSetSamplers); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDescriptorSetUniformBuffers); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDescriptorSetUniformBuffersDynamic); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDescriptorSetStorageBuffers); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDescriptorSetStorageBuffersDynamic); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDescriptorSetSampledImages); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDescriptorSetStorageImages); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDescriptorSetInputAttachments); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxVertexInputAttributes); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxVertexInputBindings); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxVertexInputAttributeOffset); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxVertexInputBindingStride); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxVertexOutputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTessellationGenerationLevel); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTessellationPatchSize); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTessellationControlPerVertexInputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTessellationControlPerVertexOutputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTessellationControlPerPatchOutputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTessellationControlTotalOutputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTessellationEvaluationInputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTessellationEvaluationOutputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxGeometryShaderInvocations); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxGeometryInputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxGeometryOutputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxGeometryOutputVertices); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxGeometryTotalOutputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxFragmentInputComponents); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxFragmentOutputAttachments); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxFragmentDualSrcAttachments); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxFragmentCombinedOutputResources); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxComputeSharedMemorySize); err != nil {
		return err
	}
	for i := range x.MaxComputeWorkGroupCount {
		if err = cereal.GetInt(s, &x.MaxComputeWorkGroupCount[i]); err != nil {
			return err
		}
	}
	if err = cereal.GetInt(s, &x.MaxComputeWorkGroupInvocations); err != nil {
		return err
	}
	for i := range x.MaxComputeWorkGroupSize {
		if err = cereal.GetInt(s, &x.MaxComputeWorkGroupSize[i]); err != nil {
			return err
		}
	}
	if err = cereal.GetInt(s, &x.SubPixelPrecisionBits); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.SubTexelPrecisionBits); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MipmapPrecisionBits); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDrawIndexedIndexValue); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxDrawIndirectCount); err != nil {
		return err
	}
	if err = cereal.GetFloat(s, &x.MaxSamplerLodBias); err != nil {
		return err
	}
	if err = cereal.GetFloat(s, &x.MaxSamplerAnisotropy); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxViewports); err != nil {
		return err
	}
	for i := range x.MaxViewportDimensions {
		if err = cereal.GetInt(s, &x.MaxViewportDimensions[i]); err != nil {
			return err
		}
	}
	for i := range x.ViewportBoundsRange {
		if err = cereal.GetFloat(s, &x.ViewportBoundsRange[i]); err != nil {
			return err
		}
	}
	if err = cereal.GetInt(s, &x.ViewportSubPixelBits); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MinMemoryMapAlignment); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MinTexelBufferOffsetAlignment); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MinUniformBufferOffsetAlignment); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MinStorageBufferOffsetAlignment); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MinTexelOffset); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTexelOffset); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MinTexelGatherOffset); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxTexelGatherOffset); err != nil {
		return err
	}
	if err = cereal.GetFloat(s, &x.MinInterpolationOffset); err != nil {
		return err
	}
	if err = cereal.GetFloat(s, &x.MaxInterpolationOffset); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.SubPixelInterpolationOffsetBits); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxFramebufferWidth); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxFramebufferHeight); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxFramebufferLayers); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.FramebufferColorSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.FramebufferDepthSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.FramebufferStencilSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.FramebufferNoAttachmentsSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxColorAttachments); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.SampledImageColorSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.SampledImageIntegerSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.SampledImageDepthSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.SampledImageStencilSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.StorageImageSampleCounts); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxSampleMaskWords); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.TimestampComputeAndGraphics); err != nil {
		return err
	}
	if err = cereal.GetFloat(s, &x.TimestampPeriod); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxClipDistances); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxCullDistances); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MaxCombinedClipAndCullDistances); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.DiscreteQueuePriorities); err != nil {
		return err
	}
	for i := range x.PointSizeRange {
		if err = cereal.GetFloat(s, &x.PointSizeRange[i]); err != nil {
			return err
		}
	}
	for i := range x.LineWidthRange {
		if err = cereal.GetFloat(s, &x.LineWidthRange[i]); err != nil {
			return err
		}
	}
	if err = cereal.GetFloat(s, &x.PointSizeGranularity); err != nil {
		return err
	}
	if err = cereal.GetFloat(s, &x.LineWidthGranularity); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.StrictLines); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.StandardSampleLocations); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.OptimalBufferCopyOffsetAlignment); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.OptimalBufferCopyRowPitchAlignment); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.NonCoherentAtomSize); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *PhysicalDeviceLimits) CheckEqual(y *PhysicalDeviceLimits, c *check.Checker) {
	check.Scalar(c, "MaxImageDimension1D", x.MaxImageDimension1D, y.MaxImageDimension1D)
	check.Scalar(c, "MaxImageDimension2D", x.MaxImageDimension2D, y.MaxImageDimension2D)
	check.Scalar(c, "MaxImageDimension3D", x.MaxImageDimension3D, y.MaxImageDimension3D)
	check.Scalar(c, "MaxImageDimensionCube", x.MaxImageDimensionCube, y.MaxImageDimensionCube)
	check.Scalar(c, "MaxImageArrayLayers", x.MaxImageArrayLayers, y.MaxImageArrayLayers)
	check.Scalar(c, "MaxTexelBufferElements", x.MaxTexelBufferElements, y.MaxTexelBufferElements)
	check.Scalar(c, "MaxUniformBufferRange", x.MaxUniformBufferRange, y.MaxUniformBufferRange)
	check.Scalar(c, "MaxStorageBufferRange", x.MaxStorageBufferRange, y.MaxStorageBufferRange)
	check.Scalar(c, "MaxPushConstantsSize", x.MaxPushConstantsSize, y.MaxPushConstantsSize)
	check.Scalar(c, "MaxMemoryAllocationCount", x.MaxMemoryAllocationCount, y.MaxMemoryAllocationCount)
	check.Scalar(c, "MaxSamplerAllocationCount", x.MaxSamplerAllocationCount, y.MaxSamplerAllocationCount)
	check.Scalar(c, "BufferImageGranularity", x.BufferImageGranularity, y.BufferImageGranularity)
	check.Scalar(c, "SparseAddressSpaceSize", x.SparseAddressSpaceSize, y.SparseAddressSpaceSize)
	check.Scalar(c, "MaxBoundDescriptorSets", x.MaxBoundDescriptorSets, y.MaxBoundDescriptorSets)
	check.Scalar(c, "MaxPerStageDescriptorSamplers", x.MaxPerStageDescriptorSamplers, y.MaxPerStageDescriptorSamplers)
	check.Scalar(c, "MaxPerStageDescriptorUniformBuffers", x.MaxPerStageDescriptorUniformBuffers, y.MaxPerStageDescriptorUniformBuffers)
	check.Scalar(c, "MaxPerStageDescriptorStorageBuffers", x.MaxPerStageDescriptorStorageBuffers, y.MaxPerStageDescriptorStorageBuffers)
	check.Scalar(c, "MaxPerStageDescriptorSampledImages", x.MaxPerStageDescriptorSampledImages, y.MaxPerStageDescriptorSampledImages)
	check.Scalar(c, "MaxPerStageDescriptorStorageImages", x.MaxPerStageDescriptorStorageImages, y.MaxPerStageDescriptorStorageImages)
	check.Scalar(c, "MaxPerStageDescriptorInputAttachments", x.MaxPerStageDescriptorInputAttachments, y.MaxPerStageDescriptorInputAttachments)
	check.Scalar(c, "MaxPerStageResources", x.MaxPerStageResources, y.MaxPerStageResources)
	check.Scalar(c, "MaxDescriptorSetSamplers", x.MaxDescriptorSetSamplers, y.MaxDescriptorSetSamplers)
	check.Scalar(c, "MaxDescriptorSetUniformBuffers", x.MaxDescriptorSetUniformBuffers, y.MaxDescriptorSetUniformBuffers)
	check.Scalar(c, "MaxDescriptorSetUniformBuffersDynamic", x.MaxDescriptorSetUniformBuffersDynamic, y.MaxDescriptorSetUniformBuffersDynamic)
	check.Scalar(c, "MaxDescriptorSetStorageBuffers", x.MaxDescriptorSetStorageBuffers, y.MaxDescriptorSetStorageBuffers)
	check.Scalar(c, "MaxDescriptorSetStorageBuffersDynamic", x.MaxDescriptorSetStorageBuffersDynamic, y.MaxDescriptorSetStorageBuffersDynamic)
	check.Scalar(c, "MaxDescriptorSetSampledImages", x.MaxDescriptorSetSampledImages, y.MaxDescriptorSetSampledImages)
	check.Scalar(c, "MaxDescriptorSetStorageImages", x.MaxDescriptorSetStorageImages, y.MaxDescriptorSetStorageImages)
	check.Scalar(c, "MaxDescriptorSetInputAttachments", x.MaxDescriptorSetInputAttachments, y.MaxDescriptorSetInputAttachments)
	check.Scalar(c, "MaxVertexInputAttributes", x.MaxVertexInputAttributes, y.MaxVertexInputAttributes)
	check.Scalar(c, "MaxVertexInputBindings", x.MaxVertexInputBindings, y.MaxVertexInputBindings)
	check.Scalar(c, "MaxVertexInputAttributeOffset", x.MaxVertexInputAttributeOffset, y.MaxVertexInputAttributeOffset)
	check.Scalar(c, "MaxVertexInputBindingStride", x.MaxVertexInputBindingStride, y.MaxVertexInputBindingStride)
	check.Scalar(c, "MaxVertexOutputComponents", x.MaxVertexOutputComponents, y.MaxVertexOutputComponents)
	check.Scalar(c, "MaxTessellationGenerationLevel", x.MaxTessellationGenerationLevel, y.MaxTessellationGenerationLevel)
	check.Scalar(c, "MaxTessellationPatchSize", x.MaxTessellationPatchSize, y.MaxTessellationPatchSize)
	check.Scalar(c, "MaxTessellationControlPerVertexInputComponents", x.MaxTessellationControlPerVertexInputComponents, y.MaxTessellationControlPerVertexInputComponents)
	check.Scalar(c, "MaxTessellationControlPerVertexOutputComponents", x.MaxTessellationControlPerVertexOutputComponents, y.MaxTessellationControlPerVertexOutputComponents)
	check.Scalar(c, "MaxTessellationControlPerPatchOutputComponents", x.MaxTessellationControlPerPatchOutputComponents, y.MaxTessellationControlPerPatchOutputComponents)
	check.Scalar(c, "MaxTessellationControlTotalOutputComponents", x.MaxTessellationControlTotalOutputComponents, y.MaxTessellationControlTotalOutputComponents)
	check.Scalar(c, "MaxTessellationEvaluationInputComponents", x.MaxTessellationEvaluationInputComponents, y.MaxTessellationEvaluationInputComponents)
	check.Scalar(c, "MaxTessellationEvaluationOutputComponents", x.MaxTessellationEvaluationOutputComponents, y.MaxTessellationEvaluationOutputComponents)
	check.Scalar(c, "MaxGeometryShaderInvocations", x.MaxGeometryShaderInvocations, y.MaxGeometryShaderInvocations)
	check.Scalar(c, "MaxGeometryInputComponents", x.MaxGeometryInputComponents, y.MaxGeometryInputComponents)
	check.Scalar(c, "MaxGeometryOutputComponents", x.MaxGeometryOutputComponents, y.MaxGeometryOutputComponents)
	check.Scalar(c, "MaxGeometryOutputVertices", x.MaxGeometryOutputVertices, y.MaxGeometryOutputVertices)
	check.Scalar(c, "MaxGeometryTotalOutputComponents", x.MaxGeometryTotalOutputComponents, y.MaxGeometryTotalOutputComponents)
	check.Scalar(c, "MaxFragmentInputComponents", x.MaxFragmentInputComponents, y.MaxFragmentInputComponents)
	check.Scalar(c, "MaxFragmentOutputAttachments", x.MaxFragmentOutputAttachments, y.MaxFragmentOutputAttachments)
	check.Scalar(c, "MaxFragmentDualSrcAttachments", x.MaxFragmentDualSrcAttachments, y.MaxFragmentDualSrcAttachments)
	check.Scalar(c, "MaxFragmentCombinedOutputResources", x.MaxFragmentCombinedOutputResources, y.MaxFragmentCombinedOutputResources)
	check.Scalar(c, "MaxComputeSharedMemorySize", x.MaxComputeSharedMemorySize, y.MaxComputeSharedMemorySize)
	check.Scalars(c, "MaxComputeWorkGroupCount", x.MaxComputeWorkGroupCount[:], y.MaxComputeWorkGroupCount[:])
	check.Scalar(c, "MaxComputeWorkGroupInvocations", x.MaxComputeWorkGroupInvocations, y.MaxComputeWorkGroupInvocations)
	check.Scalars(c, "MaxComputeWorkGroupSize", x.MaxComputeWorkGroupSize[:], y.MaxComputeWorkGroupSize[:])
	check.Scalar(c, "SubPixelPrecisionBits", x.SubPixelPrecisionBits, y.SubPixelPrecisionBits)
	check.Scalar(c, "SubTexelPrecisionBits", x.SubTexelPrecisionBits, y.SubTexelPrecisionBits)
	check.Scalar(c, "MipmapPrecisionBits", x.MipmapPrecisionBits, y.MipmapPrecisionBits)
	check.Scalar(c, "MaxDrawIndexedIndexValue", x.MaxDrawIndexedIndexValue, y.MaxDrawIndexedIndexValue)
	check.Scalar(c, "MaxDrawIndirectCount", x.MaxDrawIndirectCount, y.MaxDrawIndirectCount)
	check.Float(c, "MaxSamplerLodBias", x.MaxSamplerLodBias, y.MaxSamplerLodBias)
	check.Float(c, "MaxSamplerAnisotropy", x.MaxSamplerAnisotropy, y.MaxSamplerAnisotropy)
	check.Scalar(c, "MaxViewports", x.MaxViewports, y.MaxViewports)
	check.Scalars(c, "MaxViewportDimensions", x.MaxViewportDimensions[:], y.MaxViewportDimensions[:])
	check.Floats(c, "ViewportBoundsRange", x.ViewportBoundsRange[:], y.ViewportBoundsRange[:])
	check.Scalar(c, "ViewportSubPixelBits", x.ViewportSubPixelBits, y.ViewportSubPixelBits)
	check.Scalar(c, "MinMemoryMapAlignment", x.MinMemoryMapAlignment, y.MinMemoryMapAlignment)
	check.Scalar(c, "MinTexelBufferOffsetAlignment", x.MinTexelBufferOffsetAlignment, y.MinTexelBufferOffsetAlignment)
	check.Scalar(c, "MinUniformBufferOffsetAlignment", x.MinUniformBufferOffsetAlignment, y.MinUniformBufferOffsetAlignment)
	check.Scalar(c, "MinStorageBufferOffsetAlignment", x.MinStorageBufferOffsetAlignment, y.MinStorageBufferOffsetAlignment)
	check.Scalar(c, "MinTexelOffset", x.MinTexelOffset, y.MinTexelOffset)
	check.Scalar(c, "MaxTexelOffset", x.MaxTexelOffset, y.MaxTexelOffset)
	check.Scalar(c, "MinTexelGatherOffset", x.MinTexelGatherOffset, y.MinTexelGatherOffset)
	check.Scalar(c, "MaxTexelGatherOffset", x.MaxTexelGatherOffset, y.MaxTexelGatherOffset)
	check.Float(c, "MinInterpolationOffset", x.MinInterpolationOffset, y.MinInterpolationOffset)
	check.Float(c, "MaxInterpolationOffset", x.MaxInterpolationOffset, y.MaxInterpolationOffset)
	check.Scalar(c, "SubPixelInterpolationOffsetBits", x.SubPixelInterpolationOffsetBits, y.SubPixelInterpolationOffsetBits)
	check.Scalar(c, "MaxFramebufferWidth", x.MaxFramebufferWidth, y.MaxFramebufferWidth)
	check.Scalar(c, "MaxFramebufferHeight", x.MaxFramebufferHeight, y.MaxFramebufferHeight)
	check.Scalar(c, "MaxFramebufferLayers", x.MaxFramebufferLayers, y.MaxFramebufferLayers)
	check.Scalar(c, "FramebufferColorSampleCounts", x.FramebufferColorSampleCounts, y.FramebufferColorSampleCounts)
	check.Scalar(c, "FramebufferDepthSampleCounts", x.FramebufferDepthSampleCounts, y.FramebufferDepthSampleCounts)
	check.Scalar(c, "FramebufferStencilSampleCounts", x.FramebufferStencilSampleCounts, y.FramebufferStencilSampleCounts)
	check.Scalar(c, "FramebufferNoAttachmentsSampleCounts", x.FramebufferNoAttachmentsSampleCounts, y.FramebufferNoAttachmentsSampleCounts)
	check.Scalar(c, "MaxColorAttachments", x.MaxColorAttachments, y.MaxColorAttachments)
	check.Scalar(c, "SampledImageColorSampleCounts", x.SampledImageColorSampleCounts, y.SampledImageColorSampleCounts)
	check.Scalar(c, "SampledImageIntegerSampleCounts", x.SampledImageIntegerSampleCounts, y.SampledImageIntegerSampleCounts)
	check.Scalar(c, "SampledImageDepthSampleCounts", x.SampledImageDepthSampleCounts, y.SampledImageDepthSampleCounts)
	check.Scalar(c, "SampledImageStencilSampleCounts", x.SampledImageStencilSampleCounts, y.SampledImageStencilSampleCounts)
	check.Scalar(c, "StorageImageSampleCounts", x.StorageImageSampleCounts, y.StorageImageSampleCounts)
	check.Scalar(c, "MaxSampleMaskWords", x.MaxSampleMaskWords, y.MaxSampleMaskWords)
	check.Scalar(c, "TimestampComputeAndGraphics", x.TimestampComputeAndGraphics, y.TimestampComputeAndGraphics)
	check.Float(c, "TimestampPeriod", x.TimestampPeriod, y.TimestampPeriod)
	check.Scalar(c, "MaxClipDistances", x.MaxClipDistances, y.MaxClipDistances)
	check.Scalar(c, "MaxCullDistances", x.MaxCullDistances, y.MaxCullDistances)
	check.Scalar(c, "MaxCombinedClipAndCullDistances", x.MaxCombinedClipAndCullDistances, y.MaxCombinedClipAndCullDistances)
	check.Scalar(c, "DiscreteQueuePriorities", x.DiscreteQueuePriorities, y.DiscreteQueuePriorities)
	check.Floats(c, "PointSizeRange", x.PointSizeRange[:], y.PointSizeRange[:])
	check.Floats(c, "LineWidthRange", x.LineWidthRange[:], y.LineWidthRange[:])
	check.Float(c, "PointSizeGranularity", x.PointSizeGranularity, y.PointSizeGranularity)
	check.Float(c, "LineWidthGranularity", x.LineWidthGranularity, y.LineWidthGranularity)
	check.Scalar(c, "StrictLines", x.StrictLines, y.StrictLines)
	check.Scalar(c, "StandardSampleLocations", x.StandardSampleLocations, y.StandardSampleLocations)
	check.Scalar(c, "OptimalBufferCopyOffsetAlignment", x.OptimalBufferCopyOffsetAlignment, y.OptimalBufferCopyOffsetAlignment)
	check.Scalar(c, "OptimalBufferCopyRowPitchAlignment", x.OptimalBufferCopyRowPitchAlignment, y.OptimalBufferCopyRowPitchAlignment)
	check.Scalar(c, "NonCoherentAtomSize", x.NonCoherentAtomSize, y.NonCoherentAtomSize)
}

// DeepCopy implements deepcopy.Copier.
func (x *PhysicalDeviceLimits) DeepCopy(p *deepcopy.Pool, dst *PhysicalDeviceLimits) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *PhysicalDeviceSparseProperties) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.ResidencyStandard2DBlockShape); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.ResidencyStandard2DMultisampleBlockShape); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.ResidencyStandard3DBlockShape); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.ResidencyAlignedMipSize); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.ResidencyNonResidentStrict); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *PhysicalDeviceSparseProperties) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.ResidencyStandard2DBlockShape); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.ResidencyStandard2DMultisampleBlockShape); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.ResidencyStandard3DBlockShape); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.ResidencyAlignedMipSize); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.ResidencyNonResidentStrict); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *PhysicalDeviceSparseProperties) CheckEqual(y *PhysicalDeviceSparseProperties, c *check.Checker) {
	check.Scalar(c, "ResidencyStandard2DBlockShape", x.ResidencyStandard2DBlockShape, y.ResidencyStandard2DBlockShape)
	check.Scalar(c, "ResidencyStandard2DMultisampleBlockShape", x.ResidencyStandard2DMultisampleBlockShape, y.ResidencyStandard2DMultisampleBlockShape)
	check.Scalar(c, "ResidencyStandard3DBlockShape", x.ResidencyStandard3DBlockShape, y.ResidencyStandard3DBlockShape)
	check.Scalar(c, "ResidencyAlignedMipSize", x.ResidencyAlignedMipSize, y.ResidencyAlignedMipSize)
	check.Scalar(c, "ResidencyNonResidentStrict", x.ResidencyNonResidentStrict, y.ResidencyNonResidentStrict)
}

// DeepCopy implements deepcopy.Copier.
func (x *PhysicalDeviceSparseProperties) DeepCopy(p *deepcopy.Pool, dst *PhysicalDeviceSparseProperties) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *PhysicalDeviceProperties) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.APIVersion); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.DriverVersion); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.VendorID); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.DeviceID); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.DeviceType); err != nil {
		return err
	}
	if err := s.PutBytes(x.DeviceName[:]); err != nil {
		return err
	}
	if err := s.PutBytes(x.PipelineCacheUUID[:]); err != nil {
		return err
	}
	if err := x.Limits.Marshal(s); err != nil {
		return err
	}
	if err := x.SparseProperties.Marshal(s); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *PhysicalDeviceProperties) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.APIVersion); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.DriverVersion); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.VendorID); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.DeviceID); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.DeviceType); err != nil {
		return err
	}
	if err = s.GetBytes(x.DeviceName[:]); err != nil {
		return err
	}
	if err = s.GetBytes(x.PipelineCacheUUID[:]); err != nil {
		return err
	}
	if err = x.Limits.Unmarshal(s); err != nil {
		return err
	}
	if err = x.SparseProperties.Unmarshal(s); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *PhysicalDeviceProperties) CheckEqual(y *PhysicalDeviceProperties, c *check.Checker) {
	check.Scalar(c, "APIVersion", x.APIVersion, y.APIVersion)
	check.Scalar(c, "DriverVersion", x.DriverVersion, y.DriverVersion)
	check.Scalar(c, "VendorID", x.VendorID, y.VendorID)
	check.Scalar(c, "DeviceID", x.DeviceID, y.DeviceID)
	check.Scalar(c, "DeviceType", x.DeviceType, y.DeviceType)
	check.Bytes(c, "DeviceName", x.DeviceName[:], y.DeviceName[:])
	check.Bytes(c, "PipelineCacheUUID", x.PipelineCacheUUID[:], y.PipelineCacheUUID[:])
	check.Struct(c, "Limits", &x.Limits, &y.Limits)
	check.Struct(c, "SparseProperties", &x.SparseProperties, &y.SparseProperties)
}

// DeepCopy implements deepcopy.Copier.
func (x *PhysicalDeviceProperties) DeepCopy(p *deepcopy.Pool, dst *PhysicalDeviceProperties) {
	*dst = *x
	x.Limits.DeepCopy(p, &dst.Limits)
	x.SparseProperties.DeepCopy(p, &dst.SparseProperties)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *ImageSubresource) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.AspectMask); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MipLevel); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.ArrayLayer); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *ImageSubresource) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.AspectMask); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MipLevel); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.ArrayLayer); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *ImageSubresource) CheckEqual(y *ImageSubresource, c *check.Checker) {
	check.Scalar(c, "AspectMask", x.AspectMask, y.AspectMask)
	check.Scalar(c, "MipLevel", x.MipLevel, y.MipLevel)
	check.Scalar(c, "ArrayLayer", x.ArrayLayer, y.ArrayLayer)
}

// DeepCopy implements deepcopy.Copier.
func (x *ImageSubresource) DeepCopy(p *deepcopy.Pool, dst *ImageSubresource) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *Offset3D) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.X); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Y); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Z); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *Offset3D) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.X); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Y); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Z); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *Offset3D) CheckEqual(y *Offset3D, c *check.Checker) {
	check.Scalar(c, "X", x.X, y.X)
	check.Scalar(c, "Y", x.Y, y.Y)
	check.Scalar(c, "Z", x.Z, y.Z)
}

// DeepCopy implements deepcopy.Copier.
func (x *Offset3D) DeepCopy(p *deepcopy.Pool, dst *Offset3D) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *Extent3D) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Width); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Height); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Depth); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *Extent3D) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Width); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Height); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Depth); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *Extent3D) CheckEqual(y *Extent3D, c *check.Checker) {
	check.Scalar(c, "Width", x.Width, y.Width)
	check.Scalar(c, "Height", x.Height, y.Height)
	check.Scalar(c, "Depth", x.Depth, y.Depth)
}

// DeepCopy implements deepcopy.Copier.
func (x *Extent3D) DeepCopy(p *deepcopy.Pool, dst *Extent3D) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *SparseImageMemoryBind) Marshal(s *cereal.Stream) error {
	if err := x.Subresource.Marshal(s); err != nil {
		return err
	}
	if err := x.Offset.Marshal(s); err != nil {
		return err
	}
	if err := x.Extent.Marshal(s); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Memory); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.MemoryOffset); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Flags); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *SparseImageMemoryBind) Unmarshal(s *cereal.Stream) (err error) {
	if err = x.Subresource.Unmarshal(s); err != nil {
		return err
	}
	if err = x.Offset.Unmarshal(s); err != nil {
		return err
	}
	if err = x.Extent.Unmarshal(s); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Memory); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.MemoryOffset); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Flags); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *SparseImageMemoryBind) CheckEqual(y *SparseImageMemoryBind, c *check.Checker) {
	check.Struct(c, "Subresource", &x.Subresource, &y.Subresource)
	check.Struct(c, "Offset", &x.Offset, &y.Offset)
	check.Struct(c, "Extent", &x.Extent, &y.Extent)
	check.Scalar(c, "Memory", x.Memory, y.Memory)
	check.Scalar(c, "MemoryOffset", x.MemoryOffset, y.MemoryOffset)
	check.Scalar(c, "Flags", x.Flags, y.Flags)
}

// DeepCopy implements deepcopy.Copier.
func (x *SparseImageMemoryBind) DeepCopy(p *deepcopy.Pool, dst *SparseImageMemoryBind) {
	*dst = *x
	x.Subresource.DeepCopy(p, &dst.Subresource)
	x.Offset.DeepCopy(p, &dst.Offset)
	x.Extent.DeepCopy(p, &dst.Extent)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *SparseImageMemoryBindInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Image); err != nil {
		return err
	}
	if err := cereal.PutArray(s, x.Binds); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *SparseImageMemoryBindInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Image); err != nil {
		return err
	}
	if err = cereal.GetArray(s, &x.Binds); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *SparseImageMemoryBindInfo) CheckEqual(y *SparseImageMemoryBindInfo, c *check.Checker) {
	check.Scalar(c, "Image", x.Image, y.Image)
	check.Counted(c, "Binds", x.Binds, y.Binds)
}

// DeepCopy implements deepcopy.Copier.
func (x *SparseImageMemoryBindInfo) DeepCopy(p *deepcopy.Pool, dst *SparseImageMemoryBindInfo) {
	*dst = *x
	dst.Binds = deepcopy.Array(p, x.Binds)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *BindSparseInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.SType); err != nil {
		return err
	}
	if err := cereal.PutInts(s, x.WaitSemaphores); err != nil {
		return err
	}
	if err := cereal.PutArray(s, x.ImageBinds); err != nil {
		return err
	}
	if err := cereal.PutInts(s, x.SignalSemaphores); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *BindSparseInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.SType); err != nil {
		return err
	}
	if err = cereal.GetInts(s, &x.WaitSemaphores); err != nil {
		return err
	}
	if err = cereal.GetArray(s, &x.ImageBinds); err != nil {
		return err
	}
	if err = cereal.GetInts(s, &x.SignalSemaphores); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *BindSparseInfo) CheckEqual(y *BindSparseInfo, c *check.Checker) {
	check.Scalar(c, "SType", x.SType, y.SType)
	check.Scalars(c, "WaitSemaphores", x.WaitSemaphores, y.WaitSemaphores)
	check.Counted(c, "ImageBinds", x.ImageBinds, y.ImageBinds)
	check.Scalars(c, "SignalSemaphores", x.SignalSemaphores, y.SignalSemaphores)
}

// DeepCopy implements deepcopy.Copier.
func (x *BindSparseInfo) DeepCopy(p *deepcopy.Pool, dst *BindSparseInfo) {
	*dst = *x
	dst.WaitSemaphores = deepcopy.Scalars(p, x.WaitSemaphores)
	dst.ImageBinds = deepcopy.Array(p, x.ImageBinds)
	dst.SignalSemaphores = deepcopy.Scalars(p, x.SignalSemaphores)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *DeviceQueueCreateInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.SType); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Flags); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.QueueFamilyIndex); err != nil {
		return err
	}
	if err := cereal.PutFloats(s, x.QueuePriorities); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *DeviceQueueCreateInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.SType); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Flags); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.QueueFamilyIndex); err != nil {
		return err
	}
	if err = cereal.GetFloats(s, &x.QueuePriorities); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *DeviceQueueCreateInfo) CheckEqual(y *DeviceQueueCreateInfo, c *check.Checker) {
	check.Scalar(c, "SType", x.SType, y.SType)
	check.Scalar(c, "Flags", x.Flags, y.Flags)
	check.Scalar(c, "QueueFamilyIndex", x.QueueFamilyIndex, y.QueueFamilyIndex)
	check.Floats(c, "QueuePriorities", x.QueuePriorities, y.QueuePriorities)
}

// DeepCopy implements deepcopy.Copier.
func (x *DeviceQueueCreateInfo) DeepCopy(p *deepcopy.Pool, dst *DeviceQueueCreateInfo) {
	*dst = *x
	dst.QueuePriorities = deepcopy.Scalars(p, x.QueuePriorities)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *DeviceCreateInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.SType); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Flags); err != nil {
		return err
	}
	if err := cereal.PutArray(s, x.QueueCreateInfos); err != nil {
		return err
	}
	if err := s.PutStringArray(x.EnabledLayerNames); err != nil {
		return err
	}
	if err := s.PutStringArray(x.EnabledExtensionNames); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *DeviceCreateInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.SType); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Flags); err != nil {
		return err
	}
	if err = cereal.GetArray(s, &x.QueueCreateInfos); err != nil {
		return err
	}
	if x.EnabledLayerNames, err = s.GetStringArray(x.EnabledLayerNames); err != nil {
		return err
	}
	if x.EnabledExtensionNames, err = s.GetStringArray(x.EnabledExtensionNames); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *DeviceCreateInfo) CheckEqual(y *DeviceCreateInfo, c *check.Checker) {
	check.Scalar(c, "SType", x.SType, y.SType)
	check.Scalar(c, "Flags", x.Flags, y.Flags)
	check.Counted(c, "QueueCreateInfos", x.QueueCreateInfos, y.QueueCreateInfos)
	check.Strings(c, "EnabledLayerNames", x.EnabledLayerNames, y.EnabledLayerNames)
	check.Strings(c, "EnabledExtensionNames", x.EnabledExtensionNames, y.EnabledExtensionNames)
}

// DeepCopy implements deepcopy.Copier.
func (x *DeviceCreateInfo) DeepCopy(p *deepcopy.Pool, dst *DeviceCreateInfo) {
	*dst = *x
	dst.QueueCreateInfos = deepcopy.Array(p, x.QueueCreateInfos)
	dst.EnabledLayerNames = deepcopy.Strings(p, x.EnabledLayerNames)
	dst.EnabledExtensionNames = deepcopy.Strings(p, x.EnabledExtensionNames)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *SpecializationMapEntry) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.ConstantID); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Offset); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Size); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *SpecializationMapEntry) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.ConstantID); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Offset); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Size); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *SpecializationMapEntry) CheckEqual(y *SpecializationMapEntry, c *check.Checker) {
	check.Scalar(c, "ConstantID", x.ConstantID, y.ConstantID)
	check.Scalar(c, "Offset", x.Offset, y.Offset)
	check.Scalar(c, "Size", x.Size, y.Size)
}

// DeepCopy implements deepcopy.Copier.
func (x *SpecializationMapEntry) DeepCopy(p *deepcopy.Pool, dst *SpecializationMapEntry) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *SpecializationInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutArray(s, x.MapEntries); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.DataSize); err != nil {
		return err
	}
	if err := cereal.PutBlob(s, x.Data, uint64(x.DataSize)); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *SpecializationInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetArray(s, &x.MapEntries); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.DataSize); err != nil {
		return err
	}
	if x.Data, err = cereal.ReadBlob(s, x.Data, uint64(x.DataSize)); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *SpecializationInfo) CheckEqual(y *SpecializationInfo, c *check.Checker) {
	check.Counted(c, "MapEntries", x.MapEntries, y.MapEntries)
	check.Scalar(c, "DataSize", x.DataSize, y.DataSize)
	check.Blob(c, "Data", x.Data, y.Data, min(uint64(x.DataSize), uint64(y.DataSize)))
}

// DeepCopy implements deepcopy.Copier.
func (x *SpecializationInfo) DeepCopy(p *deepcopy.Pool, dst *SpecializationInfo) {
	*dst = *x
	dst.MapEntries = deepcopy.Array(p, x.MapEntries)
	dst.Data = deepcopy.Blob(p, x.Data, uint64(x.DataSize))
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *PipelineShaderStageCreateInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.SType); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Flags); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Stage); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Module); err != nil {
		return err
	}
	if err := s.PutString(x.Name); err != nil {
		return err
	}
	if err := cereal.PutOptional(s, x.SpecializationInfo); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *PipelineShaderStageCreateInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.SType); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Flags); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Stage); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Module); err != nil {
		return err
	}
	if x.Name, err = s.GetString(); err != nil {
		return err
	}
	if err = cereal.GetOptional(s, &x.SpecializationInfo); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *PipelineShaderStageCreateInfo) CheckEqual(y *PipelineShaderStageCreateInfo, c *check.Checker) {
	check.Scalar(c, "SType", x.SType, y.SType)
	check.Scalar(c, "Flags", x.Flags, y.Flags)
	check.Scalar(c, "Stage", x.Stage, y.Stage)
	check.Scalar(c, "Module", x.Module, y.Module)
	check.String(c, "Name", x.Name, y.Name)
	check.Optional(c, "SpecializationInfo", x.SpecializationInfo, y.SpecializationInfo)
}

// DeepCopy implements deepcopy.Copier.
func (x *PipelineShaderStageCreateInfo) DeepCopy(p *deepcopy.Pool, dst *PipelineShaderStageCreateInfo) {
	*dst = *x
	dst.SpecializationInfo = deepcopy.Optional(p, x.SpecializationInfo)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *ComputePipelineCreateInfo) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.SType); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Flags); err != nil {
		return err
	}
	if err := x.Stage.Marshal(s); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Layout); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.BasePipelineIndex); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *ComputePipelineCreateInfo) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.SType); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Flags); err != nil {
		return err
	}
	if err = x.Stage.Unmarshal(s); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Layout); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.BasePipelineIndex); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *ComputePipelineCreateInfo) CheckEqual(y *ComputePipelineCreateInfo, c *check.Checker) {
	check.Scalar(c, "SType", x.SType, y.SType)
	check.Scalar(c, "Flags", x.Flags, y.Flags)
	check.Struct(c, "Stage", &x.Stage, &y.Stage)
	check.Scalar(c, "Layout", x.Layout, y.Layout)
	check.Scalar(c, "BasePipelineIndex", x.BasePipelineIndex, y.BasePipelineIndex)
}

// DeepCopy implements deepcopy.Copier.
func (x *ComputePipelineCreateInfo) DeepCopy(p *deepcopy.Pool, dst *ComputePipelineCreateInfo) {
	*dst = *x
	x.Stage.DeepCopy(p, &dst.Stage)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *CreateInstanceParams) Marshal(s *cereal.Stream) error {
	if err := x.CreateInfo.Marshal(s); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *CreateInstanceParams) Unmarshal(s *cereal.Stream) (err error) {
	if err = x.CreateInfo.Unmarshal(s); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *CreateInstanceParams) CheckEqual(y *CreateInstanceParams, c *check.Checker) {
	check.Struct(c, "CreateInfo", &x.CreateInfo, &y.CreateInfo)
}

// DeepCopy implements deepcopy.Copier.
func (x *CreateInstanceParams) DeepCopy(p *deepcopy.Pool, dst *CreateInstanceParams) {
	*dst = *x
	x.CreateInfo.DeepCopy(p, &dst.CreateInfo)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *CreateInstanceReply) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Instance); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *CreateInstanceReply) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Instance); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *CreateInstanceReply) CheckEqual(y *CreateInstanceReply, c *check.Checker) {
	check.Scalar(c, "Instance", x.Instance, y.Instance)
}

// DeepCopy implements deepcopy.Copier.
func (x *CreateInstanceReply) DeepCopy(p *deepcopy.Pool, dst *CreateInstanceReply) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *DestroyInstanceParams) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Instance); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *DestroyInstanceParams) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Instance); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *DestroyInstanceParams) CheckEqual(y *DestroyInstanceParams, c *check.Checker) {
	check.Scalar(c, "Instance", x.Instance, y.Instance)
}

// DeepCopy implements deepcopy.Copier.
func (x *DestroyInstanceParams) DeepCopy(p *deepcopy.Pool, dst *DestroyInstanceParams) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *EnumeratePhysicalDevicesParams) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Instance); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *EnumeratePhysicalDevicesParams) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Instance); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *EnumeratePhysicalDevicesParams) CheckEqual(y *EnumeratePhysicalDevicesParams, c *check.Checker) {
	check.Scalar(c, "Instance", x.Instance, y.Instance)
}

// DeepCopy implements deepcopy.Copier.
func (x *EnumeratePhysicalDevicesParams) DeepCopy(p *deepcopy.Pool, dst *EnumeratePhysicalDevicesParams) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *EnumeratePhysicalDevicesReply) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInts(s, x.PhysicalDevices); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *EnumeratePhysicalDevicesReply) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInts(s, &x.PhysicalDevices); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *EnumeratePhysicalDevicesReply) CheckEqual(y *EnumeratePhysicalDevicesReply, c *check.Checker) {
	check.Scalars(c, "PhysicalDevices", x.PhysicalDevices, y.PhysicalDevices)
}

// DeepCopy implements deepcopy.Copier.
func (x *EnumeratePhysicalDevicesReply) DeepCopy(p *deepcopy.Pool, dst *EnumeratePhysicalDevicesReply) {
	*dst = *x
	dst.PhysicalDevices = deepcopy.Scalars(p, x.PhysicalDevices)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *GetPhysicalDevicePropertiesParams) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.PhysicalDevice); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *GetPhysicalDevicePropertiesParams) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.PhysicalDevice); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *GetPhysicalDevicePropertiesParams) CheckEqual(y *GetPhysicalDevicePropertiesParams, c *check.Checker) {
	check.Scalar(c, "PhysicalDevice", x.PhysicalDevice, y.PhysicalDevice)
}

// DeepCopy implements deepcopy.Copier.
func (x *GetPhysicalDevicePropertiesParams) DeepCopy(p *deepcopy.Pool, dst *GetPhysicalDevicePropertiesParams) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *GetPhysicalDevicePropertiesReply) Marshal(s *cereal.Stream) error {
	if err := x.Properties.Marshal(s); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *GetPhysicalDevicePropertiesReply) Unmarshal(s *cereal.Stream) (err error) {
	if err = x.Properties.Unmarshal(s); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *GetPhysicalDevicePropertiesReply) CheckEqual(y *GetPhysicalDevicePropertiesReply, c *check.Checker) {
	check.Struct(c, "Properties", &x.Properties, &y.Properties)
}

// DeepCopy implements deepcopy.Copier.
func (x *GetPhysicalDevicePropertiesReply) DeepCopy(p *deepcopy.Pool, dst *GetPhysicalDevicePropertiesReply) {
	*dst = *x
	x.Properties.DeepCopy(p, &dst.Properties)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *CreateDeviceParams) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.PhysicalDevice); err != nil {
		return err
	}
	if err := x.CreateInfo.Marshal(s); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *CreateDeviceParams) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.PhysicalDevice); err != nil {
		return err
	}
	if err = x.CreateInfo.Unmarshal(s); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *CreateDeviceParams) CheckEqual(y *CreateDeviceParams, c *check.Checker) {
	check.Scalar(c, "PhysicalDevice", x.PhysicalDevice, y.PhysicalDevice)
	check.Struct(c, "CreateInfo", &x.CreateInfo, &y.CreateInfo)
}

// DeepCopy implements deepcopy.Copier.
func (x *CreateDeviceParams) DeepCopy(p *deepcopy.Pool, dst *CreateDeviceParams) {
	*dst = *x
	x.CreateInfo.DeepCopy(p, &dst.CreateInfo)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *CreateDeviceReply) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Device); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *CreateDeviceReply) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Device); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *CreateDeviceReply) CheckEqual(y *CreateDeviceReply, c *check.Checker) {
	check.Scalar(c, "Device", x.Device, y.Device)
}

// DeepCopy implements deepcopy.Copier.
func (x *CreateDeviceReply) DeepCopy(p *deepcopy.Pool, dst *CreateDeviceReply) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *DestroyDeviceParams) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Device); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *DestroyDeviceParams) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Device); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *DestroyDeviceParams) CheckEqual(y *DestroyDeviceParams, c *check.Checker) {
	check.Scalar(c, "Device", x.Device, y.Device)
}

// DeepCopy implements deepcopy.Copier.
func (x *DestroyDeviceParams) DeepCopy(p *deepcopy.Pool, dst *DestroyDeviceParams) {
	*dst = *x
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *QueueBindSparseParams) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Queue); err != nil {
		return err
	}
	if err := cereal.PutArray(s, x.BindInfos); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Fence); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *QueueBindSparseParams) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Queue); err != nil {
		return err
	}
	if err = cereal.GetArray(s, &x.BindInfos); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Fence); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *QueueBindSparseParams) CheckEqual(y *QueueBindSparseParams, c *check.Checker) {
	check.Scalar(c, "Queue", x.Queue, y.Queue)
	check.Counted(c, "BindInfos", x.BindInfos, y.BindInfos)
	check.Scalar(c, "Fence", x.Fence, y.Fence)
}

// DeepCopy implements deepcopy.Copier.
func (x *QueueBindSparseParams) DeepCopy(p *deepcopy.Pool, dst *QueueBindSparseParams) {
	*dst = *x
	dst.BindInfos = deepcopy.Array(p, x.BindInfos)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *CreateComputePipelinesParams) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInt(s, x.Device); err != nil {
		return err
	}
	if err := cereal.PutInt(s, x.Cache); err != nil {
		return err
	}
	if err := cereal.PutArray(s, x.CreateInfos); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *CreateComputePipelinesParams) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInt(s, &x.Device); err != nil {
		return err
	}
	if err = cereal.GetInt(s, &x.Cache); err != nil {
		return err
	}
	if err = cereal.GetArray(s, &x.CreateInfos); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *CreateComputePipelinesParams) CheckEqual(y *CreateComputePipelinesParams, c *check.Checker) {
	check.Scalar(c, "Device", x.Device, y.Device)
	check.Scalar(c, "Cache", x.Cache, y.Cache)
	check.Counted(c, "CreateInfos", x.CreateInfos, y.CreateInfos)
}

// DeepCopy implements deepcopy.Copier.
func (x *CreateComputePipelinesParams) DeepCopy(p *deepcopy.Pool, dst *CreateComputePipelinesParams) {
	*dst = *x
	dst.CreateInfos = deepcopy.Array(p, x.CreateInfos)
}

// Marshal implements cereal.Marshaler.Marshal.
func (x *CreateComputePipelinesReply) Marshal(s *cereal.Stream) error {
	if err := cereal.PutInts(s, x.Pipelines); err != nil {
		return err
	}
	return nil
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (x *CreateComputePipelinesReply) Unmarshal(s *cereal.Stream) (err error) {
	if err = cereal.GetInts(s, &x.Pipelines); err != nil {
		return err
	}
	return nil
}

// CheckEqual reports every field of x that differs from y.
func (x *CreateComputePipelinesReply) CheckEqual(y *CreateComputePipelinesReply, c *check.Checker) {
	check.Scalars(c, "Pipelines", x.Pipelines, y.Pipelines)
}

// DeepCopy implements deepcopy.Copier.
func (x *CreateComputePipelinesReply) DeepCopy(p *deepcopy.Pool, dst *CreateComputePipelinesReply) {
	*dst = *x
	dst.Pipelines = deepcopy.Scalars(p, x.Pipelines)
}
