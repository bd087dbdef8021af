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
	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/command"
)

// Opcodes of the commands in this package.
const (
	OpCreateInstance              command.Opcode = 20000
	OpDestroyInstance             command.Opcode = 20001
	OpEnumeratePhysicalDevices    command.Opcode = 20002
	OpGetPhysicalDeviceProperties command.Opcode = 20006
	OpCreateDevice                command.Opcode = 20011
	OpDestroyDevice               command.Opcode = 20012
	OpQueueBindSparse             command.Opcode = 20027
	OpCreateComputePipelines      command.Opcode = 20066
)

// Commands holds every command of this package.
var Commands = command.NewRegistry()

// +cereal
type CreateInstanceParams struct {
	CreateInfo InstanceCreateInfo
}

// +cereal
type CreateInstanceReply struct {
	Instance Instance
}

// +cereal
type DestroyInstanceParams struct {
	Instance Instance
}

// +cereal
type EnumeratePhysicalDevicesParams struct {
	Instance Instance
}

// +cereal
type EnumeratePhysicalDevicesReply struct {
	PhysicalDevices []PhysicalDevice
}

// +cereal
type GetPhysicalDevicePropertiesParams struct {
	PhysicalDevice PhysicalDevice
}

// +cereal
type GetPhysicalDevicePropertiesReply struct {
	Properties PhysicalDeviceProperties
}

// +cereal
type CreateDeviceParams struct {
	PhysicalDevice PhysicalDevice
	CreateInfo     DeviceCreateInfo
}

// +cereal
type CreateDeviceReply struct {
	Device Device
}

// +cereal
type DestroyDeviceParams struct {
	Device Device
}

// QueueBindSparseParams are the parameters of vkQueueBindSparse. Fence may
// be zero.
//
// +cereal
type QueueBindSparseParams struct {
	Queue     Queue
	BindInfos []BindSparseInfo
	Fence     Fence
}

// CreateComputePipelinesParams are the parameters of
// vkCreateComputePipelines.
//
// +cereal
type CreateComputePipelinesParams struct {
	Device      Device
	Cache       PipelineCache
	CreateInfos []ComputePipelineCreateInfo
}

// +cereal
type CreateComputePipelinesReply struct {
	Pipelines []Pipeline
}

func factory[T any, P cereal.Ptr[T]]() func() cereal.Marshallable {
	return func() cereal.Marshallable { return P(new(T)) }
}

func init() {
	Commands.Register(command.Command{
		Op:         OpCreateInstance,
		Name:       "vkCreateInstance",
		NewRequest: factory[CreateInstanceParams](),
		NewReply:   factory[CreateInstanceReply](),
	})
	Commands.Register(command.Command{
		Op:         OpDestroyInstance,
		Name:       "vkDestroyInstance",
		NewRequest: factory[DestroyInstanceParams](),
	})
	Commands.Register(command.Command{
		Op:         OpEnumeratePhysicalDevices,
		Name:       "vkEnumeratePhysicalDevices",
		NewRequest: factory[EnumeratePhysicalDevicesParams](),
		NewReply:   factory[EnumeratePhysicalDevicesReply](),
	})
	Commands.Register(command.Command{
		Op:         OpGetPhysicalDeviceProperties,
		Name:       "vkGetPhysicalDeviceProperties",
		NewRequest: factory[GetPhysicalDevicePropertiesParams](),
		NewReply:   factory[GetPhysicalDevicePropertiesReply](),
	})
	Commands.Register(command.Command{
		Op:         OpCreateDevice,
		Name:       "vkCreateDevice",
		NewRequest: factory[CreateDeviceParams](),
		NewReply:   factory[CreateDeviceReply](),
	})
	Commands.Register(command.Command{
		Op:         OpDestroyDevice,
		Name:       "vkDestroyDevice",
		NewRequest: factory[DestroyDeviceParams](),
	})
	Commands.Register(command.Command{
		Op:         OpQueueBindSparse,
		Name:       "vkQueueBindSparse",
		NewRequest: factory[QueueBindSparseParams](),
	})
	Commands.Register(command.Command{
		Op:         OpCreateComputePipelines,
		Name:       "vkCreateComputePipelines",
		NewRequest: factory[CreateComputePipelinesParams](),
		NewReply:   factory[CreateComputePipelinesReply](),
	})
}
