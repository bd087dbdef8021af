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
	"context"
	"fmt"
	"slices"
	"sync"

	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/cereal/deepcopy"
	"goldfish.dev/cereal/pkg/log"
)

// Host is a software stand-in for the host-side executor. It validates
// handles, hands out new ones and answers property queries from a fixed
// device description, which makes it suitable for exercising the full
// encode, transport, decode and dispatch path without a GPU.
type Host struct {
	// Layers and Extensions are the names an instance or device may enable.
	Layers     map[string]bool
	Extensions map[string]bool

	// Properties is returned for every physical device.
	Properties PhysicalDeviceProperties

	// DevicesPerInstance is the number of physical devices enumerated.
	DevicesPerInstance int

	mu sync.Mutex

	// next is the last handle handed out; handles are never reused.
	next uint64

	instances map[Instance][]PhysicalDevice
	physical  map[PhysicalDevice]Instance
	devices   map[Device]*CreateDeviceParams
	pipelines map[Pipeline]Device

	// pool holds the device create infos retained in devices.
	pool deepcopy.Pool
}

// NewHost returns a host that accepts every layer and extension used by
// SampleCalls and reports SamplePhysicalDeviceProperties.
func NewHost() *Host {
	h := &Host{
		Layers:             make(map[string]bool),
		Extensions:         make(map[string]bool),
		Properties:         SamplePhysicalDeviceProperties(),
		DevicesPerInstance: 1,
		instances:          make(map[Instance][]PhysicalDevice),
		physical:           make(map[PhysicalDevice]Instance),
		devices:            make(map[Device]*CreateDeviceParams),
		pipelines:          make(map[Pipeline]Device),
	}
	for _, l := range sampleLayers {
		h.Layers[l] = true
	}
	for _, e := range sampleExtensions {
		h.Extensions[e] = true
	}
	return h
}

// handle returns a fresh handle. Preconditions: h.mu is held.
func (h *Host) handle() uint64 {
	h.next++
	return h.next
}

// Handle implements command.Handler.Handle.
func (h *Host) Handle(ctx context.Context, c *command.Command, req cereal.Marshallable) (int32, cereal.Marshaler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var (
		reply cereal.Marshaler
		res   Result
	)
	switch req := req.(type) {
	case *CreateInstanceParams:
		reply, res = h.createInstance(req)
	case *DestroyInstanceParams:
		res = h.destroyInstance(req)
	case *EnumeratePhysicalDevicesParams:
		reply, res = h.enumeratePhysicalDevices(req)
	case *GetPhysicalDevicePropertiesParams:
		reply, res = h.getPhysicalDeviceProperties(req)
	case *CreateDeviceParams:
		reply, res = h.createDevice(req)
	case *DestroyDeviceParams:
		res = h.destroyDevice(req)
	case *QueueBindSparseParams:
		res = h.queueBindSparse(req)
	case *CreateComputePipelinesParams:
		reply, res = h.createComputePipelines(req)
	default:
		panic(fmt.Sprintf("%v: unexpected request type %T", c, req))
	}
	if res != Success {
		log.Infof("%v: %v", c, res)
		return int32(res), nil
	}
	return int32(res), reply
}

func (h *Host) checkNames(names []string, known map[string]bool, missing Result) Result {
	for _, n := range names {
		if !known[n] {
			return missing
		}
	}
	return Success
}

func (h *Host) createInstance(p *CreateInstanceParams) (cereal.Marshaler, Result) {
	ci := &p.CreateInfo
	if ci.SType != StructureTypeInstanceCreateInfo {
		return nil, ErrorInitializationFailed
	}
	if app := ci.ApplicationInfo; app != nil && app.APIVersion > APIVersion10 {
		return nil, ErrorIncompatibleDriver
	}
	if res := h.checkNames(ci.EnabledLayerNames, h.Layers, ErrorLayerNotPresent); res != Success {
		return nil, res
	}
	if res := h.checkNames(ci.EnabledExtensionNames, h.Extensions, ErrorExtensionNotPresent); res != Success {
		return nil, res
	}
	inst := Instance(h.handle())
	pds := make([]PhysicalDevice, h.DevicesPerInstance)
	for i := range pds {
		pds[i] = PhysicalDevice(h.handle())
		h.physical[pds[i]] = inst
	}
	h.instances[inst] = pds
	return &CreateInstanceReply{Instance: inst}, Success
}

func (h *Host) destroyInstance(p *DestroyInstanceParams) Result {
	pds, ok := h.instances[p.Instance]
	if !ok {
		return ErrorInitializationFailed
	}
	for _, pd := range pds {
		delete(h.physical, pd)
	}
	delete(h.instances, p.Instance)
	return Success
}

func (h *Host) enumeratePhysicalDevices(p *EnumeratePhysicalDevicesParams) (cereal.Marshaler, Result) {
	pds, ok := h.instances[p.Instance]
	if !ok {
		return nil, ErrorInitializationFailed
	}
	return &EnumeratePhysicalDevicesReply{PhysicalDevices: append([]PhysicalDevice(nil), pds...)}, Success
}

func (h *Host) getPhysicalDeviceProperties(p *GetPhysicalDevicePropertiesParams) (cereal.Marshaler, Result) {
	if _, ok := h.physical[p.PhysicalDevice]; !ok {
		return nil, ErrorInitializationFailed
	}
	return &GetPhysicalDevicePropertiesReply{Properties: h.Properties}, Success
}

func (h *Host) createDevice(p *CreateDeviceParams) (cereal.Marshaler, Result) {
	if _, ok := h.physical[p.PhysicalDevice]; !ok {
		return nil, ErrorInitializationFailed
	}
	ci := &p.CreateInfo
	if ci.SType != StructureTypeDeviceCreateInfo || len(ci.QueueCreateInfos) == 0 {
		return nil, ErrorInitializationFailed
	}
	for _, q := range ci.QueueCreateInfos {
		if len(q.QueuePriorities) == 0 {
			return nil, ErrorInitializationFailed
		}
		for _, prio := range q.QueuePriorities {
			if prio < 0 {
				return nil, ErrorInitializationFailed
			}
		}
	}
	if res := h.checkNames(ci.EnabledLayerNames, h.Layers, ErrorLayerNotPresent); res != Success {
		return nil, res
	}
	if res := h.checkNames(ci.EnabledExtensionNames, h.Extensions, ErrorExtensionNotPresent); res != Success {
		return nil, res
	}
	dev := Device(h.handle())
	// The request is owned by the decoder; retain a copy.
	h.devices[dev] = deepcopy.Copy(&h.pool, p)
	return &CreateDeviceReply{Device: dev}, Success
}

func (h *Host) destroyDevice(p *DestroyDeviceParams) Result {
	if _, ok := h.devices[p.Device]; !ok {
		return ErrorDeviceLost
	}
	delete(h.devices, p.Device)
	for pl, dev := range h.pipelines {
		if dev == p.Device {
			delete(h.pipelines, pl)
		}
	}
	if len(h.devices) == 0 {
		h.pool.FreeAll()
	}
	return Success
}

func (h *Host) queueBindSparse(p *QueueBindSparseParams) Result {
	if p.Queue == 0 {
		return ErrorDeviceLost
	}
	for _, bi := range p.BindInfos {
		for _, ib := range bi.ImageBinds {
			if ib.Image == 0 {
				return ErrorDeviceLost
			}
		}
	}
	return Success
}

func (h *Host) createComputePipelines(p *CreateComputePipelinesParams) (cereal.Marshaler, Result) {
	if _, ok := h.devices[p.Device]; !ok {
		return nil, ErrorDeviceLost
	}
	for _, ci := range p.CreateInfos {
		if ci.Stage.Stage != ShaderStageComputeBit {
			return nil, ErrorInitializationFailed
		}
	}
	reply := &CreateComputePipelinesReply{Pipelines: make([]Pipeline, len(p.CreateInfos))}
	for i := range p.CreateInfos {
		pl := Pipeline(h.handle())
		h.pipelines[pl] = p.Device
		reply.Pipelines[i] = pl
	}
	return reply, Success
}

// Devices returns the number of live devices.
func (h *Host) Devices() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.devices)
}

// Stats is a snapshot of the objects a Host tracks.
type Stats struct {
	// Instances maps each live instance to its physical devices.
	Instances map[Instance][]PhysicalDevice

	// Devices lists the live devices in handle order.
	Devices []Device

	// Pipelines maps each live pipeline to its device.
	Pipelines map[Pipeline]Device
}

// Stats returns a copy of the host's object tables. The result shares no
// memory with the host.
func (h *Host) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := Stats{
		Instances: deepcopy.Reflect(h.instances),
		Devices:   make([]Device, 0, len(h.devices)),
		Pipelines: deepcopy.Reflect(h.pipelines),
	}
	for dev := range h.devices {
		st.Devices = append(st.Devices, dev)
	}
	slices.Sort(st.Devices)
	return st
}
