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
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/check"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/cereal/deepcopy"
	"goldfish.dev/cereal/tools/cerealgen/analysis"
)

// countMismatches returns a callback counting into n.
func countMismatches(n *int) check.OnFailFunc {
	return func(string) { *n++ }
}

// failOnMismatch returns a callback failing t.
func failOnMismatch(t *testing.T) check.OnFailFunc {
	return func(msg string) {
		t.Helper()
		t.Errorf("mismatch: %s", msg)
	}
}

func TestBasicStream(t *testing.T) {
	s := cereal.New()
	s.PutBe32(6)
	s.PutString("Hello World")

	v, err := s.GetBe32()
	if err != nil || v != 6 {
		t.Errorf("GetBe32() = %d, %v, want 6", v, err)
	}
	str, err := s.GetString()
	if err != nil || str != "Hello World" {
		t.Errorf("GetString() = %q, %v, want %q", str, err, "Hello World")
	}
}

func TestInstanceCreateInfo(t *testing.T) {
	s := cereal.New()
	src := SampleInstanceCreateInfo()
	if err := src.Marshal(s); err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	dst := InstanceCreateInfo{ApplicationInfo: &ApplicationInfo{}}
	appInfo := dst.ApplicationInfo
	inequalities := 0
	check.Equal(&src, &dst, countMismatches(&inequalities))
	if inequalities == 0 {
		t.Errorf("checker found no difference before unmarshal")
	}

	if err := dst.Unmarshal(s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("%d bytes left after Unmarshal", s.Len())
	}
	if dst.ApplicationInfo != appInfo {
		t.Errorf("Unmarshal replaced the caller's ApplicationInfo")
	}
	if dst.ApplicationInfo.APIVersion != APIVersion10 {
		t.Errorf("APIVersion = %#x, want %#x", dst.ApplicationInfo.APIVersion, APIVersion10)
	}
	check.Equal(&src, &dst, failOnMismatch(t))
}

func TestPhysicalDeviceProperties(t *testing.T) {
	s := cereal.New()
	src := SamplePhysicalDeviceProperties()
	if err := src.Marshal(s); err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var dst PhysicalDeviceProperties
	inequalities := 0
	check.Equal(&src, &dst, countMismatches(&inequalities))
	if inequalities == 0 {
		t.Errorf("checker found no difference before unmarshal")
	}

	if err := dst.Unmarshal(s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if dst.APIVersion != APIVersion10 {
		t.Errorf("APIVersion = %#x", dst.APIVersion)
	}
	if dst.DeviceType != PhysicalDeviceTypeIntegratedGPU {
		t.Errorf("DeviceType = %d", dst.DeviceType)
	}
	if got := dst.Limits.LineWidthRange[1]; got != 2.0 {
		t.Errorf("LineWidthRange[1] = %v, want 2", got)
	}
	if got := dst.Limits.MaxInterpolationOffset; got != 11.0 {
		t.Errorf("MaxInterpolationOffset = %v, want 11", got)
	}
	if got := dst.Name(); got != "Intel740" {
		t.Errorf("Name() = %q, want Intel740", got)
	}
	check.Equal(&src, &dst, failOnMismatch(t))
}

func TestPhysicalDevicePropertiesSize(t *testing.T) {
	s := cereal.New()
	src := SamplePhysicalDeviceProperties()
	if err := src.Marshal(s); err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Five u32 header fields, the name and UUID, 91 u32-sized and 9
	// u64-sized limits, 14 values in fixed limit arrays, and 5 sparse
	// properties.
	const want = 5*4 + MaxPhysicalDeviceNameSize + UUIDSize + 91*4 + 9*8 + 14*4 + 5*4
	if s.Len() != want {
		t.Errorf("encoded size = %d, want %d", s.Len(), want)
	}
}

func TestSparseImageMemoryBindInfo(t *testing.T) {
	s := cereal.New()
	src := SampleSparseImageMemoryBindInfo()
	if err := src.Marshal(s); err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// Preallocated destination storage is reused.
	dst := SparseImageMemoryBindInfo{Binds: make([]SparseImageMemoryBind, 0, SampleBindCount)}
	backing := dst.Binds[:1]
	if err := dst.Unmarshal(s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(dst.Binds) != SampleBindCount {
		t.Fatalf("len(Binds) = %d, want %d", len(dst.Binds), SampleBindCount)
	}
	if &backing[0] != &dst.Binds[0] {
		t.Errorf("Unmarshal did not reuse the destination slice")
	}
	if dst.Image != src.Image {
		t.Errorf("Image = %d, want %d", dst.Image, src.Image)
	}
	for i := range src.Binds {
		if dst.Binds[i].MemoryOffset != src.Binds[i].MemoryOffset {
			t.Errorf("Binds[%d].MemoryOffset = %#x, want %#x", i, dst.Binds[i].MemoryOffset, src.Binds[i].MemoryOffset)
		}
		if dst.Binds[i].Subresource.ArrayLayer != src.Binds[i].Subresource.ArrayLayer {
			t.Errorf("Binds[%d].Subresource.ArrayLayer = %d, want %d", i, dst.Binds[i].Subresource.ArrayLayer, src.Binds[i].Subresource.ArrayLayer)
		}
	}
	check.Equal(&src, &dst, failOnMismatch(t))
}

func TestDeviceQueueCreateInfo(t *testing.T) {
	s := cereal.New()
	src := SampleDeviceQueueCreateInfo()
	if err := src.Marshal(s); err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	dst := DeviceQueueCreateInfo{
		SType:           StructureTypeApplicationInfo,
		QueuePriorities: make([]float32, SampleQueueCount),
	}
	if err := dst.Unmarshal(s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(src.QueuePriorities, dst.QueuePriorities); diff != "" {
		t.Errorf("QueuePriorities mismatch (-want +got):\n%s", diff)
	}
	check.Equal(&src, &dst, failOnMismatch(t))
}

func TestSpecializationInfo(t *testing.T) {
	s := cereal.New()
	src := SampleSpecializationInfo()

	dst := SpecializationInfo{
		MapEntries: make([]SpecializationMapEntry, SampleMapEntries),
		Data:       make([]byte, SampleDataSize),
	}
	data := dst.Data
	inequalities := 0
	check.Equal(&src, &dst, countMismatches(&inequalities))
	if inequalities == 0 {
		t.Errorf("checker found no difference before unmarshal")
	}

	if err := src.Marshal(s); err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := dst.Unmarshal(s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !bytes.Equal(src.Data, data) {
		t.Errorf("blob not written into caller storage: got %v", data)
	}
	check.Equal(&src, &dst, failOnMismatch(t))
}

func TestSpecializationInfoBlobEdges(t *testing.T) {
	for _, test := range []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "zeros", data: make([]byte, 32)},
		{name: "ones", data: bytes.Repeat([]byte{0xff}, 32)},
	} {
		t.Run(test.name, func(t *testing.T) {
			src := SpecializationInfo{DataSize: uint64(len(test.data)), Data: test.data}
			var dst SpecializationInfo
			if err := cereal.Roundtrip(&src, &dst); err != nil {
				t.Fatalf("Roundtrip: %v", err)
			}
			if !bytes.Equal(dst.Data[:dst.DataSize], test.data) {
				t.Errorf("Data = %v, want %v", dst.Data, test.data)
			}
		})
	}
}

func TestSpecializationInfoShortBlob(t *testing.T) {
	src := SpecializationInfo{DataSize: 8, Data: []byte{1, 2}}
	if err := src.Marshal(cereal.New()); err == nil {
		t.Errorf("Marshal succeeded with DataSize beyond Data")
	}
}

func TestSpecializationInfoReusesLargerBlob(t *testing.T) {
	src := SampleSpecializationInfo()
	dst := SpecializationInfo{Data: bytes.Repeat([]byte{0xee}, 2*SampleDataSize)}
	storage := dst.Data
	if err := cereal.Roundtrip(&src, &dst); err != nil {
		t.Fatalf("Roundtrip: %v", err)
	}
	if len(dst.Data) != int(dst.DataSize) {
		t.Errorf("len(Data) = %d, want DataSize %d", len(dst.Data), dst.DataSize)
	}
	if &dst.Data[0] != &storage[0] {
		t.Errorf("blob not written into caller storage")
	}
	if !bytes.Equal(dst.Data, src.Data) {
		t.Errorf("Data = %v, want %v", dst.Data, src.Data)
	}
}

func TestSpecializationInfoSizeMismatch(t *testing.T) {
	a := SpecializationInfo{DataSize: 4, Data: []byte{1, 2, 3, 4}}
	b := SpecializationInfo{DataSize: 3, Data: []byte{9, 9, 9}}
	var msgs []string
	check.Equal(&a, &b, func(msg string) { msgs = append(msgs, msg) })
	want := []string{
		"DataSize: 4 != 3",
		"Data: first difference at byte 0: 0x1 != 0x9",
	}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}

	b.Data = []byte{1, 2, 3}
	msgs = nil
	check.Equal(&a, &b, func(msg string) { msgs = append(msgs, msg) })
	if diff := cmp.Diff(want[:1], msgs); diff != "" {
		t.Errorf("messages with a common prefix (-want +got):\n%s", diff)
	}
}

func TestDivergenceDetected(t *testing.T) {
	base := SampleInstanceCreateInfo()
	for _, test := range []struct {
		name   string
		mutate func(*InstanceCreateInfo)
	}{
		{"presence", func(ci *InstanceCreateInfo) { ci.ApplicationInfo = nil }},
		{"count", func(ci *InstanceCreateInfo) { ci.EnabledLayerNames = ci.EnabledLayerNames[:1] }},
		{"nested", func(ci *InstanceCreateInfo) { ci.ApplicationInfo.EngineVersion++ }},
		{"string", func(ci *InstanceCreateInfo) { ci.EnabledExtensionNames[2] = "VK_KHR_surface" }},
	} {
		t.Run(test.name, func(t *testing.T) {
			var pool deepcopy.Pool
			other := deepcopy.Copy(&pool, &base)
			test.mutate(other)
			if check.Equal(&base, other, nil) {
				t.Errorf("checker missed the difference")
			}
		})
	}
}

func TestDeepCopyIndependent(t *testing.T) {
	var pool deepcopy.Pool
	src := SampleSpecializationInfo()
	cp := deepcopy.Copy(&pool, &src)
	check.Equal(&src, cp, failOnMismatch(t))

	cp.Data[0] = 0xaa
	cp.MapEntries[0].ConstantID = 99
	if src.Data[0] == 0xaa || src.MapEntries[0].ConstantID == 99 {
		t.Errorf("copy shares storage with its source")
	}
}

func TestRandomRoundtrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		roundtrip[InstanceCreateInfo](t, r)
		roundtrip[PhysicalDeviceProperties](t, r)
		roundtrip[BindSparseInfo](t, r)
		roundtrip[DeviceCreateInfo](t, r)
		roundtrip[CreateComputePipelinesParams](t, r)
	}
}

func roundtrip[T any, P analysis.Equaler[T]](t *testing.T, r *rand.Rand) {
	t.Helper()
	src := new(T)
	analysis.RandomizeValue(src, r, nil)
	n, err := analysis.Roundtrip[T, P](src, failOnMismatch(t))
	if err != nil {
		t.Fatalf("Roundtrip(%T): %v", src, err)
	}
	if n != 0 {
		t.Errorf("Roundtrip(%T): %d mismatches", src, n)
	}
}

func TestCommandsRegistered(t *testing.T) {
	var ops []command.Opcode
	Commands.Each(func(c *command.Command) bool {
		ops = append(ops, c.Op)
		return true
	})
	want := []command.Opcode{
		OpCreateInstance,
		OpDestroyInstance,
		OpEnumeratePhysicalDevices,
		OpGetPhysicalDeviceProperties,
		OpCreateDevice,
		OpDestroyDevice,
		OpQueueBindSparse,
		OpCreateComputePipelines,
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("registered opcodes mismatch (-want +got):\n%s", diff)
	}
	if c, ok := Commands.LookupName("vkQueueBindSparse"); !ok || c.NewReply != nil {
		t.Errorf("vkQueueBindSparse = %v, %t, want a status-only command", c, ok)
	}
}

func TestSampleCallsAgainstHost(t *testing.T) {
	guest, hostConn := net.Pipe()
	defer guest.Close()
	h := NewHost()
	srv := command.NewServer(Commands, h)
	done := make(chan error, 1)
	go func() {
		done <- srv.ServeConn(context.Background(), hostConn)
	}()

	calls := SampleCalls()
	if err := Play(command.NewClient(guest, Commands), calls); err != nil {
		t.Fatalf("Play: %v", err)
	}
	props := calls[2].Reply.(*GetPhysicalDevicePropertiesReply).Properties
	want := SamplePhysicalDeviceProperties()
	check.Equal(&want, &props, failOnMismatch(t))
	if got := len(calls[5].Reply.(*CreateComputePipelinesReply).Pipelines); got != 1 {
		t.Errorf("created %d pipelines, want 1", got)
	}
	if n := h.Devices(); n != 0 {
		t.Errorf("%d devices left after the sequence", n)
	}

	guest.Close()
	if err := <-done; err != nil {
		t.Errorf("ServeConn: %v", err)
	}
}

func TestHostRejects(t *testing.T) {
	guest, hostConn := net.Pipe()
	defer guest.Close()
	go command.NewServer(Commands, NewHost()).ServeConn(context.Background(), hostConn)
	cl := command.NewClient(guest, Commands)

	ci := SampleInstanceCreateInfo()
	ci.EnabledLayerNames = append(ci.EnabledLayerNames, "missing")
	var se *command.StatusError
	err := cl.Call(&CreateInstanceParams{CreateInfo: ci}, new(CreateInstanceReply))
	if !errors.As(err, &se) || Result(se.Status) != ErrorLayerNotPresent {
		t.Errorf("CreateInstance with unknown layer = %v, want %v", err, ErrorLayerNotPresent)
	}

	err = cl.Call(&DestroyDeviceParams{Device: 12345}, nil)
	if !errors.As(err, &se) || Result(se.Status) != ErrorDeviceLost {
		t.Errorf("DestroyDevice of unknown handle = %v, want %v", err, ErrorDeviceLost)
	}
}

func TestCreateComputePipelinesAllOrNothing(t *testing.T) {
	guest, hostConn := net.Pipe()
	defer guest.Close()
	h := NewHost()
	go command.NewServer(Commands, h).ServeConn(context.Background(), hostConn)
	cl := command.NewClient(guest, Commands)

	// Create an instance and a device.
	calls := SampleCalls()
	if err := Play(cl, calls[:4]); err != nil {
		t.Fatalf("Play: %v", err)
	}
	pipelines := calls[5].Request.(*CreateComputePipelinesParams)
	pipelines.Device = calls[3].Reply.(*CreateDeviceReply).Device
	bad := pipelines.CreateInfos[0]
	bad.Stage.Stage = 0
	pipelines.CreateInfos = append(pipelines.CreateInfos, bad)

	var se *command.StatusError
	err := cl.Call(pipelines, new(CreateComputePipelinesReply))
	if !errors.As(err, &se) || Result(se.Status) != ErrorInitializationFailed {
		t.Errorf("CreateComputePipelines with a bad stage = %v, want %v", err, ErrorInitializationFailed)
	}
	if st := h.Stats(); len(st.Pipelines) != 0 {
		t.Errorf("failed call left pipelines %v", st.Pipelines)
	}
}

func TestHostStats(t *testing.T) {
	guest, hostConn := net.Pipe()
	defer guest.Close()
	h := NewHost()
	go command.NewServer(Commands, h).ServeConn(context.Background(), hostConn)

	calls := SampleCalls()
	if err := Play(command.NewClient(guest, Commands), calls[:6]); err != nil {
		t.Fatalf("Play: %v", err)
	}
	inst := calls[0].Reply.(*CreateInstanceReply).Instance
	dev := calls[3].Reply.(*CreateDeviceReply).Device
	pl := calls[5].Reply.(*CreateComputePipelinesReply).Pipelines[0]
	want := Stats{
		Instances: map[Instance][]PhysicalDevice{inst: calls[1].Reply.(*EnumeratePhysicalDevicesReply).PhysicalDevices},
		Devices:   []Device{dev},
		Pipelines: map[Pipeline]Device{pl: dev},
	}
	st := h.Stats()
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}

	// The snapshot is independent of the host.
	st.Instances[inst][0] = 0
	delete(st.Pipelines, pl)
	if diff := cmp.Diff(want, h.Stats()); diff != "" {
		t.Errorf("Stats changed through a snapshot (-want +got):\n%s", diff)
	}
}

func TestResultString(t *testing.T) {
	if got := ErrorLayerNotPresent.String(); got != "VK_ERROR_LAYER_NOT_PRESENT" {
		t.Errorf("String() = %q", got)
	}
	if got := Result(-1000).String(); got != "VkResult(-1000)" {
		t.Errorf("String() = %q", got)
	}
}
