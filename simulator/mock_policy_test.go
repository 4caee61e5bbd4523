package simulator

import (
	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/policy"
)

// MockPolicy is a hand-written stand-in for policy.Policy, in the spirit
// of a go.uber.org/mock-generated mock but written by hand: each method
// delegates to an optional func field and records its call, so a test can
// fix only the behavior it cares about and assert the driver drove the
// policy the way it expects, independent of any real policy's semantics.
type MockPolicy struct {
	GetFunc          func(key string) (string, bool)
	PutFunc          func(key, value string) (string, bool)
	SnapshotFunc     func() []cachesim.Entry
	IsResidentFunc   func(key string) bool
	DescribeMetaFunc func(step *cachesim.Step)

	GetCalls []string
	PutCalls []cachesim.Entry
}

func (m *MockPolicy) Get(key string) (string, bool) {
	m.GetCalls = append(m.GetCalls, key)
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	return "", false
}

func (m *MockPolicy) Put(key, value string) (string, bool) {
	m.PutCalls = append(m.PutCalls, cachesim.Entry{Key: key, Value: value})
	if m.PutFunc != nil {
		return m.PutFunc(key, value)
	}
	return "", false
}

func (m *MockPolicy) Snapshot() []cachesim.Entry {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return nil
}

func (m *MockPolicy) IsResident(key string) bool {
	if m.IsResidentFunc != nil {
		return m.IsResidentFunc(key)
	}
	return false
}

func (m *MockPolicy) DescribeMeta(step *cachesim.Step) {
	if m.DescribeMetaFunc != nil {
		m.DescribeMetaFunc(step)
	}
}

var _ policy.Policy = (*MockPolicy)(nil)
