package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jaeyoonkim/gisu/internal/remote"
)

// FakeRemote is an in-memory remote.Store for tests. Failure modes are
// toggled per instance; Sets and Gets are counted for assertions.
type FakeRemote struct {
	Docs map[string]*remote.Document // keyed uid/key

	FailGets bool
	FailSets bool
	GetDelay time.Duration

	GetCalls int
	SetCalls int
}

// NewFakeRemote creates an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{Docs: make(map[string]*remote.Document)}
}

func docKey(uid, key string) string {
	return uid + "/" + key
}

func (f *FakeRemote) Get(ctx context.Context, uid, key string) (*remote.Document, error) {
	f.GetCalls++
	if f.GetDelay > 0 {
		select {
		case <-time.After(f.GetDelay):
		case <-ctx.Done():
			return nil, remote.ErrTimeout
		}
	}
	if f.FailGets {
		return nil, remote.ErrUnavailable
	}
	doc, ok := f.Docs[docKey(uid, key)]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (f *FakeRemote) Set(ctx context.Context, uid, key string, value any) error {
	f.SetCalls++
	if f.FailSets {
		return remote.ErrUnavailable
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling fake document: %w", err)
	}
	f.Docs[docKey(uid, key)] = &remote.Document{
		Value:     raw,
		UpdatedAt: time.Now().UnixMilli(),
	}
	return nil
}

func (f *FakeRemote) Available(ctx context.Context) bool {
	return !f.FailSets && !f.FailGets
}

// SeedTasks stores a tasks payload for uid, bypassing failure toggles.
func (f *FakeRemote) SeedTasks(uid string, payload remote.TaskList) {
	raw, _ := json.Marshal(payload)
	f.Docs[docKey(uid, remote.KeyTasks)] = &remote.Document{
		Value:     raw,
		UpdatedAt: payload.UpdatedAt,
	}
}

// Tasks decodes the stored tasks payload for uid. Missing documents come
// back as an empty payload.
func (f *FakeRemote) Tasks(uid string) remote.TaskList {
	doc, ok := f.Docs[docKey(uid, remote.KeyTasks)]
	if !ok {
		return remote.TaskList{}
	}
	payload, _ := remote.DecodeTaskList(doc.Value)
	return payload
}
