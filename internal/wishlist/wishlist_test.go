package wishlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/awe-electronics/storefront/internal/catalog"
)

type mockBackend struct {
	products []catalog.Product
	failNext error
	addCalls int
	remCalls int
}

func (m *mockBackend) take() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *mockBackend) Load(ctx context.Context) ([]catalog.Product, error) {
	if err := m.take(); err != nil {
		return nil, err
	}
	return m.products, nil
}

func (m *mockBackend) Add(ctx context.Context, p catalog.Product) error {
	m.addCalls++
	return m.take()
}

func (m *mockBackend) Remove(ctx context.Context, p catalog.Product) error {
	m.remCalls++
	return m.take()
}

func (m *mockBackend) Clear(ctx context.Context) error {
	return m.take()
}

var monitor = catalog.Product{ID: "p3", Name: "4K Monitor", Price: 349, Stock: 3}

func TestAdd_IsSetLike(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend)
	ctx := context.Background()

	added, err := svc.Add(ctx, monitor)
	if err != nil || !added {
		t.Fatalf("first add: added=%v err=%v", added, err)
	}

	// duplicate add reports false and never reaches the backend
	added, err = svc.Add(ctx, monitor)
	if err != nil {
		t.Fatalf("duplicate add: %v", err)
	}
	if added {
		t.Fatal("duplicate add reported true")
	}
	if backend.addCalls != 1 {
		t.Fatalf("backend add called %d times, want 1", backend.addCalls)
	}
	if svc.Count() != 1 {
		t.Fatalf("count = %d, want 1", svc.Count())
	}
}

func TestRemove_AbsentReportsFalse(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend)

	removed, err := svc.Remove(context.Background(), monitor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed || backend.remCalls != 0 {
		t.Fatalf("removed=%v backendCalls=%d", removed, backend.remCalls)
	}
}

func TestToggle_FlipsMembership(t *testing.T) {
	svc := NewService(&mockBackend{})
	ctx := context.Background()

	in, err := svc.Toggle(ctx, monitor)
	if err != nil || !in {
		t.Fatalf("toggle on: in=%v err=%v", in, err)
	}
	if !svc.Contains(monitor) {
		t.Fatal("product not in wishlist after toggle on")
	}

	in, err = svc.Toggle(ctx, monitor)
	if err != nil || in {
		t.Fatalf("toggle off: in=%v err=%v", in, err)
	}
	if svc.Contains(monitor) {
		t.Fatal("product still in wishlist after toggle off")
	}
}

func TestAdd_BackendFailureLeavesSetUntouched(t *testing.T) {
	backend := &mockBackend{failNext: errors.New("api down")}
	svc := NewService(backend)

	events := 0
	svc.Subscribe(func(Event) { events++ })

	if _, err := svc.Add(context.Background(), monitor); err == nil {
		t.Fatal("expected add to fail")
	}
	if svc.Count() != 0 || events != 0 {
		t.Fatalf("count=%d events=%d after failed add", svc.Count(), events)
	}
}

func TestLoad_StampsEntriesWithNow(t *testing.T) {
	backend := &mockBackend{products: []catalog.Product{monitor}}
	svc := NewService(backend)

	stamp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.nowFunc = func() time.Time { return stamp }

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(svc.entries) != 1 || !svc.entries[0].AddedAt.Equal(stamp) {
		t.Fatalf("entries: %+v", svc.entries)
	}
}

func TestEvents_PublishedPerMutation(t *testing.T) {
	svc := NewService(&mockBackend{})
	ctx := context.Background()

	var got []Event
	svc.Subscribe(func(e Event) { got = append(got, e) })

	if _, err := svc.Add(ctx, monitor); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Remove(ctx, monitor); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	want := []EventType{EventAdded, EventRemoved, EventCleared}
	if len(got) != len(want) {
		t.Fatalf("events: %+v", got)
	}
	for i := range want {
		if got[i].Type != want[i] {
			t.Fatalf("event %d = %+v, want %v", i, got[i], want[i])
		}
	}
}
