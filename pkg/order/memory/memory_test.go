package memory

import (
	"context"
	"errors"
	"testing"

	"biltiflow/pkg/order"
)

var _ order.Repository = (*Repository)(nil)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	created, err := repo.Create(ctx, order.Order{"biltiNo": "BL001", "status": "Created"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID() != "1" {
		t.Fatalf("expected id 1, got %q", created.ID())
	}
	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["biltiNo"] != "BL001" {
		t.Fatalf("expected BL001, got %v", got["biltiNo"])
	}
	updated, err := repo.Update(ctx, "1", order.Order{"status": "Delivered"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated["status"] != "Delivered" || updated["biltiNo"] != "BL001" {
		t.Fatalf("unexpected merge result: %v", updated)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "1"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSeededStore(t *testing.T) {
	ctx := context.Background()
	repo := New(order.Seed()...)

	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0].ID() != "1" || list[1].ID() != "2" {
		t.Fatalf("unexpected seed list: %v", list)
	}

	o, _ := repo.Create(ctx, order.Order{"biltiNo": "BL003"})
	if o.ID() != "3" {
		t.Fatalf("expected id 3, got %q", o.ID())
	}
}

func TestIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo := New(order.Seed()...)

	if err := repo.Delete(ctx, "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	o, _ := repo.Create(ctx, order.Order{})
	if o.ID() != "3" {
		t.Fatalf("expected id 3, got %q", o.ID())
	}
	list, _ := repo.List(ctx)
	seen := map[string]bool{}
	for _, o := range list {
		if seen[o.ID()] {
			t.Fatalf("duplicate id %q", o.ID())
		}
		seen[o.ID()] = true
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	repo := New(order.Seed()...)
	repo.Create(ctx, order.Order{"biltiNo": "BL003"})
	repo.Create(ctx, order.Order{"biltiNo": "BL004"})
	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, _ := repo.List(ctx)
	want := []string{"2", "3", "4"}
	if len(list) != len(want) {
		t.Fatalf("expected %d orders, got %d", len(want), len(list))
	}
	for i, id := range want {
		if list[i].ID() != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, list[i].ID())
		}
	}
}

func TestReturnedOrdersAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := New(order.Seed()...)

	list, _ := repo.List(ctx)
	list[0]["status"] = "Tampered"
	list[0]["items"].([]any)[0].(map[string]any)["unit"] = "Crate"

	got, _ := repo.Get(ctx, "1")
	if got["status"] != "Created" {
		t.Fatalf("store changed through list result: %v", got["status"])
	}
	if got["items"].([]any)[0].(map[string]any)["unit"] != "Box" {
		t.Fatal("store items changed through list result")
	}
}

func TestMissingOrder(t *testing.T) {
	ctx := context.Background()
	repo := New(order.Seed()...)

	if _, err := repo.Update(ctx, "999", order.Order{"status": "x"}); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "999"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 2 {
		t.Fatalf("store changed: %d orders", len(list))
	}
}
