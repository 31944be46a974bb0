package service

import (
	"context"
	"errors"
	"testing"

	"taxpal/internal/models"
	"taxpal/internal/storage"
)

func TestCategoryListSeedsOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(storage.NewMemoryCategoryStorage())

	first, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("First list failed: %v", err)
	}
	if len(first) != len(defaultExpenseCategories) {
		t.Fatalf("Expected %d seeded categories, got %d", len(defaultExpenseCategories), len(first))
	}

	second, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("Second list failed: %v", err)
	}
	if len(second) != len(defaultExpenseCategories) {
		t.Errorf("Second list returned %d categories, seeding should not repeat", len(second))
	}
}

func TestCategorySeedingIsPerUser(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(storage.NewMemoryCategoryStorage())

	if _, err := svc.List(ctx, "user-1"); err != nil {
		t.Fatalf("List for user-1 failed: %v", err)
	}
	cats, err := svc.List(ctx, "user-2")
	if err != nil {
		t.Fatalf("List for user-2 failed: %v", err)
	}
	for _, cat := range cats {
		if cat.UserID != "user-2" {
			t.Errorf("Category %q belongs to %q, want user-2", cat.Name, cat.UserID)
		}
	}
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(storage.NewMemoryCategoryStorage())

	req := &models.CreateCategoryRequest{Name: "Gear", Type: models.CategoryExpense, Color: "#ff0000"}
	if _, err := svc.Create(ctx, "user-1", req); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err := svc.Create(ctx, "user-1", req)
	if !errors.Is(err, ErrCategoryExists) {
		t.Errorf("Expected ErrCategoryExists, got %v", err)
	}

	// The same name is fine for a different user.
	if _, err := svc.Create(ctx, "user-2", req); err != nil {
		t.Errorf("Create for another user failed: %v", err)
	}
}

func TestCategoryUpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(storage.NewMemoryCategoryStorage())

	cat, err := svc.Create(ctx, "user-1", &models.CreateCategoryRequest{
		Name: "Gear", Type: models.CategoryExpense, Color: "#ff0000",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newColor := "#00ff00"
	updated, err := svc.Update(ctx, "user-1", cat.ID, &models.UpdateCategoryRequest{Color: &newColor})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Color != newColor {
		t.Errorf("Expected color %q, got %q", newColor, updated.Color)
	}
	if updated.Name != "Gear" || updated.Type != models.CategoryExpense {
		t.Errorf("Unset fields changed: name=%q type=%q", updated.Name, updated.Type)
	}
}

func TestCategoryOwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryCategoryStorage()
	svc := NewCategoryService(store)

	cat, err := svc.Create(ctx, "owner", &models.CreateCategoryRequest{
		Name: "Gear", Type: models.CategoryExpense, Color: "#ff0000",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	name := "Hijacked"
	if _, err := svc.Update(ctx, "intruder", cat.ID, &models.UpdateCategoryRequest{Name: &name}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Update by non-owner: expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(ctx, "intruder", cat.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Delete by non-owner: expected ErrNotOwner, got %v", err)
	}

	stored, err := store.GetByID(ctx, cat.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored == nil || stored.Name != "Gear" {
		t.Error("Category should be untouched after rejected operations")
	}
}

func TestCategoryNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(storage.NewMemoryCategoryStorage())

	name := "Anything"
	if _, err := svc.Update(ctx, "user-1", "missing", &models.UpdateCategoryRequest{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}
