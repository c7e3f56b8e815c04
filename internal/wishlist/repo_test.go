package wishlist

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:wishlist_repo_%d?mode=memory&cache=shared", testDBSeq)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Wishlist{}, &models.WishlistEntry{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func seedProduct(t *testing.T, conn *gorm.DB) uuid.UUID {
	t.Helper()
	product := models.Product{
		ID:         uuid.New(),
		SKU:        "SKU-" + uuid.NewString()[:8],
		Title:      "test product",
		PriceCents: 1999,
		IsActive:   true,
	}
	if err := conn.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product.ID
}

func TestRepositoryCreateIsAtomicPerCustomer(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	customerID := uuid.New()

	first, err := repo.Create(ctx, customerID)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	// The second insert races the first in production; here it simply runs
	// after it, which exercises the same unique index.
	_, err = repo.Create(ctx, customerID)
	if !errors.Is(err, ErrDuplicateWishlist) {
		t.Fatalf("expected ErrDuplicateWishlist, got %v", err)
	}

	// The winner must be untouched.
	record, err := repo.FindByCustomer(ctx, customerID)
	if err != nil {
		t.Fatalf("find after duplicate: %v", err)
	}
	if record.ID != first.ID {
		t.Fatalf("expected surviving wishlist %s, got %s", first.ID, record.ID)
	}
}

func TestRepositoryAllowsDuplicateEntries(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	productID := seedProduct(t, conn)

	record, err := repo.Create(ctx, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.AppendEntry(ctx, record.ID, productID, nil); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := repo.AppendEntry(ctx, record.ID, productID, nil); err != nil {
		t.Fatalf("second append: %v", err)
	}

	reloaded, err := repo.FindByCustomer(ctx, record.CustomerID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(reloaded.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(reloaded.Entries))
	}
}

func TestRepositoryRemoveEntriesRemovesAllMatches(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	target := seedProduct(t, conn)
	other := seedProduct(t, conn)

	record, err := repo.Create(ctx, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := repo.AppendEntry(ctx, record.ID, target, nil); err != nil {
			t.Fatalf("append target: %v", err)
		}
	}
	if err := repo.AppendEntry(ctx, record.ID, other, nil); err != nil {
		t.Fatalf("append other: %v", err)
	}

	affected, err := repo.RemoveEntries(ctx, record.ID, target)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if affected != 2 {
		t.Fatalf("expected 2 removed, got %d", affected)
	}

	reloaded, err := repo.FindByCustomer(ctx, record.CustomerID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(reloaded.Entries) != 1 || reloaded.Entries[0].ProductID != other {
		t.Fatalf("expected only the other entry to survive, got %+v", reloaded.Entries)
	}
}

func TestRepositoryRemoveEntriesNoMatchLeavesDocumentUntouched(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	productID := seedProduct(t, conn)

	record, err := repo.Create(ctx, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.AppendEntry(ctx, record.ID, productID, nil); err != nil {
		t.Fatalf("append: %v", err)
	}
	before, err := repo.FindByCustomer(ctx, record.CustomerID)
	if err != nil {
		t.Fatalf("find before: %v", err)
	}

	affected, err := repo.RemoveEntries(ctx, record.ID, uuid.New())
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected no rows affected, got %d", affected)
	}

	after, err := repo.FindByCustomer(ctx, record.CustomerID)
	if err != nil {
		t.Fatalf("find after: %v", err)
	}
	if len(after.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(after.Entries))
	}
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("expected updated_at unchanged, got %s vs %s", after.UpdatedAt, before.UpdatedAt)
	}
}

func TestRepositoryUpdateEntryNotesRewritesAllMatches(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	productID := seedProduct(t, conn)

	record, err := repo.Create(ctx, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	original := "original"
	for i := 0; i < 2; i++ {
		if err := repo.AppendEntry(ctx, record.ID, productID, &original); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	updated := "gift for june"
	affected, err := repo.UpdateEntryNotes(ctx, record.ID, productID, &updated)
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if affected != 2 {
		t.Fatalf("expected 2 updated, got %d", affected)
	}

	reloaded, err := repo.FindByCustomer(ctx, record.CustomerID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	for _, entry := range reloaded.Entries {
		if entry.Notes == nil || *entry.Notes != updated {
			t.Fatalf("expected rewritten notes on every entry, got %+v", entry.Notes)
		}
	}
}

func TestRepositoryFindByCustomerMissing(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.FindByCustomer(context.Background(), uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}
