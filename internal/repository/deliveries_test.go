package repository_test

import (
	"context"
	"testing"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/repository"
	"github.com/campbellhoskins/chore-bot/internal/testutil"
)

func TestDeliveryRepository_CreateAndFind(t *testing.T) {
	repo := repository.NewDeliveryRepository(testutil.NewTestDatabase(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Delivery{
		MemberID:    "m1",
		Kind:        models.DeliveryAssignment,
		ProviderSID: "SM123",
	})
	if err != nil {
		t.Fatalf("creating delivery: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated delivery id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}

	if _, err := repo.Create(ctx, models.Delivery{
		MemberID: "m1",
		Kind:     models.DeliveryReminder,
		Error:    "twilio returned status 500",
	}); err != nil {
		t.Fatalf("creating failed delivery record: %v", err)
	}

	deliveries, err := repo.FindByMemberID(ctx, "m1")
	if err != nil {
		t.Fatalf("finding deliveries: %v", err)
	}
	if len(deliveries) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(deliveries))
	}

	other, err := repo.FindByMemberID(ctx, "m2")
	if err != nil {
		t.Fatalf("finding deliveries for other member: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no deliveries for m2, got %d", len(other))
	}
}
