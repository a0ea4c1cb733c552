package listing

import (
	"context"
	"errors"
	"testing"

	"webimmo/models"
)

type fakeListingRepo struct {
	listings []models.Listing
	failAll  bool
}

func (f *fakeListingRepo) GetAll(ctx context.Context) ([]models.Listing, error) {
	if f.failAll {
		return nil, errors.New("store unavailable")
	}
	return f.listings, nil
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	for i := range f.listings {
		if f.listings[i].ID == id {
			return &f.listings[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeListingRepo) Create(ctx context.Context, l models.Listing) (string, error) {
	if l.ID == "" {
		l.ID = "generated"
	}
	f.listings = append(f.listings, l)
	return l.ID, nil
}

func (f *fakeListingRepo) Update(ctx context.Context, l models.Listing) error {
	for i := range f.listings {
		if f.listings[i].ID == l.ID {
			f.listings[i] = l
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeListingRepo) Delete(ctx context.Context, id string) error {
	for i := range f.listings {
		if f.listings[i].ID == id {
			f.listings = append(f.listings[:i], f.listings[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func validListing() models.Listing {
	return models.Listing{
		Title:          "Maison familiale",
		Price:          "550000",
		Size:           "150",
		Types:          []string{"house"},
		Images:         []string{"a.jpg", "b.jpg"},
		PrincipalImage: "a.jpg",
		Condition:      models.ConditionAvailable,
	}
}

func TestCreateRejectsPrincipalImageOutsideList(t *testing.T) {
	svc := &DefaultListingService{Repo: &fakeListingRepo{}}

	l := validListing()
	l.PrincipalImage = "missing.jpg"

	if _, err := svc.Create(context.Background(), l); err == nil {
		t.Fatal("expected validation error for principal image outside images list")
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := &DefaultListingService{Repo: &fakeListingRepo{}}

	l := validListing()
	l.Types = []string{"castle"}

	if _, err := svc.Create(context.Background(), l); err == nil {
		t.Fatal("expected validation error for unknown property type")
	}
}

func TestCreateDefaultsConditionToAvailable(t *testing.T) {
	repo := &fakeListingRepo{}
	svc := &DefaultListingService{Repo: repo}

	l := validListing()
	l.Condition = ""

	created, err := svc.Create(context.Background(), l)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Condition != models.ConditionAvailable {
		t.Fatalf("expected condition to default to available, got %q", created.Condition)
	}
}

func TestSearchDegradesToEmptySetOnLoadFailure(t *testing.T) {
	svc := &DefaultListingService{Repo: &fakeListingRepo{failAll: true}}

	got := svc.Search(context.Background(), models.DefaultCriteria())
	if got == nil {
		t.Fatal("expected an empty set, not nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result set on load failure, got %d listings", len(got))
	}
}

func TestSearchAppliesCriteria(t *testing.T) {
	l1 := validListing()
	l1.ID = "l1"
	l2 := validListing()
	l2.ID = "l2"
	l2.Price = "2500000"

	svc := &DefaultListingService{Repo: &fakeListingRepo{listings: []models.Listing{l1, l2}}}

	got := svc.Search(context.Background(), models.DefaultCriteria())
	if len(got) != 1 || got[0].ID != "l1" {
		t.Fatalf("expected only the listing under the price ceiling, got %+v", got)
	}
}
