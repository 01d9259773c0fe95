package company

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

type memoryRepo struct {
	companies map[uuid.UUID]Company
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{companies: make(map[uuid.UUID]Company)}
}

func (m *memoryRepo) Create(ctx context.Context, input CreateInput, userID uuid.UUID) (Company, error) {
	c := Company{
		ID:                  uuid.New(),
		Name:                input.Name,
		Description:         input.Description,
		Country:             input.Country,
		Website:             input.Website,
		Linkedin:            input.Linkedin,
		SupportsSponsorship: input.SupportsSponsorship,
		UserID:              userID,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	m.companies[c.ID] = c
	return c, nil
}

func (m *memoryRepo) List(ctx context.Context) ([]Company, error) {
	out := make([]Company, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, c)
	}
	return out, nil
}

func (m *memoryRepo) Get(ctx context.Context, id uuid.UUID) (Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return Company{}, ErrCompanyNotFound
	}
	return c, nil
}

func (m *memoryRepo) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	c, ok := m.companies[id]
	if !ok {
		return ErrCompanyNotFound
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.Country != nil {
		c.Country = *input.Country
	}
	if input.Website != nil {
		c.Website = *input.Website
	}
	if input.Linkedin != nil {
		c.Linkedin = input.Linkedin
	}
	if input.SupportsSponsorship != nil {
		c.SupportsSponsorship = *input.SupportsSponsorship
	}
	m.companies[id] = c
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.companies[id]; !ok {
		return ErrCompanyNotFound
	}
	delete(m.companies, id)
	return nil
}

func verifiedPrincipal() auth.Principal {
	return auth.Principal{ID: uuid.New(), Role: auth.RoleUser, IsVerified: true}
}

func TestCreateNormalizesCountry(t *testing.T) {
	repo := newMemoryRepo()
	service := NewService(repo)

	company, err := service.Create(context.Background(), CreateInput{
		Name:                "Acme",
		Description:         "Makes everything",
		Country:             "nl",
		Website:             "https://acme.example",
		SupportsSponsorship: SponsorshipYes,
	}, verifiedPrincipal())
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	if company.Country != "NL" {
		t.Fatalf("expected country uppercased, got %q", company.Country)
	}
}

func TestCreateRequiresVerifiedUser(t *testing.T) {
	service := NewService(newMemoryRepo())

	principal := verifiedPrincipal()
	principal.IsVerified = false

	_, err := service.Create(context.Background(), CreateInput{
		Name:    "Acme",
		Country: "NL",
	}, principal)
	if !errors.Is(err, auth.ErrNotVerified) {
		t.Fatalf("expected ErrNotVerified, got %v", err)
	}
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo := newMemoryRepo()
	service := NewService(repo)

	company, err := service.Create(context.Background(), CreateInput{
		Name:                "Acme",
		Description:         "Makes everything",
		Country:             "NL",
		Website:             "https://acme.example",
		SupportsSponsorship: SponsorshipUnknown,
	}, verifiedPrincipal())
	if err != nil {
		t.Fatalf("create company: %v", err)
	}

	newCountry := "de"
	newSupport := SponsorshipYes
	err = service.Update(context.Background(), company.ID, UpdateInput{
		Country:             &newCountry,
		SupportsSponsorship: &newSupport,
	})
	if err != nil {
		t.Fatalf("update company: %v", err)
	}

	updated, err := service.Get(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("get company: %v", err)
	}
	if updated.Country != "DE" {
		t.Fatalf("expected patched country uppercased, got %q", updated.Country)
	}
	if updated.SupportsSponsorship != SponsorshipYes {
		t.Fatalf("expected sponsorship patched, got %q", updated.SupportsSponsorship)
	}
	if updated.Name != "Acme" || updated.Description != "Makes everything" {
		t.Fatalf("untouched fields must survive a patch")
	}
}

func TestGetUnknownCompany(t *testing.T) {
	service := NewService(newMemoryRepo())

	if _, err := service.Get(context.Background(), uuid.New()); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestDeleteCompany(t *testing.T) {
	repo := newMemoryRepo()
	service := NewService(repo)

	company, err := service.Create(context.Background(), CreateInput{Name: "Acme", Country: "NL"}, verifiedPrincipal())
	if err != nil {
		t.Fatalf("create company: %v", err)
	}

	if err := service.Delete(context.Background(), company.ID); err != nil {
		t.Fatalf("delete company: %v", err)
	}
	if _, err := service.Get(context.Background(), company.ID); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected company to be gone, got %v", err)
	}
}
