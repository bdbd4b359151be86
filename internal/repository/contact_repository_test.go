package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
)

func countPrincipals(contacts []domain.Contact) int {
	n := 0
	for _, c := range contacts {
		if c.Principal {
			n++
		}
	}
	return n
}

func TestContactRepository_FirstContactBecomesPrincipal(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	contact := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindPhone,
		Value:     "61 99999-0001",
	}
	require.NoError(t, repo.Create(ctx, contact))

	contacts, err := repo.ListByOwner(ctx, domain.ContactOwnerClient, ownerID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Principal)
}

func TestContactRepository_SettingPrincipalUnsetsOthers(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	first := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindPhone,
		Value:     "61 99999-0001",
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindWhatsApp,
		Value:     "61 99999-0002",
	}
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.SetPrincipal(ctx, second.ID))

	contacts, err := repo.ListByOwner(ctx, domain.ContactOwnerClient, ownerID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, 1, countPrincipals(contacts))
	assert.False(t, contacts[0].Principal)
	assert.True(t, contacts[1].Principal)
}

func TestContactRepository_CreatePrincipalDemotesExisting(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	first := &domain.Contact{
		OwnerType: domain.ContactOwnerTechnician,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindPhone,
		Value:     "61 99999-0001",
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.Contact{
		OwnerType: domain.ContactOwnerTechnician,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindEmail,
		Value:     "tecnico@example.com",
		Principal: true,
	}
	require.NoError(t, repo.Create(ctx, second))

	contacts, err := repo.ListByOwner(ctx, domain.ContactOwnerTechnician, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 1, countPrincipals(contacts))
	assert.True(t, contacts[1].Principal)
}

func TestContactRepository_DeletingPrincipalPromotesFirstRemaining(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	first := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindPhone,
		Value:     "61 99999-0001",
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindWhatsApp,
		Value:     "61 99999-0002",
	}
	require.NoError(t, repo.Create(ctx, second))

	// first is principal; deleting it must promote second
	require.NoError(t, repo.Delete(ctx, first.ID))

	contacts, err := repo.ListByOwner(ctx, domain.ContactOwnerClient, ownerID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Principal)
	assert.Equal(t, second.ID, contacts[0].ID)
}

func TestContactRepository_DeletingOnlyContact(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	only := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindPhone,
		Value:     "61 99999-0001",
	}
	require.NoError(t, repo.Create(ctx, only))

	// the principal is deleted and there is nobody left to promote
	require.NoError(t, repo.Delete(ctx, only.ID))

	contacts, err := repo.ListByOwner(ctx, domain.ContactOwnerClient, ownerID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactRepository_DeletingNonPrincipalKeepsPrincipal(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	first := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindPhone,
		Value:     "61 99999-0001",
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerID,
		Kind:      domain.ContactKindEmail,
		Value:     "cliente@example.com",
	}
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Delete(ctx, second.ID))

	contacts, err := repo.ListByOwner(ctx, domain.ContactOwnerClient, ownerID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Principal)
	assert.Equal(t, first.ID, contacts[0].ID)
}

func TestContactRepository_OwnersAreIsolated(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()

	forA := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerA,
		Kind:      domain.ContactKindPhone,
		Value:     "61 99999-0001",
	}
	require.NoError(t, repo.Create(ctx, forA))

	forB := &domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   ownerB,
		Kind:      domain.ContactKindPhone,
		Value:     "61 99999-0002",
		Principal: true,
	}
	require.NoError(t, repo.Create(ctx, forB))

	contactsA, err := repo.ListByOwner(ctx, domain.ContactOwnerClient, ownerA)
	require.NoError(t, err)
	assert.True(t, contactsA[0].Principal, "another owner's principal must not demote this one")
}
