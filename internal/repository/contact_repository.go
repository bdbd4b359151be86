package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListByOwner returns an owner's contacts in list order.
func (r *ContactRepository) ListByOwner(ctx context.Context, ownerType domain.ContactOwnerType, ownerID uuid.UUID) ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("position ASC").
		Find(&contacts).Error
	return contacts, err
}

// Create appends a contact at the end of the owner's list. When the new
// contact is flagged principal, any existing principal on the same
// owner is unset first so the owner keeps at most one.
func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int
		row := tx.Model(&domain.Contact{}).
			Where("owner_type = ? AND owner_id = ?", contact.OwnerType, contact.OwnerID).
			Select("COALESCE(MAX(position), -1)").
			Row()
		if err := row.Scan(&maxPos); err != nil {
			return err
		}
		contact.Position = maxPos + 1

		if contact.Principal {
			if err := clearPrincipal(tx, contact.OwnerType, contact.OwnerID); err != nil {
				return err
			}
		} else if maxPos < 0 {
			// the first contact on an owner is always principal
			contact.Principal = true
		}

		return tx.Create(contact).Error
	})
}

// Update saves contact changes. Promoting a contact to principal
// demotes the owner's previous principal in the same transaction.
func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if contact.Principal {
			if err := clearPrincipal(tx, contact.OwnerType, contact.OwnerID); err != nil {
				return err
			}
		}
		return tx.Save(contact).Error
	})
}

// SetPrincipal makes the given contact the owner's single principal.
func (r *ContactRepository) SetPrincipal(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contact domain.Contact
		if err := tx.First(&contact, "id = ?", id).Error; err != nil {
			return err
		}
		if err := clearPrincipal(tx, contact.OwnerType, contact.OwnerID); err != nil {
			return err
		}
		return tx.Model(&domain.Contact{}).
			Where("id = ?", id).
			Update("principal", true).Error
	})
}

// Delete removes a contact. When the removed contact was the owner's
// principal, the first remaining contact (if any) is promoted.
func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contact domain.Contact
		if err := tx.First(&contact, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&domain.Contact{}, "id = ?", id).Error; err != nil {
			return err
		}

		if !contact.Principal {
			return nil
		}

		var first domain.Contact
		err := tx.Where("owner_type = ? AND owner_id = ?", contact.OwnerType, contact.OwnerID).
			Order("position ASC").
			First(&first).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Model(&domain.Contact{}).
			Where("id = ?", first.ID).
			Update("principal", true).Error
	})
}

func clearPrincipal(tx *gorm.DB, ownerType domain.ContactOwnerType, ownerID uuid.UUID) error {
	return tx.Model(&domain.Contact{}).
		Where("owner_type = ? AND owner_id = ? AND principal = ?", ownerType, ownerID, true).
		Update("principal", false).Error
}
