package services

import (
	"context"

	"buyfish/models"
	"buyfish/shopapi"
)

// AddressBook handles the address CRUD that feeds checkout. Saving is an
// explicit two-variant operation: create, or update keyed by the id of the
// address being edited.
type AddressBook struct {
	client *shopapi.Client
	userID string
}

func NewAddressBook(client *shopapi.Client, userID string) *AddressBook {
	return &AddressBook{client: client, userID: userID}
}

func (b *AddressBook) List(ctx context.Context) ([]models.Address, error) {
	return b.client.GetAddresses(ctx, b.userID)
}

// Save creates a new address when editingID is empty, otherwise updates the
// address with that id.
func (b *AddressBook) Save(ctx context.Context, editingID string, fields models.AddressFields) (*models.Address, error) {
	if editingID == "" {
		return b.client.AddAddress(ctx, b.userID, fields)
	}

	if err := b.client.UpdateAddress(ctx, b.userID, editingID, fields); err != nil {
		return nil, err
	}
	return &models.Address{
		ID:      editingID,
		UserID:  b.userID,
		Address: fields.Address,
		City:    fields.City,
		Pincode: fields.Pincode,
		Phone:   fields.Phone,
		Notes:   fields.Notes,
	}, nil
}

func (b *AddressBook) Delete(ctx context.Context, addressID string) error {
	return b.client.DeleteAddress(ctx, b.userID, addressID)
}

// Find resolves one saved address by id.
func (b *AddressBook) Find(ctx context.Context, addressID string) (*models.Address, error) {
	addresses, err := b.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range addresses {
		if addresses[i].ID == addressID {
			return &addresses[i], nil
		}
	}
	return nil, nil
}
