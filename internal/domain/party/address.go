package party

import (
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AddressLabel tags the purpose of an address
type AddressLabel string

const (
	AddressLabelFiscal   AddressLabel = "fiscal"
	AddressLabelShipping AddressLabel = "shipping"
	AddressLabelOther    AddressLabel = "other"
)

// IsValid checks if the label is a valid AddressLabel
func (l AddressLabel) IsValid() bool {
	switch l {
	case AddressLabelFiscal, AddressLabelShipping, AddressLabelOther:
		return true
	}
	return false
}

// String returns the string representation of AddressLabel
func (l AddressLabel) String() string {
	return string(l)
}

// Address belongs to exactly one Party. A party may own any number of
// addresses, including several with the same label; the address carries
// no tenant column and inherits its scope from the owning party.
type Address struct {
	shared.BaseEntity
	PartyID    uuid.UUID
	Label      AddressLabel
	Street     string
	PostalCode string
	City       string
	Province   string
	Country    string
}

// NewAddress creates a new address for a party
func NewAddress(partyID uuid.UUID, label AddressLabel, street, postalCode, city, province, country string) (*Address, error) {
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}
	if !label.IsValid() {
		return nil, shared.NewDomainError("INVALID_LABEL", "Address label must be 'fiscal', 'shipping' or 'other'")
	}
	if err := validateAddressFields(street, postalCode, city, province, country); err != nil {
		return nil, err
	}

	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		PartyID:    partyID,
		Label:      label,
		Street:     street,
		PostalCode: postalCode,
		City:       city,
		Province:   province,
		Country:    country,
	}, nil
}

// Relabel changes the address purpose label
func (a *Address) Relabel(label AddressLabel) error {
	if !label.IsValid() {
		return shared.NewDomainError("INVALID_LABEL", "Address label must be 'fiscal', 'shipping' or 'other'")
	}

	a.Label = label
	a.UpdatedAt = time.Now()

	return nil
}

// Update replaces the location fields of the address
func (a *Address) Update(street, postalCode, city, province, country string) error {
	if err := validateAddressFields(street, postalCode, city, province, country); err != nil {
		return err
	}

	a.Street = street
	a.PostalCode = postalCode
	a.City = city
	a.Province = province
	a.Country = country
	a.UpdatedAt = time.Now()

	return nil
}

func validateAddressFields(street, postalCode, city, province, country string) error {
	if street != "" && len(street) > 500 {
		return shared.NewDomainError("INVALID_STREET", "Street cannot exceed 500 characters")
	}
	if postalCode != "" && len(postalCode) > 20 {
		return shared.NewDomainError("INVALID_POSTAL_CODE", "Postal code cannot exceed 20 characters")
	}
	if city != "" && len(city) > 100 {
		return shared.NewDomainError("INVALID_CITY", "City cannot exceed 100 characters")
	}
	if province != "" && len(province) > 100 {
		return shared.NewDomainError("INVALID_PROVINCE", "Province cannot exceed 100 characters")
	}
	if country != "" && len(country) > 100 {
		return shared.NewDomainError("INVALID_COUNTRY", "Country cannot exceed 100 characters")
	}
	return nil
}
