package order

import (
	"errors"

	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an Address that was not
// created via NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping destination embedded in an order.
// It is an immutable value object captured at order creation; later changes
// to the buyer's profile never affect existing orders.
type Address struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	address1  string
	address2  string
	city      string
	state     string
	zip       string
	country   string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated shipping address.
// Recipient name, first address line, city, zip, and country are required;
// the second address line and state are optional.
func NewAddress(firstName, lastName, address1, address2, city, state, zip, country string) (Address, error) {
	address := Address{
		address2: address2,
		state:    state,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setFirstName(firstName),
		address.setLastName(lastName),
		address.setAddress1(address1),
		address.setCity(city),
		address.setZip(zip),
		address.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// FirstName returns the recipient's first name.
func (a Address) FirstName() string {
	return a.firstName
}

// LastName returns the recipient's last name.
func (a Address) LastName() string {
	return a.lastName
}

// Address1 returns the first address line.
func (a Address) Address1() string {
	return a.address1
}

// Address2 returns the optional second address line.
func (a Address) Address2() string {
	return a.address2
}

// City returns the destination city.
func (a Address) City() string {
	return a.city
}

// State returns the optional state or province.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code.
func (a Address) Zip() string {
	return a.zip
}

// Country returns the destination country.
func (a Address) Country() string {
	return a.country
}

func (a *Address) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	a.firstName = firstName
	return nil
}

func (a *Address) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	a.lastName = lastName
	return nil
}

func (a *Address) setAddress1(address1 string) error {
	if address1 == "" {
		return errs.NewValueIsRequiredError("address1")
	}
	a.address1 = address1
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setZip(zip string) error {
	if zip == "" {
		return errs.NewValueIsRequiredError("zip")
	}
	a.zip = zip
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
