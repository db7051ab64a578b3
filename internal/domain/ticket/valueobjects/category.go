package valueobjects

import "fmt"

type Category string

const (
	CategoryBooking       Category = "booking"
	CategoryInstallation  Category = "installation"
	CategoryPayment       Category = "payment"
	CategoryAccount       Category = "account"
	CategoryRetailPartner Category = "retail_partner"
	CategoryOther         Category = "other"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBooking, CategoryInstallation, CategoryPayment,
		CategoryAccount, CategoryRetailPartner, CategoryOther:
		return true
	}
	return false
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
