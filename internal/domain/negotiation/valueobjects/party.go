package valueobjects

import "fmt"

// Party is the side of a booking that authored a proposal.
type Party string

const (
	PartyCustomer  Party = "customer"
	PartyInstaller Party = "installer"
)

func (p Party) String() string {
	return string(p)
}

func (p Party) IsValid() bool {
	return p == PartyCustomer || p == PartyInstaller
}

// Counterparty is the only side allowed to answer a proposal authored by p.
func (p Party) Counterparty() Party {
	if p == PartyCustomer {
		return PartyInstaller
	}
	return PartyCustomer
}

func NewParty(s string) (Party, error) {
	p := Party(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid party: %s", s)
	}
	return p, nil
}
