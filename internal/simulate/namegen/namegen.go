// Package namegen provides display-name generation for seeding the
// dataset with plausible company and carrier names.
package namegen

import "fmt"

// Source is the random stream the namer draws from.
type Source interface {
	Intn(n int) int
}

// Namer generates company and carrier display names.
type Namer struct {
	rng Source
}

// New creates a Namer with the given random source.
func New(rng Source) *Namer {
	return &Namer{rng: rng}
}

// Company generates a customer company name like "Harborview Trading Group".
func (n *Namer) Company() string {
	place := companyPlaces[n.rng.Intn(len(companyPlaces))]
	trade := companyTrades[n.rng.Intn(len(companyTrades))]
	suffix := companySuffixes[n.rng.Intn(len(companySuffixes))]
	return fmt.Sprintf("%s %s %s", place, trade, suffix)
}

// Carrier generates a carrier name like "Blue Ridge Freight Lines".
func (n *Namer) Carrier() string {
	mark := carrierMarks[n.rng.Intn(len(carrierMarks))]
	kind := carrierKinds[n.rng.Intn(len(carrierKinds))]
	return fmt.Sprintf("%s %s", mark, kind)
}
