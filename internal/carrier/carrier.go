package carrier

import (
	"errors"
	"strconv"
	"strings"
)

type Carrier string

const (
	None         Carrier = ""
	Shein        Carrier = "SHEIN"
	Shopee       Carrier = "Shopee"
	MercadoLivre Carrier = "Mercado Livre"

	// Invoice marks a fiscal document (nota fiscal) barcode. It is never a
	// valid package carrier.
	Invoice Carrier = "Nota Fiscal"
)

var ErrUnknownCarrier = errors.New("unknown carrier")

// All is the configured carrier set in the order operators see it.
var All = []Carrier{Shein, Shopee, MercadoLivre}

func (c Carrier) String() string {
	if c == None {
		return "none"
	}
	return string(c)
}

func (c Carrier) IsSelected() bool {
	return c != None
}

// Registry is the set of carriers enabled for a session.
type Registry struct {
	carriers []Carrier
}

func NewRegistry(names []string) (*Registry, error) {
	if len(names) == 0 {
		return &Registry{carriers: append([]Carrier(nil), All...)}, nil
	}

	r := &Registry{}
	for _, name := range names {
		c, err := lookup(All, name)
		if err != nil {
			return nil, err
		}
		r.carriers = append(r.carriers, c)
	}
	return r, nil
}

func (r *Registry) Carriers() []Carrier {
	return append([]Carrier(nil), r.carriers...)
}

func (r *Registry) Contains(c Carrier) bool {
	for _, known := range r.carriers {
		if known == c {
			return true
		}
	}
	return false
}

// Parse accepts a carrier name (case-insensitive) or its 1-based position in
// the registry.
func (r *Registry) Parse(s string) (Carrier, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(r.carriers) {
			return None, ErrUnknownCarrier
		}
		return r.carriers[n-1], nil
	}
	return lookup(r.carriers, s)
}

func lookup(set []Carrier, name string) (Carrier, error) {
	name = strings.TrimSpace(name)
	for _, c := range set {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return None, ErrUnknownCarrier
}
