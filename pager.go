package dribbble

import "github.com/florianilch/dribbble-go/wire"

// Pager selects a page of a list endpoint. Zero fields are omitted from the
// query, deferring to the remote defaults. The library does not validate the
// values; the remote service owns that contract.
type Pager struct {
	Page    int
	PerPage int
}

func (p Pager) payload() wire.Payload {
	return wire.Payload{
		"page":    p.Page,
		"perPage": p.PerPage,
	}
}
