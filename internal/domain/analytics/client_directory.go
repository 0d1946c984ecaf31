package analytics

import (
	"time"

	"mutual_cartera/internal/domain/entities"
)

// ClientAttributes are the client fields the aggregations need.
type ClientAttributes struct {
	FullName  string
	BirthDate *time.Time
}

// ClientDirectory resolves a CUIT to its client attributes.
type ClientDirectory interface {
	Lookup(cuit string) (ClientAttributes, bool)
}

// ClientCache is an in-memory ClientDirectory keyed by CUIT.
type ClientCache map[string]ClientAttributes

var _ ClientDirectory = ClientCache(nil)

func NewClientCache(clients []entities.Client) ClientCache {
	cache := make(ClientCache, len(clients))
	for _, c := range clients {
		cache[c.CUIT] = ClientAttributes{FullName: c.FullName, BirthDate: c.BirthDate}
	}
	return cache
}

func (c ClientCache) Lookup(cuit string) (ClientAttributes, bool) {
	attrs, ok := c[cuit]
	return attrs, ok
}

// resolveClient prefers the directory and falls back to the attributes
// denormalized on the installment.
func resolveClient(dir ClientDirectory, inst entities.Installment) ClientAttributes {
	attrs := ClientAttributes{FullName: inst.ClientName, BirthDate: inst.ClientBirthDate}
	if dir == nil {
		return attrs
	}
	found, ok := dir.Lookup(inst.ClientCUIT)
	if !ok {
		return attrs
	}
	if found.FullName != "" {
		attrs.FullName = found.FullName
	}
	if found.BirthDate != nil {
		attrs.BirthDate = found.BirthDate
	}
	return attrs
}

func displayName(attrs ClientAttributes, cuit string) string {
	if attrs.FullName != "" {
		return attrs.FullName
	}
	return "CUIT " + cuit
}
