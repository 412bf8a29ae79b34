package digitalocean

import (
	"strconv"

	"zonemigrate/internal/zone"
)

// createBody maps one record to the API's JSON payload. A and SRV carry
// explicit nulls for the unused fields the protocol expects to be present.
func createBody(record zone.Record) map[string]any {
	body := map[string]any{
		"type": string(record.Type),
		"name": record.Owner,
		"data": record.Data,
		"ttl":  ttlValue(record.TTL),
	}

	switch record.Type {
	case zone.TypeA:
		body["priority"] = nil
		body["port"] = nil
		body["weight"] = nil
		body["flags"] = nil
		body["tag"] = nil
	case zone.TypeMX:
		body["priority"] = deref(record.Priority)
	case zone.TypeSRV:
		body["priority"] = deref(record.Priority)
		body["port"] = deref(record.Port)
		body["weight"] = deref(record.Weight)
		body["flags"] = nil
		body["tag"] = nil
	}

	return body
}

// ttlValue sends numeric TTLs as integers; anything else passes through as
// the raw string for the API to judge.
func ttlValue(ttl string) any {
	if n, err := strconv.Atoi(ttl); err == nil {
		return n
	}
	return ttl
}

func deref(p *uint64) any {
	if p == nil {
		return nil
	}
	return *p
}
