package zone

import (
	"regexp"
	"strconv"
	"strings"
)

// TXT data is captured from the whole line rather than by splitting, so
// spaces inside the quoted value survive.
var txtPattern = regexp.MustCompile(` IN TXT "(.*)"`)

// parseLine applies the type's field rules to a classified line and returns
// exactly one record, valid or not. Field positions: owner 0, TTL 1, class
// 2, type 3, data from 4 on.
func parseLine(t RecordType, raw, normalized, domain string) Record {
	fields := strings.Fields(normalized)
	rec := Record{Type: t, Source: raw}

	switch t {
	case TypeA:
		if len(fields) == 5 && fields[3] == "A" {
			rec.Valid = true
			rec.Owner = stripOwner(fields[0], domain)
			rec.TTL = fields[1]
			rec.Data = fields[4]
		}

	case TypeCNAME:
		if len(fields) == 5 && fields[3] == "CNAME" {
			rec.Valid = true
			// Owner suffix is intentionally not stripped for CNAME.
			rec.Owner = fields[0]
			rec.TTL = fields[1]
			rec.Data = fields[4]
		}

	case TypeMX:
		if len(fields) == 6 && fields[3] == "MX" {
			rec.Valid = true
			rec.Owner = stripOwner(fields[0], domain)
			rec.TTL = fields[1]
			rec.Priority = parseUint(fields[4])
			rec.Data = fields[5]
		}

	case TypeSRV:
		if len(fields) == 8 && fields[3] == "SRV" {
			rec.Valid = true
			rec.Owner = stripOwner(fields[0], domain)
			rec.TTL = fields[1]
			rec.Priority = parseUint(fields[4])
			rec.Weight = parseUint(fields[5])
			rec.Port = parseUint(fields[6])
			rec.Data = fields[7]
		}

	case TypeTXT:
		// A non-matching pattern yields an invalid record, same as a
		// malformed line of any other type.
		m := txtPattern.FindStringSubmatch(normalized)
		if m != nil && m[1] != "" && len(fields) > 3 && fields[3] != "" {
			rec.Valid = true
			rec.Owner = stripOwner(fields[0], domain)
			rec.TTL = fields[1]
			rec.Data = m[1]
		}
	}

	return rec
}

// parseUint converts a numeric field position best-effort. Validity depends
// only on field count and the marker field, so a non-numeric value leaves
// the typed field nil and the hosting API judges it at submission time.
func parseUint(s string) *uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// stripOwner removes the trailing ".<domain>." suffix so the owner is
// relative to the zone apex. Apex owners keep their absolute form.
func stripOwner(owner, domain string) string {
	return strings.TrimSuffix(owner, "."+strings.TrimSuffix(domain, ".")+".")
}
