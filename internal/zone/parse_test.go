package zone

import (
	"reflect"
	"testing"
)

const domain = "example.com"

func one(t *testing.T, set *RecordSet, typ RecordType) Record {
	t.Helper()
	recs := set.Records(typ)
	if len(recs) != 1 {
		t.Fatalf("expected 1 %s record, got %d", typ, len(recs))
	}
	return recs[0]
}

func TestParseARecord(t *testing.T) {
	set := Parse("www.example.com.\t3600\tIN\tA\t192.0.2.1\n", domain)

	rec := one(t, set, TypeA)
	if !rec.Valid {
		t.Fatalf("expected valid record")
	}
	if rec.Owner != "www" {
		t.Fatalf("expected owner www, got %q", rec.Owner)
	}
	if rec.TTL != "3600" {
		t.Fatalf("expected ttl 3600, got %q", rec.TTL)
	}
	if rec.Data != "192.0.2.1" {
		t.Fatalf("expected data 192.0.2.1, got %q", rec.Data)
	}
	if rec.Source != "www.example.com.\t3600\tIN\tA\t192.0.2.1" {
		t.Fatalf("source not preserved verbatim: %q", rec.Source)
	}
}

func TestParseShortALineInvalid(t *testing.T) {
	// Four fields: data is missing. Classified as A, flagged invalid.
	set := Parse("ftp.example.com.\t10\tIN\tA\n", domain)

	rec := one(t, set, TypeA)
	if rec.Valid {
		t.Fatalf("expected invalid record")
	}
	if set.ValidCount != 0 || set.InvalidCount != 1 {
		t.Fatalf("expected 0 valid / 1 invalid, got %d/%d", set.ValidCount, set.InvalidCount)
	}
}

func TestParseShortSpaceSeparatedALineInvalid(t *testing.T) {
	// The same truncated line arriving space-separated must classify as A
	// and flag invalid, not fall into the unclassified list.
	set := Parse("ftp.example.com. 10 IN A\n", domain)

	if rec := one(t, set, TypeA); rec.Valid {
		t.Fatalf("expected invalid record")
	}
	if len(set.Unclassified) != 0 {
		t.Fatalf("line must not be unclassified: %v", set.Unclassified)
	}
}

func TestParseCNAMEKeepsOwnerSuffix(t *testing.T) {
	set := Parse("blog.example.com.\t300\tIN\tCNAME\thosting.example.net.\n", domain)

	rec := one(t, set, TypeCNAME)
	if !rec.Valid {
		t.Fatalf("expected valid record")
	}
	if rec.Owner != "blog.example.com." {
		t.Fatalf("CNAME owner must keep the domain suffix, got %q", rec.Owner)
	}
	if rec.Data != "hosting.example.net." {
		t.Fatalf("unexpected target: %q", rec.Data)
	}
}

func TestParseMX(t *testing.T) {
	set := Parse("example.com.\t3600\tIN\tMX\t10\tmail.example.com.\n", domain)

	rec := one(t, set, TypeMX)
	if !rec.Valid {
		t.Fatalf("expected valid record")
	}
	if rec.Priority == nil || *rec.Priority != 10 {
		t.Fatalf("unexpected priority: %v", rec.Priority)
	}
	if rec.Data != "mail.example.com." {
		t.Fatalf("unexpected exchange: %q", rec.Data)
	}
}

func TestParseMXNonNumericPriorityStaysValid(t *testing.T) {
	// Validity depends only on field count and the marker field. A bad
	// priority leaves the typed field nil; the hosting API rejects it at
	// submission time, where the continue/abort gate handles it.
	set := Parse("example.com.\t3600\tIN\tMX\tten\tmail.example.com.\n", domain)

	rec := one(t, set, TypeMX)
	if !rec.Valid {
		t.Fatalf("expected valid record")
	}
	if rec.Priority != nil {
		t.Fatalf("expected nil priority, got %d", *rec.Priority)
	}
	if rec.Data != "mail.example.com." {
		t.Fatalf("unexpected exchange: %q", rec.Data)
	}
}

func TestParseSRVNonNumericFieldStaysValid(t *testing.T) {
	set := Parse("_sip._tcp.example.com.\t600\tIN\tSRV\tzero\t5\t5060\tsip.example.com.\n", domain)

	rec := one(t, set, TypeSRV)
	if !rec.Valid {
		t.Fatalf("expected valid record")
	}
	if rec.Priority != nil {
		t.Fatalf("expected nil priority, got %d", *rec.Priority)
	}
	if rec.Weight == nil || *rec.Weight != 5 || rec.Port == nil || *rec.Port != 5060 {
		t.Fatalf("numeric fields must still be parsed: %v %v", rec.Weight, rec.Port)
	}
}

func TestParseSRV(t *testing.T) {
	set := Parse("_sip._tcp.example.com.\t600\tIN\tSRV\t0\t5\t5060\tsip.example.com.\n", domain)

	rec := one(t, set, TypeSRV)
	if !rec.Valid {
		t.Fatalf("expected valid record")
	}
	if rec.Owner != "_sip._tcp" {
		t.Fatalf("unexpected owner: %q", rec.Owner)
	}
	if *rec.Priority != 0 || *rec.Weight != 5 || *rec.Port != 5060 {
		t.Fatalf("unexpected numeric fields: %d %d %d", *rec.Priority, *rec.Weight, *rec.Port)
	}
	if rec.Data != "sip.example.com." {
		t.Fatalf("unexpected target: %q", rec.Data)
	}
}

func TestParseTXTKeepsQuotedSpaces(t *testing.T) {
	set := Parse("example.com. 300 IN TXT \"v=spf1 include:_spf.example.com ~all\"\n", domain)

	rec := one(t, set, TypeTXT)
	if !rec.Valid {
		t.Fatalf("expected valid record")
	}
	if rec.Data != "v=spf1 include:_spf.example.com ~all" {
		t.Fatalf("quoted value mangled: %q", rec.Data)
	}
}

func TestParseTXTWithoutQuotesInvalid(t *testing.T) {
	// A failed pattern match must degrade to an invalid record like every
	// other malformed line, never a panic.
	set := Parse("example.com. 300 IN TXT v=spf1\n", domain)

	if rec := one(t, set, TypeTXT); rec.Valid {
		t.Fatalf("expected invalid record")
	}
}

func TestCommentsAndForeignLinesIgnored(t *testing.T) {
	text := "; <<>> DiG 9.18 <<>> AXFR example.com\n" +
		"other.org.\t300\tIN\tA\t192.0.2.9\n" +
		"\n" +
		"www.example.com.\t300\tIN\tA\t192.0.2.1\n"
	set := Parse(text, domain)

	if set.Considered != 1 {
		t.Fatalf("expected 1 considered line, got %d", set.Considered)
	}
	if len(set.Records(TypeA)) != 1 {
		t.Fatalf("expected 1 A record, got %d", len(set.Records(TypeA)))
	}
}

func TestUnclassifiedLineRecorded(t *testing.T) {
	set := Parse("example.com.\t300\tIN\tNS\tns1.example.net.\n", domain)

	if len(set.Unclassified) != 1 {
		t.Fatalf("expected 1 unclassified line, got %d", len(set.Unclassified))
	}
	if set.Unclassified[0] != "example.com. 300 IN NS ns1.example.net." {
		t.Fatalf("unexpected unclassified line: %q", set.Unclassified[0])
	}
	if set.ValidCount != 0 || set.InvalidCount != 0 {
		t.Fatalf("unclassified lines must not touch record counters")
	}
}

func TestCountsInvariant(t *testing.T) {
	text := "www.example.com.\t300\tIN\tA\t192.0.2.1\n" +
		"ftp.example.com.\t10\tIN\tA\n" +
		"example.com.\t300\tIN\tNS\tns1.example.net.\n" +
		"example.com.\t3600\tIN\tMX\t10\tmail.example.com.\n"
	set := Parse(text, domain)

	got := set.ValidCount + set.InvalidCount + len(set.Unclassified)
	if got != set.Considered {
		t.Fatalf("valid+invalid+unclassified = %d, considered = %d", got, set.Considered)
	}
}

func TestParseDeterministic(t *testing.T) {
	text := "example.com.\t3600\tIN\tMX\t10\tmail.example.com.\n" +
		"www.example.com.\t300\tIN\tA\t192.0.2.1\n" +
		"www.example.com.\t300\tIN\tA\t192.0.2.1\n"

	a, b := Parse(text, domain), Parse(text, domain)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("reparsing the same text produced a different result")
	}
	if !reflect.DeepEqual(a.Types(), []RecordType{TypeMX, TypeA}) {
		t.Fatalf("expected first-seen type order [MX A], got %v", a.Types())
	}
	if len(a.Records(TypeA)) != 2 {
		t.Fatalf("duplicate lines must produce duplicate records")
	}
}
