// Package transfer obtains the raw zone text for a domain. Both sources
// buffer the producer's complete output before returning; parsing never
// starts on a partial stream.
package transfer

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// AXFR performs an in-process zone transfer against the nameserver and
// returns the zone text, one record per line in standard presentation
// format.
func AXFR(domain, nameserver string, timeout time.Duration) (string, error) {
	m := new(dns.Msg)
	m.SetAxfr(dns.Fqdn(domain))

	t := &dns.Transfer{DialTimeout: timeout, ReadTimeout: timeout, WriteTimeout: timeout}
	env, err := t.In(m, hostPort(nameserver))
	if err != nil {
		return "", fmt.Errorf("axfr %s from %s: %w", domain, nameserver, err)
	}

	var b strings.Builder
	for e := range env {
		if e.Error != nil {
			return "", fmt.Errorf("axfr %s envelope from %s: %w", domain, nameserver, e.Error)
		}
		for _, rr := range e.RR {
			b.WriteString(rr.String())
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func hostPort(nameserver string) string {
	if _, _, err := net.SplitHostPort(nameserver); err == nil {
		return nameserver
	}
	return net.JoinHostPort(nameserver, "53")
}
