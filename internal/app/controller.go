// Package app drives one migration run: report, confirmation gate, then
// serialized record creation with a fresh gate after every failure.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"zonemigrate/internal/provider"
	"zonemigrate/internal/zone"
)

// ErrAborted is returned when the operator declines a confirmation gate.
// Only the cmd layer maps it to a process exit code.
var ErrAborted = errors.New("aborted by operator")

const confirmQuestion = "Type 'yes' to continue"

// Prompter collects the operator's answer at a confirmation gate.
type Prompter interface {
	Confirm(question string) (bool, error)
}

type Controller struct {
	client provider.Client
	prompt Prompter
	out    io.Writer
}

func NewController(client provider.Client, prompt Prompter, out io.Writer) *Controller {
	return &Controller{client: client, prompt: prompt, out: out}
}

// Run submits every valid record of the set, one create call at a time.
// Nothing is sent before the operator confirms the report, and each failed
// create re-opens the same gate: a non-affirmative answer aborts the whole
// run immediately, leaving already-created records in place.
func (c *Controller) Run(ctx context.Context, domain string, set *zone.RecordSet) error {
	PrintReport(c.out, set)

	ok, err := c.prompt.Confirm("Create these records on " + domain + "? " + confirmQuestion)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}

	for _, t := range set.Types() {
		for _, rec := range set.Records(t) {
			if !rec.Valid {
				fmt.Fprintf(c.out, "[%s] skipping invalid record: %s\n", t, rec.Source)
				continue
			}
			if !c.client.SupportsRecordType(t) {
				fmt.Fprintf(c.out, "[%s] skipping unsupported record type: %s\n", t, rec.Source)
				continue
			}

			status, err := c.client.CreateRecord(ctx, domain, c.withFlooredTTL(rec))
			if err == nil && status == provider.CreateStatusSuccess {
				fmt.Fprintf(c.out, "[%s] created %s\n", t, rec.Owner)
				continue
			}
			if err == nil {
				err = fmt.Errorf("unexpected create status: %s", status)
			}

			fmt.Fprintf(c.out, "[%s] create failed: %s\n", t, err.Error())
			fmt.Fprintf(c.out, "    %s\n", rec.Source)
			ok, perr := c.prompt.Confirm("Continue with the remaining records? " + confirmQuestion)
			if perr != nil {
				return perr
			}
			if !ok {
				return ErrAborted
			}
		}
	}

	fmt.Fprintln(c.out, "migration complete")
	return nil
}

// withFlooredTTL applies the provider's TTL floor while building the
// submission, warning with the offending value when clamped.
func (c *Controller) withFlooredTTL(rec zone.Record) zone.Record {
	ttl, clamped := zone.FloorTTL(rec.TTL)
	if clamped {
		fmt.Fprintf(c.out, "    ttl %s is below the minimum, raising to %s\n", rec.TTL, ttl)
	} else if _, err := strconv.Atoi(ttl); err != nil {
		fmt.Fprintf(c.out, "    warning: non-numeric ttl %q passed through unchanged\n", ttl)
	}
	rec.TTL = ttl
	return rec
}
