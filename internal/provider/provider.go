// Package provider defines the seam between the submission controller and
// the DNS hosting APIs records are migrated into.
package provider

import (
	"context"

	"zonemigrate/internal/zone"
)

type CreateStatus string

const (
	CreateStatusSuccess CreateStatus = "success"
	CreateStatusFail    CreateStatus = "fail"
)

// Client creates records against one DNS hosting API. The migration is
// create-only: existing records are never looked up, updated, or deleted.
type Client interface {
	CreateRecord(ctx context.Context, domain string, record zone.Record) (CreateStatus, error)
	SupportsRecordType(t zone.RecordType) bool
}
