// Package dnspodclient submits records to Tencent Cloud DNSPod, the
// secondary migration target.
package dnspodclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"zonemigrate/internal/provider"
	"zonemigrate/internal/zone"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/errors"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	dnspod "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/dnspod/v20210323"
)

type NewOptions struct {
	SecretID   string
	SecretKey  string
	Region     string // empty: ap-guangzhou
	RecordLine string // empty: 默认
}

type client struct {
	sdk  *dnspod.Client
	line string
}

type Error struct {
	Code    string
	Message string
}

func (e Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func New(opt NewOptions) (provider.Client, error) {
	if opt.SecretID == "" || opt.SecretKey == "" {
		return nil, fmt.Errorf("missing credentials")
	}
	if opt.Region == "" {
		opt.Region = "ap-guangzhou"
	}
	if opt.RecordLine == "" {
		opt.RecordLine = "默认"
	}

	cred := common.NewCredential(opt.SecretID, opt.SecretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "dnspod.tencentcloudapi.com"
	sdk, err := dnspod.NewClient(cred, opt.Region, cpf)
	if err != nil {
		return nil, fmt.Errorf("create dnspod client: %w", err)
	}
	return &client{sdk: sdk, line: opt.RecordLine}, nil
}

func (c *client) SupportsRecordType(t zone.RecordType) bool {
	switch t {
	case zone.TypeA, zone.TypeCNAME, zone.TypeMX, zone.TypeTXT, zone.TypeSRV:
		return true
	default:
		return false
	}
}

func (c *client) CreateRecord(ctx context.Context, domain string, record zone.Record) (provider.CreateStatus, error) {
	domain = strings.TrimSuffix(domain, ".")

	req := dnspod.NewCreateRecordRequest()
	req.Domain = common.StringPtr(domain)
	req.RecordType = common.StringPtr(string(record.Type))
	req.RecordLine = common.StringPtr(c.line)
	req.SubDomain = common.StringPtr(subDomain(record.Owner, domain))
	req.Value = common.StringPtr(recordValue(record))
	if ttl, err := strconv.ParseUint(record.TTL, 10, 64); err == nil {
		req.TTL = common.Uint64Ptr(ttl)
	}
	if record.Type == zone.TypeMX && record.Priority != nil {
		req.MX = common.Uint64Ptr(*record.Priority)
	}
	if ctx != nil {
		req.SetContext(ctx)
	}

	if _, err := c.sdk.CreateRecord(req); err != nil {
		if sdkErr, ok := err.(*errors.TencentCloudSDKError); ok {
			return provider.CreateStatusFail, Error{Code: sdkErr.Code, Message: sdkErr.Message}
		}
		return provider.CreateStatusFail, err
	}
	return provider.CreateStatusSuccess, nil
}

// recordValue renders the DNSPod value field: SRV wants the full
// "priority weight port target" string, everything else the plain data.
func recordValue(record zone.Record) string {
	if record.Type == zone.TypeSRV && record.Priority != nil && record.Weight != nil && record.Port != nil {
		return fmt.Sprintf("%d %d %d %s", *record.Priority, *record.Weight, *record.Port, record.Data)
	}
	return record.Data
}

// subDomain converts a parsed owner (suffix-stripped for most types,
// absolute for CNAME and apex owners) to DNSPod's relative form.
func subDomain(owner, domain string) string {
	name := strings.TrimSuffix(owner, ".")
	if name == domain || name == "" {
		return "@"
	}
	if sub := strings.TrimSuffix(name, "."+domain); sub != name {
		return sub
	}
	return name
}
