package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"zonemigrate/internal/config"
	"zonemigrate/internal/digitalocean"
	"zonemigrate/internal/dnspodclient"
	"zonemigrate/internal/provider"
	"zonemigrate/internal/transfer"
	"zonemigrate/internal/ui"
)

// runOptions gathers everything one run needs. Precedence: flag > config
// file > environment > prompt.
type runOptions struct {
	configPath   string
	domain       string
	nameserver   string
	providerName string
	transferMode string
	timeout      time.Duration

	doToken string

	dpSecretID   string
	dpSecretKey  string
	dpRegion     string
	dpRecordLine string
}

func (o *runOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", "", "Path to YAML run config (optional)")
	cmd.Flags().StringVar(&o.domain, "domain", "", "Domain to migrate (empty: prompt)")
	cmd.Flags().StringVar(&o.nameserver, "nameserver", "", "Authoritative nameserver to transfer from (empty: prompt)")
	cmd.Flags().StringVar(&o.transferMode, "transfer", "", "Zone transfer mechanism: axfr|dig (default axfr)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 30*time.Second, "Zone transfer timeout")
}

func (o *runOptions) registerProvider(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.providerName, "provider", "", "Target provider: digitalocean|dnspod (default digitalocean)")
	cmd.Flags().StringVar(&o.doToken, "token", "", "DigitalOcean api token (empty: env DIGITALOCEAN_TOKEN, then prompt)")
	cmd.Flags().StringVar(&o.dpSecretID, "dnspod-secret-id", "", "DNSPod secret id (empty: env DNSPOD_SECRET_ID)")
	cmd.Flags().StringVar(&o.dpSecretKey, "dnspod-secret-key", "", "DNSPod secret key (empty: env DNSPOD_SECRET_KEY)")
	cmd.Flags().StringVar(&o.dpRegion, "dnspod-region", "", "TencentCloud region (default ap-guangzhou)")
	cmd.Flags().StringVar(&o.dpRecordLine, "dnspod-record-line", "", "DNSPod record line")
}

// resolve fills zone settings from config file and prompts. The provider
// credential is resolved separately so the plan command never asks for one.
func (o *runOptions) resolve(prompt *ui.StdinPrompter) error {
	var cfg config.RunConfig
	if o.configPath != "" {
		var err error
		cfg, err = config.LoadFile(o.configPath)
		if err != nil {
			return err
		}
	}

	if o.domain == "" {
		o.domain = cfg.Domain
	}
	if o.nameserver == "" {
		o.nameserver = cfg.Nameserver
	}
	if o.providerName == "" {
		o.providerName = cfg.Provider
	}
	if o.transferMode == "" {
		o.transferMode = cfg.Transfer
	}
	if o.doToken == "" {
		o.doToken = cfg.DigitalOcean.Token
	}
	if o.dpSecretID == "" {
		o.dpSecretID = cfg.DNSPod.SecretID
	}
	if o.dpSecretKey == "" {
		o.dpSecretKey = cfg.DNSPod.SecretKey
	}
	if o.dpRegion == "" {
		o.dpRegion = cfg.DNSPod.Region
	}
	if o.dpRecordLine == "" {
		o.dpRecordLine = cfg.DNSPod.RecordLine
	}

	var err error
	if o.domain == "" {
		if o.domain, err = prompt.Ask("Domain to migrate"); err != nil {
			return err
		}
	}
	o.domain = strings.TrimSuffix(strings.TrimSpace(o.domain), ".")
	if o.domain == "" {
		return fmt.Errorf("domain is required")
	}

	if o.nameserver == "" {
		if o.nameserver, err = prompt.Ask("Authoritative nameserver"); err != nil {
			return err
		}
	}
	o.nameserver = strings.TrimSpace(o.nameserver)
	if o.nameserver == "" {
		return fmt.Errorf("nameserver is required")
	}
	return nil
}

// fetchZone obtains the complete transfer text through the selected
// mechanism.
func (o *runOptions) fetchZone(ctx context.Context) (string, error) {
	switch strings.ToLower(strings.TrimSpace(o.transferMode)) {
	case "", "axfr":
		return transfer.AXFR(o.domain, o.nameserver, o.timeout)
	case "dig":
		ctx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()
		return transfer.Dig(ctx, o.domain, o.nameserver)
	default:
		return "", fmt.Errorf("unsupported transfer mechanism: %s", o.transferMode)
	}
}

// buildClient constructs the target provider client, prompting for the
// DigitalOcean token when nothing else supplied it.
func (o *runOptions) buildClient(out *os.File) (provider.Client, error) {
	switch strings.ToLower(strings.TrimSpace(o.providerName)) {
	case "", "digitalocean":
		token := o.doToken
		if token == "" {
			token = strings.TrimSpace(os.Getenv("DIGITALOCEAN_TOKEN"))
		}
		if token == "" {
			var err error
			if token, err = ui.AskSecret(out, "DigitalOcean api token"); err != nil {
				return nil, err
			}
		}
		return digitalocean.New(digitalocean.NewOptions{APIToken: token})
	case "dnspod":
		secretID := o.dpSecretID
		if secretID == "" {
			secretID = os.Getenv("DNSPOD_SECRET_ID")
		}
		secretKey := o.dpSecretKey
		if secretKey == "" {
			secretKey = os.Getenv("DNSPOD_SECRET_KEY")
		}
		if secretID == "" || secretKey == "" {
			return nil, fmt.Errorf("missing credentials: set DNSPOD_SECRET_ID and DNSPOD_SECRET_KEY (or pass flags)")
		}
		return dnspodclient.New(dnspodclient.NewOptions{
			SecretID:   secretID,
			SecretKey:  secretKey,
			Region:     o.dpRegion,
			RecordLine: o.dpRecordLine,
		})
	default:
		return nil, fmt.Errorf("unsupported provider: %s", o.providerName)
	}
}
