package transfer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Dig shells out to dig for the transfer, an escape hatch for hosts that
// cannot speak DNS to the nameserver directly. Output is buffered to
// completion before it is returned.
func Dig(ctx context.Context, domain, nameserver string) (string, error) {
	nameserver = strings.TrimSuffix(nameserver, ":53")

	cmd := exec.CommandContext(ctx, "dig", "AXFR", domain, "@"+nameserver, "+noall", "+answer")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("dig AXFR %s: %v: %s", domain, err, bytes.TrimSpace(stderr.Bytes()))
		}
		return "", fmt.Errorf("dig AXFR %s: %w", domain, err)
	}
	return stdout.String(), nil
}
