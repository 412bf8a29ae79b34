package main

import "testing"

// plan must never be able to construct a provider client: it registers no
// provider selection and no credential flags, so there is nothing for
// buildClient to consume and its RunE never calls it.
func TestPlanExposesNoProviderSurface(t *testing.T) {
	plan := newCmdPlan()
	for _, name := range []string{"provider", "token", "dnspod-secret-id", "dnspod-secret-key"} {
		if plan.Flags().Lookup(name) != nil {
			t.Fatalf("plan must not expose provider flag %q", name)
		}
	}

	migrate := newCmdMigrate()
	for _, name := range []string{"provider", "token", "dnspod-secret-id"} {
		if migrate.Flags().Lookup(name) == nil {
			t.Fatalf("migrate is missing provider flag %q", name)
		}
	}
}
