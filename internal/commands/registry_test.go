package commands

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&DeleteCmd{}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(&AddCmd{}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if c, ok := r.Find("rm"); !ok || c.Name() != "delete" {
		t.Errorf("alias lookup failed: %v %v", c, ok)
	}
	if err := r.Register(&SpendDeleteCmd{}); err == nil {
		t.Error("expected duplicate name to be rejected")
	}

	var names []string
	for _, c := range r.All() {
		names = append(names, c.Name())
	}
	if diff := cmp.Diff([]string{"add", "delete"}, names); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
}

func TestExactlyOne(t *testing.T) {
	flags := []string{"a", "b"}
	if got, err := exactlyOne(flags, map[string]bool{"b": true}); err != nil || got != "b" {
		t.Errorf("expected b, got %q %v", got, err)
	}
	if _, err := exactlyOne(flags, nil); err == nil || err.Error() != "one of --a, --b is required" {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := exactlyOne(flags, map[string]bool{"a": true, "b": true}); err == nil || err.Error() != "only one of --a, --b may be given" {
		t.Errorf("unexpected error %v", err)
	}
}
