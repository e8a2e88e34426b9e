package account

import "testing"

func credHash(t *testing.T, c Credential) string {
	t.Helper()
	h, ok := c.Hash()
	if !ok {
		t.Fatalf("credential not in the set state: %+v", c)
	}
	return h
}

func TestNewCredential_ThreeStates(t *testing.T) {
	t.Parallel()

	absent := AbsentCredential()
	if !absent.IsAbsent() || absent.IsEmpty() {
		t.Fatalf("absent state wrong: %+v", absent)
	}
	if _, ok := absent.Hash(); ok {
		t.Fatalf("absent credential reported a hash")
	}

	empty := NewCredential("")
	if !empty.IsEmpty() || empty.IsAbsent() {
		t.Fatalf("empty state wrong: %+v", empty)
	}
	if _, ok := empty.Hash(); ok {
		t.Fatalf("empty credential reported a hash")
	}

	set := NewCredential("$5$salt$digest")
	if set.IsAbsent() || set.IsEmpty() {
		t.Fatalf("set state wrong: %+v", set)
	}
	if h := credHash(t, set); h != "$5$salt$digest" {
		t.Fatalf("hash mismatch: %q", h)
	}
}

func TestCredential_DisableEnable(t *testing.T) {
	t.Parallel()

	c := NewCredential("$5$salt$digest")
	if c.Disabled() {
		t.Fatalf("fresh credential reported disabled")
	}

	d := c.withEnabled(false)
	if !d.Disabled() {
		t.Fatalf("disable did not apply")
	}
	if h := credHash(t, d); h != "!$5$salt$digest" {
		t.Fatalf("marker not prefixed: %q", h)
	}

	// Disabling again is a no-op.
	if again := d.withEnabled(false); credHash(t, again) != "!$5$salt$digest" {
		t.Fatalf("disable is not idempotent")
	}

	// Enabling restores the exact prior hash.
	e := d.withEnabled(true)
	if e.Disabled() {
		t.Fatalf("enable did not apply")
	}
	if h := credHash(t, e); h != "$5$salt$digest" {
		t.Fatalf("enable did not restore hash: %q", h)
	}

	// Enabling again is a no-op.
	if again := e.withEnabled(true); credHash(t, again) != "$5$salt$digest" {
		t.Fatalf("enable is not idempotent")
	}
}

func TestCredential_EmptyDisableRoundTrip(t *testing.T) {
	t.Parallel()

	empty := EmptyCredential()
	if !empty.withEnabled(true).IsEmpty() {
		t.Fatalf("enabling an empty credential changed it")
	}

	// Disabled-with-no-real-hash is the bare marker.
	d := empty.withEnabled(false)
	if h := credHash(t, d); h != "!" {
		t.Fatalf("bare marker expected, got %q", h)
	}
	if !d.Disabled() {
		t.Fatalf("bare marker not reported disabled")
	}
	if !d.withEnabled(true).IsEmpty() {
		t.Fatalf("enabling the bare marker should restore the empty state")
	}
}

func TestCredential_AbsentTogglesAreNoOps(t *testing.T) {
	t.Parallel()

	absent := AbsentCredential()
	if !absent.withEnabled(false).IsAbsent() {
		t.Fatalf("disabling an absent credential changed it")
	}
	if !absent.withEnabled(true).IsAbsent() {
		t.Fatalf("enabling an absent credential changed it")
	}
}
