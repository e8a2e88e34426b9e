package account

import (
	"errors"
	"fmt"
	"testing"
)

func stubPrivilegeCalls(t *testing.T, calls *[]string, failAt string) {
	t.Helper()
	origGroups, origGid, origUid := setgroups, setgid, setuid
	t.Cleanup(func() {
		setgroups, setgid, setuid = origGroups, origGid, origUid
	})
	setgroups = func(gids []int) error {
		*calls = append(*calls, fmt.Sprintf("setgroups%v", gids))
		if failAt == "setgroups" {
			return errors.New("injected")
		}
		return nil
	}
	setgid = func(gid int) error {
		*calls = append(*calls, fmt.Sprintf("setgid(%d)", gid))
		if failAt == "setgid" {
			return errors.New("injected")
		}
		return nil
	}
	setuid = func(uid int) error {
		*calls = append(*calls, fmt.Sprintf("setuid(%d)", uid))
		if failAt == "setuid" {
			return errors.New("injected")
		}
		return nil
	}
}

func TestAssumeIdentity_Order(t *testing.T) {
	var calls []string
	stubPrivilegeCalls(t, &calls, "")

	a, err := FromName(testDirectory(t), "alice")
	if err != nil {
		t.Fatalf("FromName error: %v", err)
	}
	if err := a.AssumeIdentity(); err != nil {
		t.Fatalf("AssumeIdentity error: %v", err)
	}

	want := []string{"setgroups[10 29]", "setgid(1001)", "setuid(1001)"}
	if len(calls) != len(want) {
		t.Fatalf("calls: got %v want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("call order mismatch: got %v want %v", calls, want)
		}
	}
}

func TestAssumeIdentity_StopsOnFailure(t *testing.T) {
	for _, failAt := range []string{"setgroups", "setgid", "setuid"} {
		var calls []string
		stubPrivilegeCalls(t, &calls, failAt)

		a, err := FromName(testDirectory(t), "alice")
		if err != nil {
			t.Fatalf("FromName error: %v", err)
		}
		err = a.AssumeIdentity()
		if !errors.Is(err, ErrPrivilege) {
			t.Fatalf("failAt=%s: expected ErrPrivilege, got %v", failAt, err)
		}
		// The failing step must be the last one attempted.
		last := calls[len(calls)-1]
		if wantPrefix := failAt; len(last) < len(wantPrefix) || last[:len(wantPrefix)] != wantPrefix {
			t.Fatalf("failAt=%s: last call was %q", failAt, last)
		}
	}
}
