package query

import (
	"testing"

	perr "gar/internal/platform/errors"
)

func TestParseConstraintSplitsOnFirstColon(t *testing.T) {
	t.Parallel()

	c, err := ParseConstraint("name:foo:bar")
	if err != nil {
		t.Fatalf("ParseConstraint: %v", err)
	}
	if c.Label != "name" || c.Value != "foo:bar" {
		t.Fatalf("ParseConstraint = %+v", c)
	}
}

func TestParseConstraintRejectsBareToken(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"language", ":Rust", ""} {
		if _, err := ParseConstraint(tok); err == nil {
			t.Errorf("ParseConstraint(%q) should fail", tok)
		}
	}
}

func TestParseConstraintNumericValidation(t *testing.T) {
	t.Parallel()

	// a malformed numeric threshold is a user error, never swallowed
	for _, tok := range []string{"+watchers:ten", "-watchers:", "+stargazers:1.5", "-stargazers:-3"} {
		_, err := ParseConstraint(tok)
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Errorf("ParseConstraint(%q) = %v, want InvalidArgument", tok, err)
		}
	}

	if _, err := ParseConstraint("+watchers:10"); err != nil {
		t.Fatalf("valid numeric constraint rejected: %v", err)
	}
}

func TestParseConstraintsList(t *testing.T) {
	t.Parallel()

	cons, err := ParseConstraints("language:Rust, +watchers:10")
	if err != nil {
		t.Fatalf("ParseConstraints: %v", err)
	}
	if len(cons) != 2 {
		t.Fatalf("ParseConstraints = %d constraints, want 2", len(cons))
	}
	if cons[0].Label != "language" || cons[0].Value != "Rust" {
		t.Fatalf("first constraint = %+v", cons[0])
	}

	// empty where clause means no constraints
	none, err := ParseConstraints("")
	if err != nil || len(none) != 0 {
		t.Fatalf("empty clause = %v, %v", none, err)
	}
}

func TestParseSelect(t *testing.T) {
	t.Parallel()

	fields, err := ParseSelect("url,name")
	if err != nil {
		t.Fatalf("ParseSelect: %v", err)
	}
	if len(fields) != 2 || fields[0] != "url" || fields[1] != "name" {
		t.Fatalf("ParseSelect = %#v", fields)
	}

	// empty select means every known field
	all, err := ParseSelect("")
	if err != nil {
		t.Fatalf("ParseSelect empty: %v", err)
	}
	if len(all) != len(KnownFields) {
		t.Fatalf("ParseSelect empty = %d fields, want %d", len(all), len(KnownFields))
	}

	if _, err := ParseSelect("url,bogus"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("unknown field error = %v, want InvalidArgument", err)
	}
}
