package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:   http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeNotFound:     http.StatusNotFound,
		CodeConflict:     http.StatusConflict,
		CodeDependency:   http.StatusServiceUnavailable,
	}
	for code, status := range cases {
		if got := MetadataFor(code).HTTPStatus; got != status {
			t.Fatalf("code %s: expected status %d, got %d", code, status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	if MetadataFor(Code("NOPE")).HTTPStatus != http.StatusInternalServerError {
		t.Fatal("expected internal fallback for unknown code")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "load wishlist")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be discoverable via errors.Is")
	}
	if typed := As(err); typed == nil || typed.Code() != CodeDependency {
		t.Fatalf("expected dependency code, got %v", err)
	}
}

func TestAsReturnsNilForForeignErrors(t *testing.T) {
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for non-typed error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestDumpSurfacesPostgresFields(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "wishlists_customer_id_key",
		TableName:      "wishlists",
	}
	err := Wrap(CodeConflict, pgErr, "create wishlist")

	dump := Dump(err)
	if dump.PGCode != "23505" {
		t.Fatalf("expected pg code, got %q", dump.PGCode)
	}
	if dump.PGConstraint != "wishlists_customer_id_key" {
		t.Fatalf("expected constraint name, got %q", dump.PGConstraint)
	}
	if dump.Code != CodeConflict {
		t.Fatalf("expected typed code in dump, got %q", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected error chain, got %v", dump.Chain)
	}
}
