package jpnphoneme

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := newErr(KindFormat, "bad magic %q", "XXXX")
	if got, want := err.Error(), `format: bad magic "XXXX"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsKindMatchesDirectAndWrapped(t *testing.T) {
	base := newErr(KindIO, "read failed")
	wrapped := fmt.Errorf("loading artifact: %w", base)

	if !IsKind(base, KindIO) {
		t.Error("IsKind should match the *Error directly")
	}
	if !IsKind(wrapped, KindIO) {
		t.Error("IsKind should see through fmt.Errorf %w wrapping")
	}
	if IsKind(wrapped, KindFormat) {
		t.Error("IsKind should not match an unrelated Kind")
	}
	if IsKind(errors.New("plain error"), KindIO) {
		t.Error("IsKind should not match a non-*Error")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindIO:     "io",
		KindFormat: "format",
		KindConfig: "config",
		KindBounds: "bounds",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
