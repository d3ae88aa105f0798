package errors

import (
	stdlib "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"errors are self-causing": {
			err:  ErrThreshold,
			root: ErrThreshold,
		},
		"wrap reveals root cause": {
			err:  Wrap(ErrThreshold, "zero"),
			root: ErrThreshold,
		},
		"cause works for stderr as root": {
			err:  Wrap(std, "some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNoMatch,
			b:      ErrNoMatch,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNoMatch,
			b:      ErrThreshold,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNoMatch,
			b:      Wrap(ErrNoMatch, "exhausted"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNoMatch,
			b:      Wrap(ErrOverflow, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrNoMatch,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrNoMatch,
			b:      Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrThreshold,
			wantIs: false,
		},
		"not-nil is not nil": {
			a:      ErrThreshold,
			b:      nil,
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

type customError struct{}

func (customError) Error() string {
	return "custom error"
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "whatever"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
	if err := Wrapf(nil, "whatever %d", 42); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "duplicate of the input error code")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("totally unexpected")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}

func TestErrorCode(t *testing.T) {
	if code := ErrThreshold.Code(); code != 6 {
		t.Fatalf("unexpected code: %d", code)
	}
}

func TestWrappedErrorMessage(t *testing.T) {
	err := Wrap(ErrKeyFlag, "first byte is 9")
	const want = "first byte is 9: invalid public key flag"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
