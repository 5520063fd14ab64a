package errors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind      *Error
		err       error
		wantMatch bool
	}{
		"instance of the same root error": {
			kind:      ErrNotFound,
			err:       ErrNotFound,
			wantMatch: true,
		},
		"wrapped root error": {
			kind:      ErrNotFound,
			err:       Wrap(ErrNotFound, "gone"),
			wantMatch: true,
		},
		"deeply wrapped root error": {
			kind:      ErrNotFound,
			err:       Wrap(Wrap(ErrNotFound, "gone"), "almost"),
			wantMatch: true,
		},
		"different root error": {
			kind:      ErrNotFound,
			err:       ErrUnauthorized,
			wantMatch: false,
		},
		"stdlib error": {
			kind:      ErrNotFound,
			err:       fmt.Errorf("stdlib"),
			wantMatch: false,
		},
		"nil error": {
			kind:      ErrNotFound,
			err:       nil,
			wantMatch: false,
		},
		"nil kind matches nil error": {
			kind:      nil,
			err:       nil,
			wantMatch: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantMatch {
				t.Fatalf("unexpected match result: %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "should stay nil"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrapPreservesABCICode(t *testing.T) {
	err := Wrap(ErrUnauthorized, "kitty")
	if code := abciCode(err); code != ErrUnauthorized.ABCICode() {
		t.Fatalf("want %d, got %d", ErrUnauthorized.ABCICode(), code)
	}
}

func TestWrapAttachesStackTrace(t *testing.T) {
	err := Wrap(ErrNotFound, "outer")
	if stackTrace(err) == nil {
		t.Fatal("stack trace is not attached")
	}
}

func TestWrapKeepsFirstStackTrace(t *testing.T) {
	inner := Wrap(ErrNotFound, "inner")
	outer := Wrap(inner, "outer")
	if want, got := fmt.Sprintf("%+v", stackTrace(inner)), fmt.Sprintf("%+v", stackTrace(outer)); want != got {
		t.Fatal("stack trace was overwritten by an outer wrap")
	}
}

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil error is a success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"registered error code is exposed": {
			err:      Wrap(ErrNotFound, "gone"),
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "gone: not found",
		},
		"stdlib error is an internal error": {
			err:      errors.New("stdlib"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want code %d, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want log %q, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(ErrNotFound.ABCICode(), "duplicate code")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("for tests")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}
