package sigfmt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/sigfmt/sigfmt/sig"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeInvalidArgument, "bad dialect")
	if err.Code != CodeInvalidArgument {
		t.Errorf("expected code %s, got %s", CodeInvalidArgument, err.Code)
	}
	if err.Error() != "invalid_argument: bad dialect" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestErrorWithDetail(t *testing.T) {
	base := Errorf(CodeInvalidArgument, "unknown dialect %q", "fsharp")
	withDetail := base.WithDetail("dialect", "fsharp")
	if base.Details != nil {
		t.Error("WithDetail modified the receiver")
	}
	if withDetail.Details["dialect"] != "fsharp" {
		t.Errorf("details = %v", withDetail.Details)
	}
}

func TestAsError(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		wantCode ErrorCode
	}{
		{"passthrough", NewError(CodeUnimplemented, "x"), CodeUnimplemented},
		{"nil type", fmt.Errorf("render: %w", ErrNilType), CodeInvalidArgument},
		{"too deep", sig.ErrTooDeep, CodeInvalidArgument},
		{"unknown kind", &UnknownKindError{Kind: 42}, CodeUnimplemented},
		{"joined", errors.Join(ErrNilType, errors.New("other")), CodeInvalidArgument},
		{"other", errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsError(tt.input)
			if got.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", got.Code, tt.wantCode)
			}
		})
	}

	if AsError(nil) != nil {
		t.Error("AsError(nil) != nil")
	}
}

func TestAsError_ValidationErrors(t *testing.T) {
	type request struct {
		Dialect string `validate:"required,oneof=csharp vb"`
	}
	err := validator.New().Struct(request{Dialect: "fsharp"})
	got := AsError(err)
	if got.Code != CodeInvalidArgument {
		t.Fatalf("code = %s", got.Code)
	}
	if want := "Dialect: must be one of: csharp vb"; got.Message != want {
		t.Errorf("message = %q, want %q", got.Message, want)
	}
	if got.Details["Dialect"] == nil {
		t.Errorf("details = %v", got.Details)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeInvalidArgument, 2},
		{CodeUnimplemented, 3},
		{CodeInternal, 1},
		{ErrorCode("other"), 1},
	}
	for _, tt := range tests {
		if got := tt.code.ExitCode(); got != tt.want {
			t.Errorf("%s.ExitCode() = %d, want %d", tt.code, got, tt.want)
		}
	}
}
