package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeParse, "bad token %q", "xyz")

	if err.Code != ErrCodeParse {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeParse)
	}
	if err.Message != `bad token "xyz"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	want := `PARSE_ERROR: bad token "xyz"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying problem")
	err := Wrap(ErrCodePieceTooLarge, cause, "packing page %d", 3)

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "LAYOUT_PIECE_TOO_LARGE: packing page 3: underlying problem"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrCodeFrameMismatch, "world vs printed"),
			code: ErrCodeFrameMismatch,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrCodeFrameMismatch, "world vs printed"),
			code: ErrCodeParse,
			want: false,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("plain"),
			code: ErrCodeParse,
			want: false,
		},
		{
			name: "wrapped in fmt.Errorf",
			err:  fmt.Errorf("outer: %w", New(ErrCodeInvalidScale, "bad ratio")),
			code: ErrCodeInvalidScale,
			want: true,
		},
		{
			name: "nil error",
			err:  nil,
			code: ErrCodeParse,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidMatrix, "row 2 has 4 entries")); got != ErrCodeInvalidMatrix {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeInvalidMatrix)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode for plain error = %v, want empty", got)
	}
}

func TestFamilies(t *testing.T) {
	if !IsParse(New(ErrCodeUnknownUnit, "furlongs")) {
		t.Error("ErrCodeUnknownUnit should be in the parse family")
	}
	if IsParse(New(ErrCodeKindMismatch, "point + point")) {
		t.Error("ErrCodeKindMismatch should not be in the parse family")
	}
	if !IsType(New(ErrCodeKindMismatch, "point + point")) {
		t.Error("ErrCodeKindMismatch should be in the type family")
	}
	if IsType(New(ErrCodeInvalidMatrix, "short row")) {
		t.Error("ErrCodeInvalidMatrix should not be in the type family")
	}
}
