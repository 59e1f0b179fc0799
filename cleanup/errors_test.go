package cleanup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/disgoorg/disgo/rest"
)

func TestIsPermissionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "missing permissions",
			err:  &rest.Error{Code: errorCodeMissingPermissions, Message: "Missing Permissions"},
			want: true,
		},
		{
			name: "missing access",
			err:  &rest.Error{Code: errorCodeMissingAccess, Message: "Missing Access"},
			want: true,
		},
		{
			name: "wrapped rest error",
			err:  fmt.Errorf("deleting message: %w", &rest.Error{Code: errorCodeMissingPermissions}),
			want: true,
		},
		{
			name: "unrelated rest error",
			err:  &rest.Error{Code: 10008, Message: "Unknown Message"},
			want: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := isPermissionError(test.err); got != test.want {
				t.Errorf("expected %t, got %t", test.want, got)
			}
		})
	}
}

func TestClassifyKeepsErrorChain(t *testing.T) {
	cause := &rest.Error{Code: errorCodeMissingPermissions, Message: "Missing Permissions"}
	err := classify("bulk deleting messages", cause)
	if !errors.Is(err, cause) {
		t.Error("expected the platform error to stay in the chain")
	}
	if !isPermissionError(err) {
		t.Error("expected the classified error to still read as a permission error")
	}
}
