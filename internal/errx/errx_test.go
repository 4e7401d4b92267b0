package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestE(t *testing.T) {
	t.Run("returns nil when error is nil", func(t *testing.T) {
		if got := E("op", NotFound, nil); got != nil {
			t.Errorf("E() with nil error = %v, want nil", got)
		}
	})

	t.Run("constructs Error with all fields", func(t *testing.T) {
		root := errors.New("no rows")
		err := E("shortener.repo.Resolve", NotFound, root)

		var e *Error
		if !errors.As(err, &e) {
			t.Fatal("expected error to be of type *errx.Error")
		}
		if got, want := e.Op, "shortener.repo.Resolve"; got != want {
			t.Errorf("Op = %q, want %q", got, want)
		}
		if got, want := e.Kind, NotFound; got != want {
			t.Errorf("Kind = %v, want %v", got, want)
		}
		if !errors.Is(e.Err, root) {
			t.Errorf("Err = %v, want %v", e.Err, root)
		}
	})

	t.Run("preserves all error kinds", func(t *testing.T) {
		root := errors.New("test error")
		for _, kind := range []Kind{Unknown, Invalid, Duplicate, NotFound, Storage} {
			t.Run(kind.String(), func(t *testing.T) {
				if got := KindOf(E("operation", kind, root)); got != kind {
					t.Errorf("KindOf() = %v, want %v", got, kind)
				}
			})
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("keeps inner kind and sets outer op", func(t *testing.T) {
		inner := E("shortener.repo.Create", Duplicate, errors.New("taken"))
		outer := Wrap("shortener.service.Create", inner)

		if got := KindOf(outer); got != Duplicate {
			t.Errorf("KindOf() = %v, want %v", got, Duplicate)
		}
		if got := OpOf(outer); got != "shortener.service.Create" {
			t.Errorf("OpOf() = %q, want %q", got, "shortener.service.Create")
		}
	})

	t.Run("plain errors become Unknown", func(t *testing.T) {
		err := Wrap("op", errors.New("plain"))
		if got := KindOf(err); got != Unknown {
			t.Errorf("KindOf() = %v, want %v", got, Unknown)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if err := Wrap("op", nil); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "nil inner error returns op",
			err:  &Error{Op: "handler.Resolve", Kind: NotFound},
			want: "handler.Resolve",
		},
		{
			name: "empty op returns inner error message",
			err:  &Error{Kind: Unknown, Err: errors.New("root cause")},
			want: "root cause",
		},
		{
			name: "formats op and error",
			err:  &Error{Op: "service.Resolve", Kind: NotFound, Err: errors.New("root cause")},
			want: "service.Resolve: root cause",
		},
		{
			name: "both empty",
			err:  &Error{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Run("supports nested wrapping", func(t *testing.T) {
		root := errors.New("connection reset")
		layer1 := E("repo.Create", Storage, root)
		layer2 := Wrap("service.Create", layer1)
		layer3 := Wrap("handler.Shorten", layer2)

		if !errors.Is(layer3, root) {
			t.Error("errors.Is() failed with deeply nested errors")
		}
		if got := KindOf(layer3); got != Storage {
			t.Errorf("KindOf() = %v, want %v", got, Storage)
		}
	})

	t.Run("returns nil when Err is nil", func(t *testing.T) {
		err := &Error{Op: "test"}
		if unwrapped := err.Unwrap(); unwrapped != nil {
			t.Errorf("Unwrap() = %v, want nil", unwrapped)
		}
	})
}

func TestKindOf(t *testing.T) {
	t.Run("returns Unknown for standard error", func(t *testing.T) {
		if got := KindOf(errors.New("standard error")); got != Unknown {
			t.Errorf("KindOf() = %v, want %v", got, Unknown)
		}
	})

	t.Run("returns Unknown for nil error", func(t *testing.T) {
		if got := KindOf(nil); got != Unknown {
			t.Errorf("KindOf(nil) = %v, want %v", got, Unknown)
		}
	})

	t.Run("finds kind through fmt.Errorf wrapping", func(t *testing.T) {
		err := fmt.Errorf("context: %w", E("operation", Duplicate, errors.New("taken")))
		if got := KindOf(err); got != Duplicate {
			t.Errorf("KindOf() = %v, want %v", got, Duplicate)
		}
	})
}

func TestOpOf(t *testing.T) {
	t.Run("returns empty for standard error", func(t *testing.T) {
		if got := OpOf(errors.New("standard error")); got != "" {
			t.Errorf("OpOf() = %q, want empty string", got)
		}
	})

	t.Run("extracts outermost op from chain", func(t *testing.T) {
		repo := E("repo.Resolve", NotFound, errors.New("root"))
		handler := Wrap("handler.Resolve", Wrap("service.Resolve", repo))

		if got, want := OpOf(handler), "handler.Resolve"; got != want {
			t.Errorf("OpOf() = %q, want %q", got, want)
		}
	})
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Unknown, "Unknown"},
		{Invalid, "InvalidInput"},
		{Duplicate, "DuplicateCode"},
		{NotFound, "NotFound"},
		{Storage, "StorageError"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
