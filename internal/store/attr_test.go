package store_test

import (
	"testing"

	"github.com/banjos/restaurant-api/internal/store"
)

func TestReadersDefaultOnMissingOrMistyped(t *testing.T) {
	item := store.Item{
		"s": store.S("hello"),
		"n": store.N(7),
	}

	if got := store.GetS(item, "absent"); got != "" {
		t.Errorf("GetS(absent) = %q, want empty", got)
	}
	if got := store.GetS(item, "n"); got != "" {
		t.Errorf("GetS over number = %q, want empty", got)
	}
	if got := store.GetN(item, "s"); got != 0 {
		t.Errorf("GetN over string = %d, want 0", got)
	}
	if got := store.GetF(item, "absent"); got != 0 {
		t.Errorf("GetF(absent) = %v, want 0", got)
	}
	if store.GetBool(item, "absent") {
		t.Error("GetBool(absent) = true, want false")
	}
}

func TestNullableFloatRoundTrip(t *testing.T) {
	v := 3.5
	item := store.Item{
		"set":  store.NullableF(&v),
		"null": store.NullableF(nil),
	}

	got := store.GetNullableF(item, "set")
	if got == nil || *got != 3.5 {
		t.Fatalf("GetNullableF(set) = %v, want 3.5", got)
	}
	if store.GetNullableF(item, "null") != nil {
		t.Error("GetNullableF(null) != nil")
	}
	if store.GetNullableF(item, "absent") != nil {
		t.Error("GetNullableF(absent) != nil")
	}
}
