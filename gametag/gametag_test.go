package gametag

import "testing"

func TestStringRoundTrip(t *testing.T) {
	cases := []struct {
		tag  GameTag
		want string
	}{
		{GameA, "rc00"},
		{GameB, "sadk"},
	}
	for _, c := range cases {
		if got := c.tag.String(); got != c.want {
			t.Errorf("GameTag(%#x).String() = %q, want %q", uint32(c.tag), got, c.want)
		}
	}
}

func TestValid(t *testing.T) {
	if !GameA.Valid() || !GameB.Valid() {
		t.Fatal("GameA and GameB must be valid")
	}
	if GameTag(0).Valid() {
		t.Fatal("zero tag must not be valid")
	}
	if GameTag(0xDEADBEEF).Valid() {
		t.Fatal("arbitrary tag must not be valid")
	}
}
