// internal/relay/encode_test.go
package relay

import (
	"bytes"
	"fmt"
	"testing"
)

// ---- tests ----

func TestEncodeStates_FreshBank(t *testing.T) {
	want := `{"relay_1":{"state":0},"relay_2":{"state":0},"relay_3":{"state":0},` +
		`"relay_4":{"state":0},"relay_5":{"state":0},"relay_6":{"state":0},` +
		`"relay_7":{"state":0},"relay_8":{"state":0}}`

	got := EncodeStates([Count]bool{})
	if string(got) != want {
		t.Fatalf("got %s", got)
	}
}

func TestEncodeStates_Mixed(t *testing.T) {
	states := [Count]bool{true, false, true, false, false, false, false, true}

	got := string(EncodeStates(states))
	for i, on := range states {
		want := fmt.Sprintf(`"relay_%d":{"state":0}`, i+1)
		if on {
			want = fmt.Sprintf(`"relay_%d":{"state":1}`, i+1)
		}
		if !bytes.Contains([]byte(got), []byte(want)) {
			t.Fatalf("missing %s in %s", want, got)
		}
	}
}

// Rebuilding the array from the encoded text via literal substring matching
// must reproduce the array. That matching is exactly what panel clients do.
func TestEncodeStates_RoundTrip(t *testing.T) {
	states := [Count]bool{false, true, true, false, true, false, false, true}
	enc := EncodeStates(states)

	var back [Count]bool
	for i := range back {
		back[i] = bytes.Contains(enc, []byte(fmt.Sprintf(`"relay_%d":{"state":1}`, i+1)))
	}

	if back != states {
		t.Fatalf("round trip: got %v want %v", back, states)
	}
}
