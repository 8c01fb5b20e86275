package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ashfallgames/gacodec/archive"
	"github.com/ashfallgames/gacodec/gametag"
)

// reportCodecError prints which invariant failed, named the way spec.md
// §7's error taxonomy names it, and returns err unchanged so Execute can
// propagate it as the command's exit error.
func reportCodecError(err error) error {
	switch {
	case errors.Is(err, archive.ErrNotEncoded):
		fmt.Fprintln(os.Stderr, "NotEncoded:", err)
	case errors.Is(err, archive.ErrBadHeader):
		fmt.Fprintln(os.Stderr, "BadHeader:", err)
	case errors.Is(err, archive.ErrKeyMismatch):
		fmt.Fprintln(os.Stderr, "KeyMismatch:", err)
	case errors.Is(err, archive.ErrSizeMismatch):
		fmt.Fprintln(os.Stderr, "SizeMismatch:", err)
	case errors.Is(err, archive.ErrPayloadMismatch):
		fmt.Fprintln(os.Stderr, "PayloadMismatch:", err)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}

func parseGameTag(s string) (gametag.GameTag, error) {
	switch s {
	case "a", "A":
		return gametag.GameA, nil
	case "b", "B":
		return gametag.GameB, nil
	default:
		return 0, fmt.Errorf("unknown game tag %q, want a or b", s)
	}
}
