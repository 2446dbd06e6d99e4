package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := New(PhaseApply, KindInvalidData).
		Surface("s1").
		Component("c1").
		Detail("component has no type").
		Build()

	msg := err.Error()
	for _, want := range []string{"[apply]", "invalid_data", "s1", "c1", "component has no type"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestError_Is(t *testing.T) {
	err := MalformedPointer(PhaseResolve, "no-slash")
	target := &Error{Phase: PhaseResolve, Kind: KindMalformedPointer}

	if !stderrors.Is(err, target) {
		t.Error("expected errors.Is match on same phase and kind")
	}

	other := &Error{Phase: PhaseApply, Kind: KindMalformedPointer}
	if stderrors.Is(err, other) {
		t.Error("unexpected errors.Is match across phases")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(PhaseParse, KindInvalidMessage, cause, "decode messages")

	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be reachable via Unwrap")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("message %q missing cause", err.Error())
	}
}

func TestRootWrite(t *testing.T) {
	err := RootWrite("/")
	if err.Kind != KindRootWrite {
		t.Errorf("expected root_write kind, got %s", err.Kind)
	}
	if !strings.Contains(err.Error(), "whole tree") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestQueueOverflow(t *testing.T) {
	err := QueueOverflow("s1", 3)
	if err.Surface != "s1" {
		t.Errorf("expected surface id, got %q", err.Surface)
	}
	if !strings.Contains(err.Error(), "3 message(s)") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
