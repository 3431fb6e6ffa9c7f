package opener

import (
	"errors"
	"testing"
)

func TestFuncOpener(t *testing.T) {
	var got string
	o := Func(func(path string) error {
		got = path
		return nil
	})

	if err := o.Open("ResultsFor_x.txt"); err != nil {
		t.Fatal(err)
	}
	if got != "ResultsFor_x.txt" {
		t.Errorf("expected path ResultsFor_x.txt, got %q", got)
	}
}

func TestFuncOpenerError(t *testing.T) {
	want := errors.New("no handler")
	o := Func(func(string) error { return want })

	if err := o.Open("x"); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestNopOpener(t *testing.T) {
	var o Opener = Nop{}
	if err := o.Open("anything"); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
