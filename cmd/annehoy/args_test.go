package main

import (
	"errors"
	"reflect"
	"testing"

	"svw.info/annehoy/internal/domain"
)

func TestNormalizeMoveArgs(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"play", "0:1"}, []string{"play", "0:1"}},
		{[]string{"play", "--stools", "3", "-1:0"}, []string{"play", "--stools", "3", "--", "-1:0"}},
		{[]string{"play", "0:1", "-2,0", "-1:0"}, []string{"play", "0:1", "--", "-2,0", "-1:0"}},
		{[]string{"play", "--", "-1:0"}, []string{"play", "--", "-1:0"}},
		{[]string{"play", "-v"}, []string{"play", "-v"}},
		{nil, nil},
	}
	for _, tc := range cases {
		if got := normalizeMoveArgs(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("normalizeMoveArgs(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPlayNegativeSourceIsIllegalMove(t *testing.T) {
	for _, args := range [][]string{
		{"play", "--stools", "3", "--discs", "2", "-1:0"},
		{"play", "--stools", "3", "--discs", "2", "--", "-1:0"},
		{"replay", "--stools", "3", "--discs", "2", "-1:0"},
	} {
		_, err := run(t, args...)
		var ime *domain.IllegalMoveError
		if !errors.As(err, &ime) || ime.Violation != domain.ViolationSourceRange {
			t.Fatalf("%q: err=%v, want source-range illegal move", args, err)
		}
	}
}
