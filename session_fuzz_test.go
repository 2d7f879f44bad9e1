//go:build go1.18
// +build go1.18

package deskcalc

import (
	"strings"
	"testing"
)

func FuzzSessionKeys(f *testing.F) {
	f.Add("2+3*4=")
	f.Add("..5--3=")
	f.Add("5/0=c1.2.3")
	f.Add("9\b\b\b+=x8=")
	f.Fuzz(func(t *testing.T, keys string) {
		s := NewSession()
		for _, r := range keys {
			s = s.Key(r)
			if s.buf == "" {
				t.Fatalf("empty display after %q", keys)
			}
			if !s.evaluated && strings.Count(s.buf, ".") > 1 {
				t.Fatalf("display %q has multiple decimal points", s.buf)
			}
			for i := 1; i < len(s.pending); i++ {
				if s.pending[i].kind == s.pending[i-1].kind {
					t.Fatalf("pending %v has consecutive %v tokens", s.pending, s.pending[i].kind)
				}
			}
		}
	})
}
