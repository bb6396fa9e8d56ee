package main

import (
	"strings"
	"unicode/utf8"

	"beeftest"
)

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func words(s string) []string {
	return strings.Fields(s)
}

var _ = beeftest.Test("reverse", func(t *beeftest.T) {
	t.Cond(reverse("beef") == "feeb")
	t.Cond(reverse("") == "")
	t.Cond(reverse("héllo") == "olléh")
	t.Cond(utf8.ValidString(reverse("日本語")))
})

var _ = beeftest.Test("words", func(t *beeftest.T) {
	w := words("  soft and   hard checks ")
	t.Assert(len(w) == 4, "four words")
	t.Cond(w[0] == "soft")
	t.Cond(w[3] == "checks")
})

var _ = beeftest.Test("zero values", func(t *beeftest.T) {
	var s string
	t.Cond(s == "")
	t.Cond(len(words(s)) == 0)
})
