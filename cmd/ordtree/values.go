package main

import (
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	kindInt  = "int"
	kindWord = "word"
)

func checkKind(kind string) error {
	if kind != kindInt && kind != kindWord {
		return fmt.Errorf("unknown value kind %q, want %q or %q", kind, kindInt, kindWord)
	}
	return nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func parseWord(s string) (string, error) {
	return s, nil
}

// randomInts mirrors the original driver: values in [0, 500).
func randomInts(seed int64, n int) []int {
	f := gofakeit.New(seed)
	vs := make([]int, n)
	for i := range vs {
		vs[i] = f.Number(0, 499)
	}
	return vs
}

func randomWords(seed int64, n int) []string {
	f := gofakeit.New(seed)
	vs := make([]string, n)
	for i := range vs {
		vs[i] = f.Word()
	}
	return vs
}
