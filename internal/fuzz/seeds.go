package fuzztests

import (
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

var languageSeeds = []string{
	"",
	"fn main() {}\n",
	"pub fn add(a: u32, b: u32) -> u32 { a + b }\n",
	"struct Point<T> { x: T, y: T }\n",
	"enum Option<T> { Some(T), None }\n",
	"trait Show { fn show(&self) -> String; }\n",
	"impl<T: Clone> Show for Point<T> { fn show(&self) -> String { todo!() } }\n",
	"use std::collections::{HashMap, HashSet as Set};\n",
	"const LIMIT: usize = 1 << 10;\n",
	"static mut COUNTER: u64 = 0;\n",
	"type Pair = (u32, u32);\n",
	"extern \"C\" { fn abort() -> !; }\n",
	"macro_rules! ok { () => {} }\n",
	"fn control() { if let Some(x) = opt { x } else { 0 }; }\n",
	"fn ranges() { for i in 0..n { sum += i; } }\n",
	"fn m(e: E) -> u8 { match e { E::A => 1, E::B(x) if x > 0 => 2, _ => 0 } }\n",
	"fn closures() { let f = |x: u32| -> u32 { x * 2 }; f(21); }\n",
	"fn generics() { let v: Vec<Vec<u8>> = Vec::new(); parse::<u32>(\"1\"); }\n",
	"fn lits() { let s = \"a\\nb\"; let c = 'x'; let b = b\"raw\"; let f = 1.5e3; }\n",
	"fn f() { let x: int = 1\nlet y: int = 2; }",
	"fn f() { { { { } } } }\n",
	"fn broken( {}",
	"let s = \"unterminated",
	"/* unterminated comment",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
