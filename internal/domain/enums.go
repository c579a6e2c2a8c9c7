package domain

import "strings"

// Difficulty labels target puzzle generation: it selects the fill
// density of sampled solutions and the minimum accepted flow score.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a user-facing label to a Difficulty, defaulting
// to Medium for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// LineKind distinguishes row constraints from column constraints.
type LineKind int

const (
	LineRow LineKind = iota
	LineCol
)

func (k LineKind) String() string {
	if k == LineCol {
		return "col"
	}
	return "row"
}

// HintKind distinguishes "fill this cell" from "mark this cell empty".
type HintKind int

const (
	HintFill HintKind = iota
	HintMark
)

func (k HintKind) String() string {
	if k == HintMark {
		return "mark"
	}
	return "fill"
}
