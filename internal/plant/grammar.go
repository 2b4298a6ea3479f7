package plant

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// token is one symbol of an instruction string plus its optional inline {N}
// counter.
type token struct {
	sym      rune
	count    int
	hasCount bool
}

// tokenize splits an instruction string into symbols. A symbol immediately
// followed by {N} carries N as its counter; a brace group that does not parse
// as an integer is dropped rather than treated as symbols.
func tokenize(s string) []token {
	runes := []rune(s)
	tokens := make([]token, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		tk := token{sym: runes[i]}
		if i+1 < len(runes) && runes[i+1] == '{' {
			end := -1
			for j := i + 2; j < len(runes); j++ {
				if runes[j] == '}' {
					end = j
					break
				}
			}
			if end > 0 {
				if n, err := strconv.Atoi(string(runes[i+2 : end])); err == nil {
					tk.count = n
					tk.hasCount = true
				}
				i = end
			}
		}
		tokens = append(tokens, tk)
	}
	return tokens
}

func writeToken(b *strings.Builder, tk token) {
	b.WriteRune(tk.sym)
	if tk.hasCount {
		b.WriteByte('{')
		b.WriteString(strconv.Itoa(tk.count))
		b.WriteByte('}')
	}
}

// expand rewrites axiom for the given number of iterations. Symbols without a
// rule pass through unchanged. Symbols with a rule are replaced by finalRule
// on the last iteration so the result contains only terminals. With no rules
// at all the axiom is already the final string.
func expand(axiom string, rules map[rune]Rule, iterations int, finalRule string, rng *rand.Rand) string {
	if len(rules) == 0 {
		return axiom
	}
	current := axiom
	for i := 0; i < iterations; i++ {
		last := i == iterations-1
		var b strings.Builder
		for _, tk := range tokenize(current) {
			rule, ok := rules[tk.sym]
			if !ok {
				writeToken(&b, tk)
				continue
			}
			if last {
				b.WriteString(finalRule)
				continue
			}
			b.WriteString(resolveRule(rule, i, tk.count, rng))
		}
		current = b.String()
	}
	return current
}

// resolveRule evaluates one rule into its replacement string, applying
// weighted successor selection and the {+}/{-} counter rewrites.
func resolveRule(rule Rule, iteration, count int, rng *rand.Rand) string {
	out := Outcome{
		Successor:  rule.Successor,
		Successors: rule.Successors,
		Weights:    rule.Weights,
	}
	if rule.Fn != nil {
		out = rule.Fn(iteration, count)
	}
	chosen := out.Successor
	if len(out.Successors) > 0 {
		weights := out.Weights
		if len(weights) != len(out.Successors) {
			weights = uniformWeights(len(out.Successors))
		}
		chosen = WeightedPick(rng, out.Successors, weights)
	}
	if strings.Contains(chosen, "{+}") {
		chosen = strings.ReplaceAll(chosen, "{+}", "{"+strconv.Itoa(count+1)+"}")
	}
	if strings.Contains(chosen, "{-}") {
		chosen = strings.ReplaceAll(chosen, "{-}", "{"+strconv.Itoa(count-1)+"}")
	}
	return chosen
}

func uniformWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}
