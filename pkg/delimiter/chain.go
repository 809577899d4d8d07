package delimiter

import "strings"

// Apply runs tokens through delims in order and drops tokens that are empty
// or consist only of whitespace.
//
// Each delimiter receives the output of the previous one. An empty delimiter
// list yields an empty result rather than the unsplit input.
func Apply(delims []Delimiter, tokens []string) []string {
	if len(delims) == 0 || len(tokens) == 0 {
		return nil
	}

	for _, d := range delims {
		tokens = d.Split(tokens)
	}

	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) != "" {
			result = append(result, token)
		}
	}
	return result
}

// Tokenize wraps input as a single token and passes it through Apply.
func Tokenize(input string, delims ...Delimiter) []string {
	return Apply(delims, []string{input})
}
