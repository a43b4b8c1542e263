package main

import "regexp"

// negativeMove matches move text whose source stool is negative, such as "-1:0".
var negativeMove = regexp.MustCompile(`^-\d+\s*[:,]\s*-?\d+$`)

// normalizeMoveArgs ends flag parsing before the first move that starts with a
// dash, so "-1:0" reaches the move checks instead of failing as an unknown
// shorthand flag. Flags must come before such a move.
func normalizeMoveArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if negativeMove.MatchString(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}
