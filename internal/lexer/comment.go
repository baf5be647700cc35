package lexer

import "strings"

// CommentMarker starts a line comment.
const CommentMarker = "::"

// RemoveCommentInLine cuts line at the first comment marker. Text before
// the marker, trailing spaces included, is kept.
func RemoveCommentInLine(line string) string {
	if i := strings.Index(line, CommentMarker); i >= 0 {
		return line[:i]
	}
	return line
}

// RemoveComment applies RemoveCommentInLine to every line.
func RemoveComment(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = RemoveCommentInLine(line)
	}
	return out
}
