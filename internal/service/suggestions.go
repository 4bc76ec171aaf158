package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Suggestion messages, in evaluation order.
const (
	SuggestHashtags     = "Consider adding relevant hashtags and mentions."
	SuggestShortPost    = "Post is short. Try adding context or a hook in the opening line."
	SuggestCallToAction = "Add a clear call-to-action (e.g., link, 'learn more', 'follow')."
	SuggestLineBreaks   = "Break long text into short lines for readability."
)

// ShortPostThreshold is the character count below which a post counts as short.
const ShortPostThreshold = 80

var callToActionPattern = regexp.MustCompile(`(?i)(call to action|link|visit|learn more|subscribe|follow)`)

type suggestionRule struct {
	applies func(text string) bool
	message string
}

var suggestionRules = []suggestionRule{
	{
		applies: func(text string) bool { return !strings.ContainsAny(text, "#@") },
		message: SuggestHashtags,
	},
	{
		applies: func(text string) bool { return utf8.RuneCountInString(text) < ShortPostThreshold },
		message: SuggestShortPost,
	},
	{
		applies: func(text string) bool { return !callToActionPattern.MatchString(text) },
		message: SuggestCallToAction,
	},
	{
		applies: func(text string) bool { return !strings.Contains(text, "\n") },
		message: SuggestLineBreaks,
	},
}

// Suggest runs every rule over text and returns the messages of those that
// apply, in rule order. The result is never nil.
func Suggest(text string) []string {
	out := make([]string, 0, len(suggestionRules))
	for _, rule := range suggestionRules {
		if rule.applies(text) {
			out = append(out, rule.message)
		}
	}
	return out
}
