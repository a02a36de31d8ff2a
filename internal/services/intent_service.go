package services

import (
	"regexp"
	"strings"
)

// IntentFlags label an incoming chat message. Derived purely from the message
// text; nothing is persisted.
type IntentFlags struct {
	IsBasic    bool
	IsLocation bool
	IsSingular bool
}

type IntentServiceInterface interface {
	Classify(message string) IntentFlags
	ExtractLocation(message string) string
}

// Small-talk and factual-question vocabulary. Only used to suppress place-card
// formatting, never to block the chat itself.
var basicKeywords = []string{
	"hello", "good morning", "good evening",
	"thank", "how are you", "who are you",
	"weather", "currency", "exchange rate", "what time is it",
	"translate", "joke", "2+2", "meaning of life",
}

// Short greetings need word boundaries: "hi" sits inside "sushi" and "delhi",
// "hey" inside "they".
var greetingPattern = regexp.MustCompile(`\b(?:hi|hey)\b`)

// Travel vocabulary checked by lowercase substring containment against the
// space-padded message. Deliberately permissive: generic words like "best",
// " in " and " do " stay in, matching production behavior, so nearly any
// travel-adjacent sentence qualifies for place enrichment.
var locationKeywords = []string{
	// accommodation
	"hotel", "hostel", "accommodation", "place to stay", " stay ", "resort", "airbnb", "lodging",
	// food and drink
	"restaurant", "cafe", "coffee", " bar ", "food", "dining", " eat ", "eating",
	"breakfast", "lunch", "dinner", "cuisine", "drink", "ramen",
	// attractions
	"attraction", "museum", " park ", "temple", "shrine", "landmark", "beach",
	"sight", "gallery", "zoo", "monument",
	// transport
	"flight", "airport", "train", "transit", "taxi",
	// activities
	"things to do", "activities", "activity", "tours", " tour ", "experience",
	"adventure", "nightlife", "shopping", "hike",
	// trip planning
	"trip", "itinerary", "travel", "vacation", "getaway", "weekend", "visit",
	"explore", "discover", "destination", "guide", " day ",
	// generic, kept on purpose
	" see ", " do ", "best", " in ", " at ", "near", "where",
}

// Plural patterns are checked first and win over any co-occurring singular
// pattern, biasing trip/activity language toward multi-result answers.
var pluralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:restaurants|hotels|cafes|bars|places|spots|attractions)\b`),
	regexp.MustCompile(`\b(?:some|several|multiple|few)\s+(?:restaurant|hotel|cafe|bar|place|spot)`),
	regexp.MustCompile(`\b(?:list|show|give)\s+me\b`),
	regexp.MustCompile(`\btop\s+\d+\b`),
	regexp.MustCompile(`\b(?:things\s+to\s+do|activities|sights)\b`),
	regexp.MustCompile(`\bmulti[\s-]?day\b`),
	regexp.MustCompile(`\bitinerary\b`),
	regexp.MustCompile(`\bday\s+\d+\b`),
	regexp.MustCompile(`\b\d+\s+day\b`),
	regexp.MustCompile(`\b(?:entire|full)\s+day\b`),
	regexp.MustCompile(`\bweekend\b`),
	regexp.MustCompile(`\btrip\b`),
}

var singularPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\ba\s+(?:restaurant|hotel|cafe|bar|place|spot)\b`),
	regexp.MustCompile(`\bthe\s+best\s+(?:restaurant|hotel|cafe|bar|place|spot)\b`),
	regexp.MustCompile(`\bone\s+(?:restaurant|hotel|cafe|bar|place|spot)\b`),
}

var locationCapture = regexp.MustCompile(`(?i)\b(?:in|at|near)\s+([a-zA-Z]+)`)

type IntentService struct{}

func NewIntentService() IntentServiceInterface {
	return &IntentService{}
}

func (s *IntentService) Classify(message string) IntentFlags {
	return IntentFlags{
		IsBasic:    detectBasicQuestion(message),
		IsLocation: detectLocationQuery(message),
		IsSingular: detectSingularRequest(message),
	}
}

// ExtractLocation pulls the word following in/at/near, the way the chat
// pipeline has always done it. Returns "" when no preposition is present.
func (s *IntentService) ExtractLocation(message string) string {
	match := locationCapture.FindStringSubmatch(message)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func detectBasicQuestion(message string) bool {
	lower := strings.ToLower(message)
	if greetingPattern.MatchString(lower) {
		return true
	}
	padded := " " + lower + " "
	for _, keyword := range basicKeywords {
		if strings.Contains(padded, keyword) {
			return true
		}
	}
	return false
}

func detectLocationQuery(message string) bool {
	padded := " " + strings.ToLower(message) + " "
	for _, keyword := range locationKeywords {
		if strings.Contains(padded, keyword) {
			return true
		}
	}
	return false
}

func detectSingularRequest(message string) bool {
	lower := strings.ToLower(message)

	for _, pattern := range pluralPatterns {
		if pattern.MatchString(lower) {
			return false
		}
	}
	for _, pattern := range singularPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	// Ambiguous messages default to a single result.
	return true
}
