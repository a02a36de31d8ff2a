package services

import (
	"fmt"
	"strings"

	"jetfriend/internal/models/place_models"
	"jetfriend/internal/models/request_models"
	"jetfriend/pkg/llm"
)

const (
	maxHistoryMessages = 6
	maxPromptPlaces    = 5
	maxReviewExcerpts  = 2
	maxReviewLength    = 140
)

// jetFriendPersona is the system instruction sent on every request. Only one
// template is live; earlier revisions of it are superseded.
const jetFriendPersona = `You are JetFriend, an intelligent AI travel companion.

PERSONALITY & TONE:
- Be friendly, enthusiastic, and knowledgeable about travel
- Use a conversational, helpful tone
- Be concise but thorough
- Show excitement about travel and destinations

FORMATTING RULES:
- Keep responses under 300 words when possible
- Use simple formatting that works in chat
- For lists, use "•" bullet points or numbered items
- Use line breaks for better readability

TRAVEL EXPERTISE:
- Focus on practical, actionable travel advice
- Ask clarifying questions about budget, dates, preferences
- Suggest specific destinations, activities, and tips
- Consider seasonality, weather, and local events
- Mention approximate costs when relevant

When recommending places, always use this exact format:
<div class="place-card">
  <div class="place-image">
    <img src="[image_url]" alt="[place_name]" loading="lazy">
  </div>
  <div class="place-info">
    <h3 class="place-name">[place_name]</h3>
    <div class="place-rating">★★★★★ [rating] ([review_count] reviews)</div>
    <p class="place-description">[description]</p>
    <div class="activity-links">
      <a href="[google_maps_url]" target="_blank" rel="noopener noreferrer" class="activity-link">📍 Google Maps</a>
      <a href="[website]" target="_blank" rel="noopener noreferrer" class="activity-link">🌐 Website</a>
      <a href="tel:[phone]" class="activity-link">📞 [phone]</a>
      <a href="[yelp_url]" target="_blank" rel="noopener noreferrer" class="activity-link">⭐ Yelp</a>
    </div>
  </div>
</div>
Omit any link line whose URL was not provided.`

const placeDataInstructions = "INSTRUCTIONS: Use ONLY the literal URLs provided above to create place cards " +
	"in your response, following the exact markup template from your system prompt. " +
	"Never invent links or images."

type PromptServiceInterface interface {
	BuildPrompt(history []request_models.ChatMessage, userMessage string, places []place_models.Place) []llm.Message
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// BuildPrompt assembles the gateway payload: one system message, up to the
// last six history turns, then the user message optionally extended with the
// structured place data block.
func (s *PromptService) BuildPrompt(history []request_models.ChatMessage, userMessage string, places []place_models.Place) []llm.Message {
	messages := []llm.Message{{Role: llm.RoleSystem, Content: jetFriendPersona}}

	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	for _, msg := range history {
		role := llm.RoleAssistant
		if msg.Role == "user" {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Content})
	}

	content := userMessage
	if len(places) > 0 {
		content += "\n\n" + formatPlacesBlock(places)
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: content})
}

func formatPlacesBlock(places []place_models.Place) string {
	if len(places) > maxPromptPlaces {
		places = places[:maxPromptPlaces]
	}

	var b strings.Builder
	b.WriteString("REAL PLACE DATA FOR YOUR RESPONSE:\n")
	for i, place := range places {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, place.CategoryBadge, place.Name)
		fmt.Fprintf(&b, "   Address: %s\n", place.Address)
		fmt.Fprintf(&b, "   Rating: %.1f (%d reviews)\n", place.Rating, place.RatingCount)
		if place.PriceLevel > 0 {
			fmt.Fprintf(&b, "   Price: %s\n", strings.Repeat("$", place.PriceLevel))
		}
		if place.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", place.Description)
		}
		if place.Phone != "" {
			fmt.Fprintf(&b, "   Phone: %s\n", place.Phone)
		}
		if place.OpenNow != nil {
			status := "Closed now"
			if *place.OpenNow {
				status = "Open now"
			}
			fmt.Fprintf(&b, "   Status: %s\n", status)
		}
		fmt.Fprintf(&b, "   Image: %s\n", place.ImageURL)
		fmt.Fprintf(&b, "   Google Maps: %s\n", place.GoogleMapsURL)
		if place.Website != "" {
			fmt.Fprintf(&b, "   Website: %s\n", place.Website)
		}
		for _, entry := range orderedSearchURLs(place) {
			fmt.Fprintf(&b, "   %s: %s\n", entry[0], entry[1])
		}
		for _, review := range reviewExcerpts(place) {
			fmt.Fprintf(&b, "   Review: \"%s\"\n", review)
		}
		b.WriteString("\n")
	}
	b.WriteString(placeDataInstructions)
	return b.String()
}

// orderedSearchURLs returns the provider links in a stable display order.
func orderedSearchURLs(place place_models.Place) [][2]string {
	order := []struct{ key, label string }{
		{"yelp", "Yelp"},
		{"tripadvisor", "TripAdvisor"},
		{"opentable", "OpenTable"},
		{"booking", "Booking"},
		{"uber", "Uber"},
	}

	out := make([][2]string, 0, len(place.SearchURLs))
	for _, entry := range order {
		if link, ok := place.SearchURLs[entry.key]; ok {
			out = append(out, [2]string{entry.label, link})
		}
	}
	return out
}

func reviewExcerpts(place place_models.Place) []string {
	reviews := place.Reviews
	if len(reviews) > maxReviewExcerpts {
		reviews = reviews[:maxReviewExcerpts]
	}
	out := make([]string, 0, len(reviews))
	for _, review := range reviews {
		review = strings.TrimSpace(review)
		// Truncate on rune boundaries; reviews are frequently non-ASCII.
		if runes := []rune(review); len(runes) > maxReviewLength {
			review = string(runes[:maxReviewLength]) + "..."
		}
		out = append(out, review)
	}
	return out
}
