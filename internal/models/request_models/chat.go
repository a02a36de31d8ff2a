package request_models

// ChatMessage is one turn of the conversation history supplied by the front end.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

type PlaceSearchRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
	Radius   int    `json:"radius"`
}
