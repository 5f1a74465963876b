package notification

import "time"

// FeedItem is one visible entry: either a stored notification row or a
// meeting entry computed against the viewer's markers.
type FeedItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ClearFeedResponse struct {
	ClearedNotifications int `json:"clearedNotifications"`
	MarkedMeetings       int `json:"markedMeetings"`
}
