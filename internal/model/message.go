package model

// Conversation is one row of the messages tab
type Conversation struct {
	ID          string
	Peer        string
	Avatar      string
	LastMessage string
	TimeText    string
	Unread      int
}

// HasUnread reports whether the conversation shows a badge
func (c Conversation) HasUnread() bool {
	return c.Unread > 0
}
