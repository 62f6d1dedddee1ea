package core

type SignUpMessage struct {
	Username string
	Password string
	Contact  string
}

type AuthMessage struct {
	Username string
	Password string
}

type PlugMessage struct {
	OwnerID     string
	Description string
	Location    string
}

type EditPlugMessage struct {
	PlugID      string
	Description string
	Location    string
}

// PlugRecord is the transport form of a plug. Ids are canonical strings and
// times are RFC 3339 in UTC.
type PlugRecord struct {
	ID       string           `json:"id"`
	Plug     string           `json:"plug"`
	Location string           `json:"location"`
	UserID   string           `json:"user_id"`
	Status   bool             `json:"status"`
	Date     string           `json:"date"`
	Likes    []ReactionRecord `json:"likes"`
	Dislikes []ReactionRecord `json:"dislikes"`
}

type ReactionRecord struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
}

// UserRecord is the public form of a user; it never carries the password hash.
type UserRecord struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Contact  string   `json:"contact"`
	Plugs    []string `json:"plugs"`
}
