package api

// Post is a blog post as the backend returns it. The slug is derived from
// the title server-side; the client never invents identity.
type Post struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ReadTime    string   `json:"readTime"`
	Featured    bool     `json:"featured"`
}

// PostInput is the payload for create and update calls. The backend fills
// in id, slug, publishDate and readTime.
type PostInput struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

// UserProfile is the authenticated admin identity, opaque beyond display.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserProfile `json:"user"`
}

// ContactMessage is write-only from this client's perspective.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// About is the about-page content block.
type About struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Mission     string   `json:"mission"`
	Values      []string `json:"values"`
}

// Ack is the generic acknowledgement body for mutations.
type Ack struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
