package transport

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateNoteRequest struct {
	User  uint   `json:"user"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type UpdateNoteRequest struct {
	ID        uint   `json:"id"`
	User      uint   `json:"user"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

type CreateUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

type UpdateUserRequest struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Active   *bool    `json:"active"`
	Password string   `json:"password"`
}

type DeleteRequest struct {
	ID uint `json:"id"`
}
