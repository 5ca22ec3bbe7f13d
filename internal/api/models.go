package api

// Common request/response structures

// CredentialsRequest defines the payload for the login and register
// endpoints. The fields carry no validation tags: credential rules
// live in the auth service, and degenerate inputs (empty username or
// password) must reach it so clients get the domain error tags
// instead of a flat bad_request.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse defines the successful response for the auth endpoints.
type UserResponse struct {
	Username string `json:"username"`
}

// TaskInputRequest defines the payload for task creation and modification.
// CategoryID keeps its camelCase wire name for client compatibility.
type TaskInputRequest struct {
	CategoryID  string `json:"categoryId"  validate:"required,len=32,hexadecimal"`
	Label       string `json:"label"       validate:"required"`
	Description string `json:"description"`
}

// TaskResponse echoes a created task back to the client.
type TaskResponse struct {
	TaskID      string `json:"task_id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
