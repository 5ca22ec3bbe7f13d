package api

// Error codes carried in the response envelope. Clients branch on these,
// so they are part of the wire contract.
const (
	CodeUserNotFound      = "user_not_found"
	CodeIncorrectPassword = "incorrect_password"
	CodeInvalidUsername   = "invalid_username"
	CodeInvalidPassword   = "invalid_password"
	CodeUserAlreadyExists = "user_already_exists"
	CodeTaskNotFound      = "task_not_found"
)
