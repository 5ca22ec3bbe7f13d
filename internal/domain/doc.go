// Package domain defines the core business entities and errors:
// users, session tokens, tasks, and task categories, together with
// the validation rules that apply to them.
package domain
