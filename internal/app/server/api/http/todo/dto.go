package todo

import "taskpad/internal/domain/todo"

type listOutput struct {
	Body []todo.Todo
}

type createInput struct {
	Body createRequest
}

// Text is schema-optional on purpose: the todo service owns the required
// check so its message reaches the client as a 400.
type createRequest struct {
	Text      string `json:"text,omitempty" doc:"Todo text"`
	Completed bool   `json:"completed,omitempty"`
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Todo id"`
	Body updateRequest
}

// Pointer fields distinguish "absent" from zero values; absent fields keep
// their stored value.
type updateRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type todoOutput struct {
	Body todo.Todo
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Todo id"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	ID int64 `json:"id" doc:"Id of the deleted todo"`
}
