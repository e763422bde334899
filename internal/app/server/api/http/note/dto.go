package note

import "taskpad/internal/domain/note"

type listOutput struct {
	Body []note.Note
}

type searchInput struct {
	Query string `query:"query" doc:"Free-text search over title and content"`
}

type getInput struct {
	ID int64 `path:"id" example:"1" doc:"Note id"`
}

type createInput struct {
	Body createRequest
}

// Title is schema-optional on purpose: the note service owns the required
// check so its message reaches the client as a 400.
type createRequest struct {
	Title   string `json:"title,omitempty" doc:"Note title"`
	Content string `json:"content,omitempty"`
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Note id"`
	Body updateRequest
}

// Pointer fields distinguish "absent" from zero values; absent fields keep
// their stored value.
type updateRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type noteOutput struct {
	Body note.Note
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Note id"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Message string `json:"message" example:"Note deleted successfully"`
}
