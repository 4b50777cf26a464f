package dto

type CreateTodoRequest struct {
	Title string `json:"title"`
}

// UpdateTodoRequest uses pointers so "field absent" and "zero value" can
// be told apart.
type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
