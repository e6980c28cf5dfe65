package handler

type PageMeta struct {
	Current    int `json:"current"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ContentResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	Text     string `json:"text"`
	Excerpt  string `json:"excerpt"`
}

type PostResponse struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Content  ContentResponse `json:"content"`
	Created  string          `json:"created"`
	Modified string          `json:"modified"`
	Author   AuthorResponse  `json:"author"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type FeedResponse struct {
	Code     int               `json:"code"`
	Message  string            `json:"message,omitempty"`
	Data     []PostResponse    `json:"data"`
	Category *CategoryResponse `json:"category,omitempty"`
	Page     PageMeta          `json:"page"`
}

type PushResult struct {
	ID int64 `json:"id"`
}

type PushResponse struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    PushResult `json:"data"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
