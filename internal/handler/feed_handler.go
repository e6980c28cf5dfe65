package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tyfeed/internal/model"
	"tyfeed/internal/pagination"
	"tyfeed/internal/render"

	"github.com/gin-gonic/gin"
)

type ContentStore interface {
	CountPosts(categoryID int64) (int, error)
	GetPosts(categoryID int64, offset, limit int, windowed bool) ([]model.Article, error)
	GetAuthor(id int64) (*model.Author, error)
	GetCategory(id int64) (*model.Category, error)
	InsertArticle(article *model.Article) (int64, error)
	InsertMembership(articleID, categoryID int64) error
}

type FeedHandler struct {
	store    ContentStore
	pipeline *render.Pipeline
}

func NewFeedHandler(store ContentStore, pipeline *render.Pipeline) *FeedHandler {
	return &FeedHandler{store: store, pipeline: pipeline}
}

func (h *FeedHandler) GetRecentPosts(c *gin.Context) {
	h.servePosts(c, 0, nil)
}

func (h *FeedHandler) GetCategoryPosts(c *gin.Context) {
	raw := requestValue(c, "mid")
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Category ID is required",
		})
		return
	}

	categoryID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || categoryID < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid category ID",
		})
		return
	}

	category, err := h.store.GetCategory(categoryID)
	if err != nil {
		slog.Error("error fetching category", "category_id", categoryID, "error", err)
		serverError(c, err.Error())
		return
	}

	if category == nil {
		serverError(c, "category not found")
		return
	}

	h.servePosts(c, categoryID, &CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	})
}

// servePosts assembles one of the three feed shapes: out-of-range, empty
// result set, or populated. A categoryID of 0 serves the unfiltered feed.
func (h *FeedHandler) servePosts(c *gin.Context, categoryID int64, category *CategoryResponse) {
	cfg := feedConfig(c)
	page := queryInt(c, "page", 1)
	requestedSize := queryPageSize(c)

	total, err := h.store.CountPosts(categoryID)
	if err != nil {
		slog.Error("error counting posts", "category_id", categoryID, "error", err)
		serverError(c, err.Error())
		return
	}

	window := pagination.Resolve(page, requestedSize, cfg.PageSize, total)
	meta := PageMeta{
		Current:    window.Page,
		PageSize:   window.PageSize,
		Total:      window.Total,
		TotalPages: window.TotalPages,
	}

	if window.OutOfRange {
		c.JSON(http.StatusOK, FeedResponse{
			Code:     http.StatusOK,
			Message:  "page out of range",
			Data:     []PostResponse{},
			Category: category,
			Page:     meta,
		})
		return
	}

	articles, err := h.store.GetPosts(categoryID, window.Offset, window.Limit, window.UseLimit)
	if err != nil {
		slog.Error("error fetching posts", "category_id", categoryID, "error", err)
		serverError(c, err.Error())
		return
	}

	if len(articles) == 0 {
		c.JSON(http.StatusOK, FeedResponse{
			Code:     http.StatusOK,
			Message:  "no results",
			Data:     []PostResponse{},
			Category: category,
			Page:     meta,
		})
		return
	}

	data := make([]PostResponse, 0, len(articles))
	for _, a := range articles {
		content, err := h.pipeline.Render(a.Text)
		if err != nil {
			slog.Error("error rendering article", "article_id", a.ID, "error", err)
			serverError(c, err.Error())
			return
		}

		author, err := h.store.GetAuthor(a.AuthorID)
		if err != nil {
			slog.Error("error fetching author", "author_id", a.AuthorID, "error", err)
			serverError(c, err.Error())
			return
		}

		if author == nil {
			serverError(c, "author not found")
			return
		}

		data = append(data, PostResponse{
			ID:    a.ID,
			Title: a.Title,
			Content: ContentResponse{
				Markdown: content.Markdown,
				HTML:     content.HTML,
				Text:     content.Text,
				Excerpt:  content.Excerpt,
			},
			Created:  a.Created.Format(time.RFC3339),
			Modified: a.Modified.Format(time.RFC3339),
			Author: AuthorResponse{
				ID:   author.ID,
				Name: author.Name,
			},
		})
	}

	c.JSON(http.StatusOK, FeedResponse{
		Code:     http.StatusOK,
		Data:     data,
		Category: category,
		Page:     meta,
	})
}

func (h *FeedHandler) PushPost(c *gin.Context) {
	title := requestValue(c, "title")
	content := requestValue(c, "content")

	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Title and content are required",
		})
		return
	}

	now := time.Now()
	article := &model.Article{
		Title:    title,
		Text:     content,
		Created:  now,
		Modified: now,
		AuthorID: model.DefaultAuthorID,
		Status:   model.StatusPublish,
		Type:     model.TypePost,
	}

	id, err := h.store.InsertArticle(article)
	if err != nil {
		slog.Error("error inserting article", "error", err)
		serverError(c, err.Error())
		return
	}

	// The membership link is not rolled back on failure: the article stays
	// in and is served by the unfiltered feed only.
	if raw := requestValue(c, "category"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			err = h.store.InsertMembership(id, categoryID)
		}
		if err != nil {
			slog.Error("error linking article to category", "article_id", id, "category", raw, "error", err)
			serverError(c, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, PushResponse{
		Code:    http.StatusOK,
		Message: "Post created successfully",
		Data:    PushResult{ID: id},
	})
}

func serverError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// requestValue reads a parameter from the query string, falling back to the
// form body so push requests can carry parameters either way.
func requestValue(c *gin.Context, name string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return c.PostForm(name)
}

func queryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", raw, "error", err)
		return defaultValue
	}

	return v
}

// queryPageSize returns nil when the request supplies no pageSize. A
// supplied but non-numeric value counts as 0, which disables pagination,
// matching how a supplied 0 behaves.
func queryPageSize(c *gin.Context) *int {
	raw := c.Query("pageSize")
	if raw == "" {
		return nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, treating as zero", "param", "pageSize", "value", raw, "error", err)
		v = 0
	}

	return &v
}
