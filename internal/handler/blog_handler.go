package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/service"
)

// BlogHandler handles the /blog pages.
type BlogHandler struct {
	blogService service.BlogServiceInterface
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService service.BlogServiceInterface) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// TagList is the tags field of a JSON body. It accepts an array of strings
// or a single comma-delimited string like the HTML form sends.
type TagList []string

// UnmarshalJSON accepts a string or an array of strings.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*t = domain.SplitTags(raw)
		return nil
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return errors.New("tags must be a string or an array of strings")
	}
	*t = domain.NormalizeTags(tags)
	return nil
}

// PostForm is the editable part of a post as submitted by a form or JSON body.
type PostForm struct {
	Title string  `json:"title" form:"title"`
	Body  string  `json:"body" form:"body"`
	Tags  TagList `json:"tags" form:"-"`
}

// bindPostForm reads a PostForm from a JSON or form-encoded body.
func bindPostForm(c *gin.Context) (PostForm, error) {
	var form PostForm
	if c.ContentType() == binding.MIMEJSON {
		err := c.ShouldBindJSON(&form)
		return form, err
	}

	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		return form, err
	}
	form.Tags = domain.SplitTags(c.Request.FormValue("tags"))
	return form, nil
}

// FormState is the post form echoed back to the client.
type FormState struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tags  string `json:"tags"`
}

func (f PostForm) state() FormState {
	return FormState{Title: f.Title, Body: f.Body, Tags: domain.JoinTags(f.Tags)}
}

// AuthorResponse is the public view of a post's author.
type AuthorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// PostResponse represents a post in the API response.
type PostResponse struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Tags      []string        `json:"tags"`
	AuthorID  string          `json:"author_id"`
	Author    *AuthorResponse `json:"author,omitempty"`
	URL       string          `json:"url"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// Flash is a one-shot message shown after a redirect.
type Flash struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ListResponse is the listing page.
type ListResponse struct {
	Title string         `json:"title"`
	Posts []PostResponse `json:"posts"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Total int            `json:"total"`
}

// PostPageResponse wraps a single post with the page title.
type PostPageResponse struct {
	Title string       `json:"title"`
	Post  PostResponse `json:"post"`
}

// FormPageResponse is the new/edit form page.
type FormPageResponse struct {
	Title string    `json:"title"`
	Post  FormState `json:"post"`
}

// RedirectResponse accompanies a Location header after a write.
type RedirectResponse struct {
	Post  *PostResponse `json:"post,omitempty"`
	Flash *Flash        `json:"flash,omitempty"`
}

// FormErrorResponse re-renders the form with the reasons it was rejected.
type FormErrorResponse struct {
	Title  string    `json:"title"`
	Errors []string  `json:"errors"`
	Post   FormState `json:"post"`
}

func postURL(slug string) string {
	return blogPath + "/" + slug
}

// toPostResponse converts a domain.Post to a PostResponse.
func toPostResponse(post *domain.Post) PostResponse {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	response := PostResponse{
		ID:        post.ID,
		Slug:      post.Slug,
		Title:     post.Title,
		Body:      post.Body,
		Tags:      tags,
		AuthorID:  post.AuthorID,
		URL:       postURL(post.Slug),
		CreatedAt: post.CreatedAt.Format(TimeFormat),
		UpdatedAt: post.UpdatedAt.Format(TimeFormat),
	}
	if post.Author != nil {
		response.Author = &AuthorResponse{
			ID:       post.Author.ID,
			Name:     post.Author.Name,
			Username: post.Author.Username,
		}
	}
	return response
}

// Index handles GET /blog
func (h *BlogHandler) Index(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	listing, err := h.blogService.ListPosts(c.Request.Context(), page, c.Query("item"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	posts := make([]PostResponse, len(listing.Posts))
	for i := range listing.Posts {
		posts[i] = toPostResponse(&listing.Posts[i])
	}

	c.JSON(http.StatusOK, ListResponse{
		Title: indexTitle,
		Posts: posts,
		Page:  listing.Page,
		Pages: listing.Pages,
		Total: listing.Total,
	})
}

// New handles GET /blog/novo
func (h *BlogHandler) New(c *gin.Context) {
	c.JSON(http.StatusOK, FormPageResponse{Title: newPostTitle, Post: FormState{}})
}

// Show handles GET /blog/:slug
func (h *BlogHandler) Show(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostPageResponse{Title: post.Title, Post: toPostResponse(post)})
}

// Edit handles GET /blog/:slug/edit
func (h *BlogHandler) Edit(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FormPageResponse{
		Title: "Edit " + post.Title,
		Post:  FormState{Title: post.Title, Body: post.Body, Tags: domain.JoinTags(post.Tags)},
	})
}

// Create handles POST /blog
func (h *BlogHandler) Create(c *gin.Context) {
	form, err := bindPostForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author := middleware.CurrentAuthor(c)
	if author == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	post, err := h.blogService.CreatePost(c.Request.Context(), domain.NewPost{
		Title:    form.Title,
		Body:     form.Body,
		Tags:     form.Tags,
		AuthorID: author.ID,
	})
	if err != nil {
		title := strings.TrimSpace(form.Title)
		if title == "" {
			title = newPostTitle
		}
		h.respondFormError(c, err, title, form)
		return
	}

	response := toPostResponse(post)
	c.Header("Location", response.URL)
	c.JSON(http.StatusCreated, RedirectResponse{
		Post:  &response,
		Flash: &Flash{Type: "success", Text: "Successfully created blog!"},
	})
}

// Update handles PUT /blog/:slug
func (h *BlogHandler) Update(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.update(c, post)
}

// UpdateByID handles PUT /articles/:id
func (h *BlogHandler) UpdateByID(c *gin.Context) {
	post, err := h.blogService.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.update(c, post)
}

func (h *BlogHandler) update(c *gin.Context, current *domain.Post) {
	form, err := bindPostForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.blogService.UpdatePost(c.Request.Context(), current.ID, domain.PostUpdate{
		Title: form.Title,
		Body:  form.Body,
		Tags:  form.Tags,
	})
	if err != nil {
		h.respondFormError(c, err, "Edit "+current.Title, form)
		return
	}

	response := toPostResponse(post)
	c.Header("Location", response.URL)
	c.JSON(http.StatusOK, RedirectResponse{Post: &response})
}

// Delete handles DELETE /blog/:slug
func (h *BlogHandler) Delete(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.blogService.DeletePost(c.Request.Context(), post.ID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", blogPath)
	c.JSON(http.StatusOK, RedirectResponse{
		Flash: &Flash{Type: "info", Text: "Deleted successfully"},
	})
}

// respondFormError answers a failed write. Input problems re-render the form
// with 422; anything else goes through respondError.
func (h *BlogHandler) respondFormError(c *gin.Context, err error, title string, form PostForm) {
	if !domain.IsUserError(err) {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusUnprocessableEntity, FormErrorResponse{
		Title:  title,
		Errors: errorMessages(err),
		Post:   form.state(),
	})
}

// respondError maps service errors to HTTP status codes.
func (h *BlogHandler) respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Messages()})
	case errors.Is(err, domain.ErrDuplicateTitle), errors.Is(err, domain.ErrDuplicateSlug):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages(err)})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		logger.ErrorContext(c.Request.Context(), "Storage unavailable",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		logger.ErrorContext(c.Request.Context(), "Request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// errorMessages returns the user-facing reasons behind err.
func errorMessages(err error) []string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Messages()
	case errors.Is(err, domain.ErrDuplicateTitle):
		return []string{domain.ErrDuplicateTitle.Error()}
	case errors.Is(err, domain.ErrDuplicateSlug):
		return []string{domain.ErrDuplicateSlug.Error()}
	default:
		return []string{err.Error()}
	}
}
