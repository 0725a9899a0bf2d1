package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"agora/internal/db"
	"agora/internal/models"
	"agora/internal/services"
	"agora/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ThreadHandler struct{}

func NewThreadHandler() *ThreadHandler {
	return &ThreadHandler{}
}

const threadsPerPage = 30

// fillCommentCounts bulk-fills the comment count for a page of threads.
func fillCommentCounts(threads []models.Thread) {
	if len(threads) == 0 {
		return
	}

	ids := make([]uint, len(threads))
	for i, t := range threads {
		ids[i] = t.ID
	}

	type countRow struct {
		ThreadID uint
		Count    int
	}
	var rows []countRow
	db.DB.Model(&models.Comment{}).
		Select("thread_id, COUNT(*) as count").
		Where("thread_id IN ?", ids).
		Group("thread_id").
		Scan(&rows)

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.ThreadID] = r.Count
	}
	for i := range threads {
		threads[i].CommentCount = counts[threads[i].ID]
	}
}

func fillScores(threads []models.Thread) {
	for i := range threads {
		threads[i].Score = services.Score(services.Target{ThreadID: &threads[i].ID})
	}
}

// List returns a page of threads, pinned first. Filterable by category slug,
// sortable by "new" (default) or "views".
func (h *ThreadHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.Query("page"))
	if page < 1 {
		page = 1
	}
	categorySlug := c.Query("category")
	sort := c.Query("sort")

	cacheKey := fmt.Sprintf("threads:list:%s:%s:%d", categorySlug, sort, page)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if data, ok := cached.(gin.H); ok {
			c.JSON(http.StatusOK, data)
			return
		}
	}

	query := db.DB.Model(&models.Thread{})
	if categorySlug != "" {
		var category models.Category
		if err := db.DB.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
			jsonError(c, http.StatusNotFound, "Category not found")
			return
		}
		query = query.Where("category_id = ?", category.ID)
	}

	var total int64
	query.Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(threadsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	order := "is_pinned DESC, created_at DESC"
	if sort == "views" {
		order = "is_pinned DESC, view_count DESC, created_at DESC"
	}

	var threads []models.Thread
	query.Preload("Author").Preload("Category").Preload("Tags").
		Order(order).
		Limit(threadsPerPage).
		Offset((page - 1) * threadsPerPage).
		Find(&threads)

	fillCommentCounts(threads)
	fillScores(threads)

	data := gin.H{
		"threads":     threads,
		"page":        page,
		"total_pages": totalPages,
	}
	utils.GetCache().Set(cacheKey, data, 1*time.Minute)

	c.JSON(http.StatusOK, data)
}

// Detail returns a thread with its top-level comments, score and reactions.
// Each read increments the view counter.
func (h *ThreadHandler) Detail(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))

	var thread models.Thread
	if err := db.DB.Preload("Author").Preload("Category").Preload("Tags").First(&thread, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Thread not found")
		return
	}

	db.DB.Model(&thread).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	thread.ViewCount++

	thread.Score = services.Score(services.Target{ThreadID: &thread.ID})

	comments, err := services.ThreadComments(thread.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	thread.CommentCount = len(comments)

	reactions, err := services.TargetReactions(services.Target{ThreadID: &thread.ID})
	if err != nil {
		serviceError(c, err)
		return
	}

	data := gin.H{
		"thread":       thread,
		"content_html": utils.RenderMarkdown(thread.Content),
		"comments":     comments,
		"reactions":    reactions,
	}

	if user := CurrentUser(c); user != nil {
		var bookmark models.Bookmark
		data["is_bookmarked"] = db.DB.Where("user_id = ? AND thread_id = ?", user.ID, thread.ID).First(&bookmark).Error == nil
		var watcher models.Watcher
		data["is_watching"] = db.DB.Where("user_id = ? AND thread_id = ?", user.ID, thread.ID).First(&watcher).Error == nil
	}

	c.JSON(http.StatusOK, data)
}

type createThreadRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CategoryID uint     `json:"categoryId"`
	Tags       []string `json:"tags"`
}

func (h *ThreadHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req createThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" || req.CategoryID == 0 {
		jsonError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Check the category up front so a bad reference maps to a 400 instead of
	// bubbling up as a foreign-key failure.
	if err := db.DB.First(&models.Category{}, req.CategoryID).Error; err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	thread := models.Thread{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   user.ID,
		CategoryID: req.CategoryID,
	}
	if err := db.DB.Create(&thread).Error; err != nil {
		serviceError(c, err)
		return
	}

	for _, name := range req.Tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := db.DB.Where("name = ?", name).First(&tag).Error; err != nil {
			tag = models.Tag{Name: name}
			if err := db.DB.Create(&tag).Error; err != nil {
				continue
			}
		}
		_ = db.DB.Model(&thread).Association("Tags").Append(&tag)
	}

	services.AddReputationAsync(user.ID, services.ReputationThreadCreate, services.ActionThreadCreate)

	invalidateThreadLists()

	thread.Author = *user
	c.JSON(http.StatusCreated, gin.H{"thread": thread})
}

func (h *ThreadHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	id := uint(utils.StringToInt(c.Param("id")))

	var thread models.Thread
	if err := db.DB.First(&thread, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Thread not found")
		return
	}

	if !services.CanDeleteThread(user, &thread) {
		jsonError(c, http.StatusForbidden, "Forbidden")
		return
	}

	// Comments, votes and reactions go with the thread via ON DELETE CASCADE.
	if err := db.DB.Delete(&thread).Error; err != nil {
		serviceError(c, err)
		return
	}

	invalidateThreadLists()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type moderateRequest struct {
	Action string `json:"action"`
}

// Moderate handles pin/unpin/lock/unlock, moderator level or above only.
func (h *ThreadHandler) Moderate(c *gin.Context) {
	user := CurrentUser(c)
	if !services.CanModerateThread(user) {
		jsonError(c, http.StatusForbidden, "Forbidden: Moderator access required")
		return
	}

	id := uint(utils.StringToInt(c.Param("id")))
	var thread models.Thread
	if err := db.DB.First(&thread, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Thread not found")
		return
	}

	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid action")
		return
	}

	var updates map[string]interface{}
	switch req.Action {
	case "pin":
		updates = map[string]interface{}{"is_pinned": true}
	case "unpin":
		updates = map[string]interface{}{"is_pinned": false}
	case "lock":
		updates = map[string]interface{}{"is_locked": true}
	case "unlock":
		updates = map[string]interface{}{"is_locked": false}
	default:
		jsonError(c, http.StatusBadRequest, "Invalid action")
		return
	}

	if err := db.DB.Model(&thread).Updates(updates).Error; err != nil {
		serviceError(c, err)
		return
	}

	invalidateThreadLists()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Search matches the query against thread titles and content.
func (h *ThreadHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	var threads []models.Thread
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		db.DB.Preload("Author").Preload("Category").
			Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern).
			Order("created_at DESC").
			Limit(50).
			Find(&threads)
	}

	fillCommentCounts(threads)
	fillScores(threads)

	c.JSON(http.StatusOK, gin.H{"threads": threads, "query": q})
}

// invalidateThreadLists drops the first page of the unfiltered list views,
// the only pages worth keeping fresh.
func invalidateThreadLists() {
	for _, sort := range []string{"", "views"} {
		utils.GetCache().Delete(fmt.Sprintf("threads:list::%s:1", sort))
	}
}
