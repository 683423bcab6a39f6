package response

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 && total > 0 {
		// ceil(total / limit)
		totalPages = int((total-1)/int64(limit) + 1)
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:    true,
		Data:  data,
		Meta:  meta,
		Error: nil,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   false,
		Data: nil,
		Meta: nil,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// Page reads page/page_size from the query string and slices items in memory.
func Page[T any](c *gin.Context, items []T) ([]T, PaginationMeta) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	// Compare by division first so huge page or page_size values cannot
	// overflow the offset.
	if page-1 > len(items)/pageSize {
		return items[:0], NewPaginationMeta(int64(len(items)), page, pageSize)
	}
	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := len(items)
	if pageSize < end-start {
		end = start + pageSize
	}

	return items[start:end], NewPaginationMeta(int64(len(items)), page, pageSize)
}

// Search keeps the items where any of fields(item) contains the "q" query
// parameter, compared case-insensitively.
func Search[T any](c *gin.Context, items []T, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == "" {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}
