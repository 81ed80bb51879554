package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateCourseCache drops the cached views a write to one known semester
// can touch: the record itself, the full listing, that semester's listing and
// the GPA results. Semester labels are free text, so the exact key is deleted
// rather than matched through a SCAN glob.
func InvalidateCourseCache(ctx context.Context, cm *CacheManager, courseID uint, semester string) {
	SafeDelete(ctx, cm.Course, fmt.Sprintf("id:%d", courseID), "semester:"+semester)
	SafeInvalidatePattern(ctx, cm.Course, "list:*")
	SafeInvalidatePattern(ctx, cm.GPA, "*")
}

// InvalidateAllCourseCache drops every cached view including every semester
// listing. Updates and deletes can move a record out of a semester the
// repository no longer sees, so they cannot target a single semester key.
func InvalidateAllCourseCache(ctx context.Context, cm *CacheManager, courseID uint) {
	SafeDelete(ctx, cm.Course, fmt.Sprintf("id:%d", courseID))
	SafeInvalidatePattern(ctx, cm.Course, "list:*")
	SafeInvalidatePattern(ctx, cm.Course, "semester:*")
	SafeInvalidatePattern(ctx, cm.GPA, "*")
}
