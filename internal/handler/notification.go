package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/model"
)

// NotificationStore is the slice of the notification repository the
// endpoints use.
type NotificationStore interface {
	ListAdmin(ctx context.Context) ([]model.Notification, error)
	UnreadCountAdmin(ctx context.Context) (int64, error)
	MarkAllAdminRead(ctx context.Context) error
	ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error)
	UnreadCountForUser(ctx context.Context, userID uint64) (int64, error)
	MarkAllReadForUser(ctx context.Context, userID uint64) error
	MarkRead(ctx context.Context, id, userID uint64, admin bool) (bool, error)
}

// NotificationHandler serves the polling endpoints for both audiences:
// admins read the NULL-user feed, customers read their own.
type NotificationHandler struct {
	Notifications NotificationStore
}

func NewNotificationHandler(n NotificationStore) *NotificationHandler {
	return &NotificationHandler{Notifications: n}
}

// ListAdmin returns the admin feed, newest first. Admin only.
func (h *NotificationHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Notifications.ListAdmin(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"notifications": items})
}

// UnreadCountAdmin returns the admin feed's unread count. Admin only.
func (h *NotificationHandler) UnreadCountAdmin(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	n, err := h.Notifications.UnreadCountAdmin(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"unread": n})
}

// MarkAllAdminRead marks the whole admin feed read. Admin only.
func (h *NotificationHandler) MarkAllAdminRead(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Notifications.MarkAllAdminRead(ctx); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "all read"})
}

// ListMine returns the caller's notifications, newest first.
func (h *NotificationHandler) ListMine(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Notifications.ListByUser(ctx, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"notifications": items})
}

// UnreadCountMine returns the caller's unread count.
func (h *NotificationHandler) UnreadCountMine(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	n, err := h.Notifications.UnreadCountForUser(ctx, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"unread": n})
}

// MarkAllMineRead marks the caller's feed read.
func (h *NotificationHandler) MarkAllMineRead(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Notifications.MarkAllReadForUser(ctx, currentUserID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "all read"})
}

// MarkRead marks one notification read. The store scopes the flip to
// the caller, so notifications outside their audience come back 404.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	ok, err := h.Notifications.MarkRead(ctx, id, currentUserID(c), isAdmin(c))
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "read"})
}
