package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/middleware"
	"github.com/pawcare/pet-care-booking/internal/model"
)

type memNotificationStore struct {
	rows map[uint64]*model.Notification
}

func (m *memNotificationStore) ListAdmin(context.Context) ([]model.Notification, error) {
	return nil, nil
}
func (m *memNotificationStore) UnreadCountAdmin(context.Context) (int64, error) { return 0, nil }
func (m *memNotificationStore) MarkAllAdminRead(context.Context) error          { return nil }
func (m *memNotificationStore) ListByUser(context.Context, uint64) ([]model.Notification, error) {
	return nil, nil
}
func (m *memNotificationStore) UnreadCountForUser(context.Context, uint64) (int64, error) {
	return 0, nil
}
func (m *memNotificationStore) MarkAllReadForUser(context.Context, uint64) error { return nil }

func (m *memNotificationStore) MarkRead(_ context.Context, id, userID uint64, admin bool) (bool, error) {
	n, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	switch {
	case n.UserID == nil:
		if !admin {
			return false, nil
		}
	case *n.UserID != userID:
		return false, nil
	}
	n.IsRead = true
	return true, nil
}

func markReadAs(t *testing.T, h *NotificationHandler, id string, userID uint64, role string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/notifications/:id/read")
	c.SetParamNames("id")
	c.SetParamValues(id)
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxRole, role)
	if err := h.MarkRead(c); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	return rec
}

func TestMarkReadScopedToCaller(t *testing.T) {
	owner := uint64(42)
	store := &memNotificationStore{rows: map[uint64]*model.Notification{
		1: {ID: 1, Type: model.NotificationCompletion, UserID: &owner},
		2: {ID: 2, Type: model.NotificationBooking}, // admin feed
	}}
	h := NewNotificationHandler(store)

	// A different customer must not reach the owner's notification.
	if rec := markReadAs(t, h, "1", 99, model.RoleCustomer); rec.Code != http.StatusNotFound {
		t.Errorf("foreign mark read status = %d, want 404", rec.Code)
	}
	if store.rows[1].IsRead {
		t.Error("foreign caller flipped another user's notification")
	}

	// Customers must not reach the admin feed either.
	if rec := markReadAs(t, h, "2", 99, model.RoleCustomer); rec.Code != http.StatusNotFound {
		t.Errorf("admin-feed mark read status = %d, want 404", rec.Code)
	}
	if store.rows[2].IsRead {
		t.Error("customer flipped an admin-feed notification")
	}

	// The owner and the admin stay able to mark their own audiences.
	if rec := markReadAs(t, h, "1", owner, model.RoleCustomer); rec.Code != http.StatusOK {
		t.Errorf("owner mark read status = %d, want 200", rec.Code)
	}
	if !store.rows[1].IsRead {
		t.Error("owner's notification not flipped")
	}
	if rec := markReadAs(t, h, "2", 7, model.RoleAdmin); rec.Code != http.StatusOK {
		t.Errorf("admin mark read status = %d, want 200", rec.Code)
	}
	if !store.rows[2].IsRead {
		t.Error("admin-feed notification not flipped")
	}
}
