package api

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/config"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/store"
)

type fakeMenuStore struct {
	menus map[string]*model.WeeklyMenu
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{menus: map[string]*model.WeeklyMenu{}}
}

func (f *fakeMenuStore) SaveWeeklyMenu(_ context.Context, menu *model.WeeklyMenu) error {
	f.menus[menu.ID] = menu
	return nil
}

func (f *fakeMenuStore) ListWeeklyMenus(_ context.Context) ([]*model.WeeklyMenu, error) {
	out := make([]*model.WeeklyMenu, 0, len(f.menus))
	for _, m := range f.menus {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMenuStore) GetWeeklyMenu(_ context.Context, id string) (*model.WeeklyMenu, error) {
	m, ok := f.menus[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return m, nil
}

func (f *fakeMenuStore) DeleteWeeklyMenu(_ context.Context, id string) error {
	if _, ok := f.menus[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.menus, id)
	return nil
}

type fakeResidentStore struct {
	residents map[string]*model.Resident
	nextID    int
}

func newFakeResidentStore() *fakeResidentStore {
	return &fakeResidentStore{residents: map[string]*model.Resident{}}
}

func (f *fakeResidentStore) CreateResident(_ context.Context, res *model.Resident) error {
	f.nextID++
	res.ID = "r" + string(rune('0'+f.nextID))
	f.residents[res.ID] = res
	return nil
}

func (f *fakeResidentStore) ListResidents(_ context.Context, activeOnly bool) ([]*model.Resident, error) {
	out := make([]*model.Resident, 0, len(f.residents))
	for _, r := range f.residents {
		if activeOnly && !r.Active {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeResidentStore) GetResident(_ context.Context, id string) (*model.Resident, error) {
	r, ok := f.residents[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (f *fakeResidentStore) UpdateResident(_ context.Context, res *model.Resident) error {
	if _, ok := f.residents[res.ID]; !ok {
		return store.ErrNotFound
	}
	f.residents[res.ID] = res
	return nil
}

func (f *fakeResidentStore) DeleteResident(_ context.Context, id string) error {
	if _, ok := f.residents[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.residents, id)
	return nil
}

type fakeAttendanceStore struct {
	records []*model.AttendanceRecord
}

func (f *fakeAttendanceStore) UpsertAttendance(_ context.Context, rec *model.AttendanceRecord) error {
	for i, r := range f.records {
		if r.ResidentID == rec.ResidentID && r.Date == rec.Date && r.MealPeriod == rec.MealPeriod {
			f.records[i] = rec
			return nil
		}
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeAttendanceStore) ListAttendance(_ context.Context, date string) ([]*model.AttendanceRecord, error) {
	out := make([]*model.AttendanceRecord, 0)
	for _, r := range f.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) AttendanceSummary(_ context.Context, date string) (*model.AttendanceSummary, error) {
	summary := &model.AttendanceSummary{Date: date}
	for _, r := range f.records {
		if r.Date != date || !r.Present {
			continue
		}
		if r.MealPeriod == model.MealPeriodLunch {
			summary.Lunch++
		} else {
			summary.Dinner++
		}
	}
	return summary, nil
}

type fakeReservationStore struct {
	reservations map[string]*model.Reservation
	nextID       int
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{reservations: map[string]*model.Reservation{}}
}

func (f *fakeReservationStore) CreateReservation(_ context.Context, res *model.Reservation) error {
	f.nextID++
	res.ID = "b" + string(rune('0'+f.nextID))
	if res.Status == "" {
		res.Status = model.ReservationConfirmed
	}
	f.reservations[res.ID] = res
	return nil
}

func (f *fakeReservationStore) ListReservations(_ context.Context, date string) ([]*model.Reservation, error) {
	out := make([]*model.Reservation, 0)
	for _, r := range f.reservations {
		if date == "" || r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) GetReservation(_ context.Context, id string) (*model.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (f *fakeReservationStore) UpdateReservation(_ context.Context, id string, guestCount *int, note *string, status *model.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return store.ErrNotFound
	}
	if guestCount != nil {
		r.GuestCount = *guestCount
	}
	if note != nil {
		r.Note = *note
	}
	if status != nil {
		r.Status = *status
	}
	return nil
}

func (f *fakeReservationStore) CancelReservation(ctx context.Context, id string) error {
	status := model.ReservationCancelled
	return f.UpdateReservation(ctx, id, nil, nil, &status)
}

type fakeNotificationStore struct {
	notifications map[string]*model.Notification
	nextID        int
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{notifications: map[string]*model.Notification{}}
}

func (f *fakeNotificationStore) CreateNotification(_ context.Context, n *model.Notification) error {
	f.nextID++
	n.ID = "n" + string(rune('0'+f.nextID))
	if n.Level == "" {
		n.Level = "info"
	}
	f.notifications[n.ID] = n
	return nil
}

func (f *fakeNotificationStore) ListNotifications(_ context.Context, unreadOnly bool) ([]*model.Notification, error) {
	out := make([]*model.Notification, 0)
	for _, n := range f.notifications {
		if unreadOnly && n.ReadAt != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkNotificationRead(_ context.Context, id string) error {
	n, ok := f.notifications[id]
	if !ok {
		return store.ErrNotFound
	}
	now := n.CreatedAt
	n.ReadAt = &now
	return nil
}

func newTestStores() Stores {
	return Stores{
		Menus:         newFakeMenuStore(),
		Residents:     newFakeResidentStore(),
		Attendance:    &fakeAttendanceStore{},
		Reservations:  newFakeReservationStore(),
		Notifications: newFakeNotificationStore(),
	}
}

func newTestRouter(t *testing.T, stores Stores) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(stores, config.DefaultConfig(), zap.NewNop())
	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}
