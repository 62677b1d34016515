// Package memstore is an in-memory stand-in for the Postgres-backed stores,
// used by usecase tests. It mirrors the SQL ordering, filtering and
// optimistic locking of the real read stores and repositories.
package memstore

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Store struct {
	mu sync.Mutex

	users    map[uuid.UUID]*user.User
	items    map[uuid.UUID]*item.Item
	bookings map[uuid.UUID]*booking.Booking
	comments map[uuid.UUID]*item.Comment
	requests map[uuid.UUID]*itemrequest.ItemRequest

	// BeforeBookingUpdate runs inside UpdateStatus before the version check.
	BeforeBookingUpdate func(id uuid.UUID)
}

func New() *Store {
	return &Store{
		users:    map[uuid.UUID]*user.User{},
		items:    map[uuid.UUID]*item.Item{},
		bookings: map[uuid.UUID]*booking.Booking{},
		comments: map[uuid.UUID]*item.Comment{},
		requests: map[uuid.UUID]*itemrequest.ItemRequest{},
	}
}

// =============================================================================
// Seeding
// =============================================================================

func (s *Store) AddUser(name, email string, now time.Time) *user.User {
	n, _ := user.NewName(name)
	e, _ := user.NewEmail(email)
	u := user.NewUser(n, e, "hash", now)
	s.PutUser(u)
	return u
}

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

func (s *Store) AddItem(ownerID uuid.UUID, name string, available bool, now time.Time) *item.Item {
	n, _ := item.NewName(name)
	d, _ := item.NewDescription(name + " for rent")
	it := item.NewItem(ownerID, n, d, available, nil, now)
	s.PutItem(it)
	return it
}

func (s *Store) PutItem(it *item.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID()] = it
}

// AddBooking stores a booking in the given status, bypassing the lifecycle.
func (s *Store) AddBooking(itemID, bookerID uuid.UUID, start, end time.Time, status booking.Status) *booking.Booking {
	b := booking.ReconstructBooking(uuid.New(), itemID, bookerID,
		booking.ReconstructTimeSlot(start, end), status, 1, start, start)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b
	return b
}

func (s *Store) PutRequest(r *itemrequest.ItemRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID()] = r
}

// Booking returns a copy of the stored booking.
func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b, b.Version()), true
}

func (s *Store) Item(id uuid.UUID) (*item.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	return it, ok
}

func (s *Store) CommentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.comments)
}

// BumpVersion simulates a concurrent writer.
func (s *Store) BumpVersion(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bookings[id]
	s.bookings[id] = cloneBooking(b, b.Version()+1)
}

// =============================================================================
// UnitOfWork
// =============================================================================

// Within runs fn and restores every table if it fails.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	users, items, bookings := maps.Clone(s.users), maps.Clone(s.items), maps.Clone(s.bookings)
	comments, requests := maps.Clone(s.comments), maps.Clone(s.requests)
	s.mu.Unlock()

	if err := fn(ctx, txView{s}); err != nil {
		s.mu.Lock()
		s.users, s.items, s.bookings = users, items, bookings
		s.comments, s.requests = comments, requests
		s.mu.Unlock()
		return err
	}
	return nil
}

type txView struct{ s *Store }

func (t txView) Bookings() shared.BookingRepository         { return bookingRepo{t.s} }
func (t txView) Items() shared.ItemRepository               { return itemRepo{t.s} }
func (t txView) Users() shared.UserRepository               { return userRepo{t.s} }
func (t txView) Comments() shared.CommentRepository         { return commentRepo{t.s} }
func (t txView) ItemRequests() shared.ItemRequestRepository { return requestRepo{t.s} }
func (t txView) Reads() shared.CommandReads                 { return commandReads{t.s} }
func (t txView) DB() sqlc.DBTX                              { return nil }

type commandReads struct{ s *Store }

func (r commandReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if b, ok := r.s.Booking(id); ok {
		return b, nil
	}
	return nil, notFound("booking")
}

func (r commandReads) ItemByID(_ context.Context, id uuid.UUID) (*item.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, notFound("item")
	}
	return item.ReconstructItem(it.ID(), it.OwnerID(), it.Name(), it.Description(), it.Available(),
		it.RequestID(), it.CreatedAt(), it.UpdatedAt()), nil
}

func (r commandReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return user.ReconstructUser(u.ID(), u.Name(), u.Email(), u.PasswordHash(), u.CreatedAt(), u.UpdatedAt()), nil
}

func (r commandReads) ItemRequestByID(_ context.Context, id uuid.UUID) (*shared.ItemRequestSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, notFound("item request")
	}
	return &shared.ItemRequestSnapshot{ID: req.ID(), RequesterID: req.RequesterID()}, nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[b.ItemID()]; !ok {
		return infra.WrapRepoErr("item missing", nil, infra.KindForeignKeyViolated)
	}
	r.s.bookings[b.ID()] = cloneBooking(b, b.Version())
	return nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if r.s.BeforeBookingUpdate != nil {
		r.s.BeforeBookingUpdate(b.ID())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.bookings[b.ID()]
	if !ok || stored.Version() != b.Version() {
		return infra.WrapRepoErr("booking was modified concurrently", nil, infra.KindConflict)
	}
	r.s.bookings[b.ID()] = cloneBooking(b, b.Version()+1)
	return nil
}

type itemRepo struct{ s *Store }

func (r itemRepo) Create(_ context.Context, _ sqlc.DBTX, it *item.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[it.OwnerID()]; !ok {
		return infra.WrapRepoErr("owner missing", nil, infra.KindForeignKeyViolated)
	}
	r.s.items[it.ID()] = it
	return nil
}

func (r itemRepo) Update(_ context.Context, _ sqlc.DBTX, it *item.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID()]; !ok {
		return notFound("item")
	}
	r.s.items[it.ID()] = it
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.emailTaken(u.Email().Value(), u.ID()) {
		return infra.WrapRepoErr("users_email_key", nil, infra.KindDuplicateKey)
	}
	r.s.users[u.ID()] = u
	return nil
}

func (r userRepo) Update(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID()]; !ok {
		return notFound("user")
	}
	if r.s.emailTaken(u.Email().Value(), u.ID()) {
		return infra.WrapRepoErr("users_email_key", nil, infra.KindDuplicateKey)
	}
	r.s.users[u.ID()] = u
	return nil
}

func (s *Store) emailTaken(email string, except uuid.UUID) bool {
	for id, u := range s.users {
		if id != except && u.Email().Value() == email {
			return true
		}
	}
	return false
}

type commentRepo struct{ s *Store }

func (r commentRepo) Create(_ context.Context, _ sqlc.DBTX, c *item.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.comments[c.ID()] = c
	return nil
}

type requestRepo struct{ s *Store }

func (r requestRepo) Create(_ context.Context, _ sqlc.DBTX, req *itemrequest.ItemRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[req.RequesterID()]; !ok {
		return infra.WrapRepoErr("requester missing", nil, infra.KindForeignKeyViolated)
	}
	r.s.requests[req.ID()] = req
	return nil
}

// =============================================================================
// Catalog and directory
// =============================================================================

func (s *Store) GetItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, notFound("item")
	}
	return &shared.ItemSnapshot{ID: it.ID(), OwnerID: it.OwnerID(), Name: it.Name().String(), Available: it.Available()}, nil
}

func (s *Store) GetOwnedItemIDs(_ context.Context, ownerID uuid.UUID, page shared.Page) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0)
	for _, it := range s.ownedItems(ownerID) {
		ids = append(ids, it.ID())
	}
	return paginate(ids, page), nil
}

func (s *Store) GetUserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &shared.UserSnapshot{ID: u.ID(), Name: u.Name().Value(), Email: u.Email().Value()}, nil
}

// ownedItems orders like ListItemIDsByOwner: created_at, then id.
func (s *Store) ownedItems(ownerID uuid.UUID) []*item.Item {
	var out []*item.Item
	for _, it := range s.items {
		if it.OwnerID() == ownerID {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b *item.Item) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out
}

// =============================================================================
// Read stores
// =============================================================================

func (s *Store) BookingReads() queries.BookingReadStore { return bookingReads{s} }
func (s *Store) ItemReads() queries.ItemReadStore       { return itemReads{s} }
func (s *Store) CommentReads() queries.CommentReadStore { return commentReads{s} }
func (s *Store) UserReads() queries.UserReadStore       { return userReads{s} }
func (s *Store) RequestReads() queries.ItemRequestReadStore {
	return requestReads{s}
}

type bookingReads struct{ s *Store }

func (r bookingReads) FindViewByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return r.s.view(b), nil
}

func (r bookingReads) ListByBooker(_ context.Context, bookerID uuid.UUID, filter booking.Filter, page shared.Page) ([]*queries.BookingView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	matched := r.s.selectBookings(func(b *booking.Booking) bool {
		return b.BookerID() == bookerID && filter.Matches(b.Start(), b.End(), b.Status())
	})
	sortStartDesc(matched)
	return r.s.views(paginate(matched, page)), nil
}

func (r bookingReads) ListByItems(_ context.Context, itemIDs []uuid.UUID, filter booking.Filter) ([]*queries.BookingView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	matched := r.s.selectBookings(func(b *booking.Booking) bool {
		return slices.Contains(itemIDs, b.ItemID()) && filter.Matches(b.Start(), b.End(), b.Status())
	})
	sortStartDesc(matched)
	return r.s.views(matched), nil
}

func (r bookingReads) ListByItemAsc(_ context.Context, itemID uuid.UUID) ([]*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	matched := r.s.selectBookings(func(b *booking.Booking) bool { return b.ItemID() == itemID })
	slices.SortStableFunc(matched, func(a, b *booking.Booking) int { return a.Start().Compare(b.Start()) })
	return matched, nil
}

func (r bookingReads) ListNonRejectedByBookerAndItem(_ context.Context, bookerID, itemID uuid.UUID) ([]*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.selectBookings(func(b *booking.Booking) bool {
		return b.BookerID() == bookerID && b.ItemID() == itemID && b.Status() != booking.StatusRejected
	}), nil
}

func (s *Store) selectBookings(keep func(*booking.Booking) bool) []*booking.Booking {
	out := make([]*booking.Booking, 0)
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, cloneBooking(b, b.Version()))
		}
	}
	slices.SortFunc(out, func(a, b *booking.Booking) int { return strings.Compare(a.ID().String(), b.ID().String()) })
	return out
}

func (s *Store) view(b *booking.Booking) *queries.BookingView {
	v := &queries.BookingView{
		ID:        b.ID(),
		Start:     b.Start(),
		End:       b.End(),
		Status:    b.Status().String(),
		Item:      queries.BookingItemRef{ID: b.ItemID()},
		Booker:    queries.BookingUserRef{ID: b.BookerID()},
		CreatedAt: b.CreatedAt(),
	}
	if it, ok := s.items[b.ItemID()]; ok {
		v.Item.Name = it.Name().String()
		v.Item.OwnerID = it.OwnerID()
	}
	if u, ok := s.users[b.BookerID()]; ok {
		v.Booker.Name = u.Name().Value()
	}
	return v
}

func (s *Store) views(bs []*booking.Booking) []*queries.BookingView {
	out := make([]*queries.BookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, s.view(b))
	}
	return out
}

type itemReads struct{ s *Store }

func (r itemReads) FindByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, notFound("item")
	}
	return itemView(it), nil
}

func (r itemReads) ListByOwner(_ context.Context, ownerID uuid.UUID, page shared.Page) ([]*queries.ItemView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return itemViews(paginate(r.s.ownedItems(ownerID), page)), nil
}

func (r itemReads) Search(_ context.Context, text string, page shared.Page) ([]*queries.ItemView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	needle := strings.ToLower(text)
	var out []*item.Item
	for _, it := range r.s.items {
		if !it.Available() {
			continue
		}
		if strings.Contains(strings.ToLower(it.Name().String()), needle) ||
			strings.Contains(strings.ToLower(it.Description().String()), needle) {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b *item.Item) int { return strings.Compare(a.ID().String(), b.ID().String()) })
	return itemViews(paginate(out, page)), nil
}

func (r itemReads) ListByRequestIDs(_ context.Context, requestIDs []uuid.UUID) ([]*queries.ItemView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*item.Item
	for _, it := range r.s.items {
		if it.RequestID() != nil && slices.Contains(requestIDs, *it.RequestID()) {
			out = append(out, it)
		}
	}
	return itemViews(out), nil
}

func itemView(it *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name().String(),
		Description: it.Description().String(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
		CreatedAt:   it.CreatedAt(),
	}
}

func itemViews(items []*item.Item) []*queries.ItemView {
	out := make([]*queries.ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, itemView(it))
	}
	return out
}

type commentReads struct{ s *Store }

func (r commentReads) ListByItem(_ context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*queries.CommentView, 0)
	for _, c := range r.s.comments {
		if c.ItemID() != itemID {
			continue
		}
		v := &queries.CommentView{
			ID:        c.ID(),
			ItemID:    c.ItemID(),
			AuthorID:  c.AuthorID(),
			Text:      c.Text().String(),
			CreatedAt: c.CreatedAt(),
		}
		if u, ok := r.s.users[c.AuthorID()]; ok {
			v.AuthorName = u.Name().Value()
		}
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *queries.CommentView) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

type userReads struct{ s *Store }

func (r userReads) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return userView(u), nil
}

func (r userReads) FindCredentialsByEmail(_ context.Context, email string) (*queries.UserCredentials, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email().Value() == email {
			return &queries.UserCredentials{ID: u.ID(), Email: u.Email().Value(), PasswordHash: u.PasswordHash()}, nil
		}
	}
	return nil, notFound("user")
}

func (r userReads) List(_ context.Context, page shared.Page) ([]*queries.UserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := slices.Collect(maps.Values(r.s.users))
	slices.SortFunc(all, func(a, b *user.User) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	out := make([]*queries.UserView, 0)
	for _, u := range paginate(all, page) {
		out = append(out, userView(u))
	}
	return out, nil
}

func userView(u *user.User) *queries.UserView {
	return &queries.UserView{ID: u.ID(), Name: u.Name().Value(), Email: u.Email().Value(), CreatedAt: u.CreatedAt()}
}

type requestReads struct{ s *Store }

func (r requestReads) FindByID(_ context.Context, id uuid.UUID) (*queries.ItemRequestView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, notFound("item request")
	}
	return requestView(req), nil
}

func (r requestReads) ListByRequester(_ context.Context, requesterID uuid.UUID) ([]*queries.ItemRequestView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.selectRequests(func(req *itemrequest.ItemRequest) bool { return req.RequesterID() == requesterID }), nil
}

func (r requestReads) ListExcludingRequester(_ context.Context, requesterID uuid.UUID, page shared.Page) ([]*queries.ItemRequestView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.s.selectRequests(func(req *itemrequest.ItemRequest) bool { return req.RequesterID() != requesterID })
	return paginate(all, page), nil
}

// selectRequests orders newest first.
func (s *Store) selectRequests(keep func(*itemrequest.ItemRequest) bool) []*queries.ItemRequestView {
	out := make([]*queries.ItemRequestView, 0)
	for _, req := range s.requests {
		if keep(req) {
			out = append(out, requestView(req))
		}
	}
	slices.SortFunc(out, func(a, b *queries.ItemRequestView) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func requestView(req *itemrequest.ItemRequest) *queries.ItemRequestView {
	return &queries.ItemRequestView{
		ID:          req.ID(),
		RequesterID: req.RequesterID(),
		Description: req.Description(),
		CreatedAt:   req.CreatedAt(),
	}
}

// =============================================================================
// Helpers
// =============================================================================

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", pgx.ErrNoRows, infra.KindNotFound)
}

func cloneBooking(b *booking.Booking, version int32) *booking.Booking {
	return booking.ReconstructBooking(b.ID(), b.ItemID(), b.BookerID(), b.Slot(), b.Status(), version, b.CreatedAt(), b.UpdatedAt())
}

func sortStartDesc(bs []*booking.Booking) {
	slices.SortStableFunc(bs, func(a, b *booking.Booking) int { return b.Start().Compare(a.Start()) })
}

func paginate[T any](all []T, page shared.Page) []T {
	if page.Offset >= len(all) {
		return []T{}
	}
	end := min(page.Offset+page.Limit, len(all))
	return all[page.Offset:end]
}
