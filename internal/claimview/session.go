// Package claimview drives the claim details editing flow: it loads a claim
// into an editable working copy, keeps a frozen snapshot for cancel, and
// submits edits back through a Fetcher.
package claimview

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nemsas/claims/internal/domain/claims"
)

// Fetcher is the backend the session talks to. Implementations return
// errors whose message is suitable to show the user; an empty message is
// replaced with a generic fallback.
type Fetcher interface {
	FetchClaim(ctx context.Context, id string) (*claims.Claim, error)
	UpdateClaim(ctx context.Context, id string, p *claims.UpdatePayload) error
}

const (
	fallbackLoadMessage   = "Failed to load claim"
	fallbackUpdateMessage = "Update failed"
)

// Session holds the view state for one claim details screen. Methods are
// safe for concurrent use; overlapping loads are last-write-wins, matching
// how in-flight responses land in a single-threaded UI.
type Session struct {
	fetcher Fetcher

	mu       sync.Mutex
	working  *claims.EditableClaim
	snapshot *claims.EditableClaim
	editing  bool
	errMsg   string
}

func NewSession(fetcher Fetcher) *Session {
	return &Session{fetcher: fetcher}
}

// Load fetches the claim and replaces the working copy and snapshot. An
// empty id is a no-op. On failure the error message becomes the session's
// error state and no claim is set.
func (s *Session) Load(ctx context.Context, id string) {
	if strings.TrimSpace(id) == "" {
		return
	}

	c, err := s.fetcher.FetchClaim(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || c == nil {
		s.errMsg = errorMessage(err, fallbackLoadMessage)
		s.working = nil
		s.snapshot = nil
		s.editing = false
		return
	}

	edited := claims.Normalize(c)
	snap := edited.Clone()
	s.working = &edited
	s.snapshot = &snap
	s.editing = false
	s.errMsg = ""
}

// Claim returns a copy of the working claim, or nil when none is loaded.
func (s *Session) Claim() *claims.EditableClaim {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.working == nil {
		return nil
	}
	c := s.working.Clone()
	return &c
}

// Err returns the current error state, empty when the last operation
// succeeded.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Session) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

func (s *Session) BeginEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.working != nil {
		s.editing = true
	}
}

// CancelEdit discards all edits by restoring the snapshot wholesale.
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot != nil {
		c := s.snapshot.Clone()
		s.working = &c
	}
	s.editing = false
}

// Reset drops both copies, for when the view closes.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working = nil
	s.snapshot = nil
	s.editing = false
	s.errMsg = ""
}

// mutate applies fn to a fresh clone of the working copy and swaps it in.
func (s *Session) mutate(fn func(c *claims.EditableClaim)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.working == nil || !s.editing {
		return
	}
	c := s.working.Clone()
	fn(&c)
	s.working = &c
}

func (s *Session) SetClaimName(v string)     { s.mutate(func(c *claims.EditableClaim) { c.ClaimName = v }) }
func (s *Session) SetPatientName(v string)   { s.mutate(func(c *claims.EditableClaim) { c.PatientName = v }) }
func (s *Session) SetPatientNumber(v string) { s.mutate(func(c *claims.EditableClaim) { c.PatientNumber = v }) }
func (s *Session) SetPhoneNumber(v string)   { s.mutate(func(c *claims.EditableClaim) { c.PhoneNumber = v }) }
func (s *Session) SetServiceType(v string)   { s.mutate(func(c *claims.EditableClaim) { c.ServiceType = v }) }
func (s *Session) SetServiceDate(v string)   { s.mutate(func(c *claims.EditableClaim) { c.ServiceDate = v }) }

func (s *Session) SetItemName(i int, v string) {
	s.mutate(func(c *claims.EditableClaim) {
		if i >= 0 && i < len(c.Items) {
			c.Items[i].Name = v
		}
	})
}

func (s *Session) SetItemAmount(i int, v float64) {
	s.mutate(func(c *claims.EditableClaim) {
		if i >= 0 && i < len(c.Items) {
			c.Items[i].Amount = v
		}
	})
}

// SetItemStatus changes an item's display status text. The item's original
// numeric code, if any, is kept so the payload builder can fall back to it.
func (s *Session) SetItemStatus(i int, v string) {
	s.mutate(func(c *claims.EditableClaim) {
		if i >= 0 && i < len(c.Items) {
			c.Items[i].Status = v
		}
	})
}

// AddItem appends a blank pending item for the user to fill in.
func (s *Session) AddItem() {
	s.mutate(func(c *claims.EditableClaim) {
		c.Items = append(c.Items, claims.EditableClaimItem{
			ID:       uuid.New(),
			Quantity: 1,
			Status:   claims.StatusPending,
		})
	})
}

func (s *Session) RemoveItem(i int) {
	s.mutate(func(c *claims.EditableClaim) {
		if i < 0 || i >= len(c.Items) {
			return
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	})
}

// Update submits the working copy. The validator gates submission; nothing
// goes over the wire for an invalid claim. On success the snapshot catches
// up with the working copy and editing ends.
func (s *Session) Update(ctx context.Context, providerID uuid.UUID) error {
	s.mu.Lock()
	working := s.working
	s.mu.Unlock()

	if working == nil {
		return fmt.Errorf("no claim loaded")
	}
	if errs := claims.ValidationErrors(working); len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}

	payload := claims.BuildUpdatePayload(working, providerID)
	if err := s.fetcher.UpdateClaim(ctx, working.ID.String(), &payload); err != nil {
		msg := errorMessage(err, fallbackUpdateMessage)
		s.mu.Lock()
		s.errMsg = msg
		s.mu.Unlock()
		return fmt.Errorf("%s", msg)
	}

	s.mu.Lock()
	snap := working.Clone()
	s.snapshot = &snap
	s.editing = false
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

func errorMessage(err error, fallback string) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return fallback
	}
	return err.Error()
}
