package registry

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/launchpad/internal/domain"
	"github.com/google/uuid"
)

// Remover deletes a custom site by URL.
type Remover interface {
	RemoveCustomSite(ctx context.Context, url string) bool
}

// Pending is a deletion awaiting confirmation.
type Pending struct {
	Token string      `json:"token"`
	Site  domain.Site `json:"site"`
}

// PendingDeletion holds at most one delete request until the user
// confirms or cancels it.
type PendingDeletion struct {
	mu      sync.Mutex
	list    Remover
	pending *Pending
}

func NewPendingDeletion(list Remover) *PendingDeletion {
	return &PendingDeletion{list: list}
}

// Request stages site for deletion, replacing any earlier request, and
// returns the token Confirm expects.
func (p *PendingDeletion) Request(site domain.Site) string {
	token := uuid.NewString()
	p.mu.Lock()
	p.pending = &Pending{Token: token, Site: site}
	p.mu.Unlock()
	return token
}

// Confirm removes the staged site when token matches and clears the
// request. A site already removed by other means is not an error.
func (p *PendingDeletion) Confirm(ctx context.Context, token string) (domain.Site, error) {
	p.mu.Lock()
	cur := p.pending
	switch {
	case cur == nil:
		p.mu.Unlock()
		return domain.Site{}, &NotFoundError{Resource: "pending deletion"}
	case cur.Token != token:
		p.mu.Unlock()
		return domain.Site{}, &ValidationError{Field: "token", Message: "does not match the pending deletion"}
	}
	p.pending = nil
	p.mu.Unlock()

	p.list.RemoveCustomSite(ctx, cur.Site.URL)
	return cur.Site, nil
}

// Cancel drops the staged request without side effects.
func (p *PendingDeletion) Cancel() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	had := p.pending != nil
	p.pending = nil
	return had
}

// Pending returns the staged request, if any.
func (p *PendingDeletion) Pending() (Pending, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return Pending{}, false
	}
	return *p.pending, true
}
