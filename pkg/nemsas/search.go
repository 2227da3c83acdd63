package nemsas

import (
	"context"
	"strings"
	"time"

	"github.com/nemsas/claims/internal/domain/terminology"
	"github.com/nemsas/claims/pkg/debounce"
)

// SearchDelay is how long a query must sit unchanged before it is sent.
const SearchDelay = 500 * time.Millisecond

const (
	minICDQueryLen     = 3
	minProductQueryLen = 2
)

// ICDSearcher debounces classification code searches so only the final
// query of a typing burst hits the server.
type ICDSearcher struct {
	client   *Client
	debounce *debounce.Debouncer
	onResult func([]*terminology.ClassificationCode, error)
}

func NewICDSearcher(client *Client, onResult func([]*terminology.ClassificationCode, error)) *ICDSearcher {
	return &ICDSearcher{
		client:   client,
		debounce: debounce.New(SearchDelay),
		onResult: onResult,
	}
}

// Search schedules a lookup for the term. Terms shorter than three
// characters cancel any pending lookup and do nothing.
func (s *ICDSearcher) Search(ctx context.Context, codeType, term string) {
	term = strings.TrimSpace(term)
	if len(term) < minICDQueryLen {
		s.debounce.Stop()
		return
	}
	s.debounce.Trigger(func() {
		s.onResult(s.client.SearchClassificationCodes(ctx, codeType, term))
	})
}

func (s *ICDSearcher) Stop() {
	s.debounce.Stop()
}

// ProductSearcher debounces product searches, requiring two characters.
type ProductSearcher struct {
	client   *Client
	debounce *debounce.Debouncer
	onResult func(*ProductPage, error)
}

func NewProductSearcher(client *Client, onResult func(*ProductPage, error)) *ProductSearcher {
	return &ProductSearcher{
		client:   client,
		debounce: debounce.New(SearchDelay),
		onResult: onResult,
	}
}

func (s *ProductSearcher) Search(ctx context.Context, p ProductSearchParams) {
	p.Search = strings.TrimSpace(p.Search)
	if len(p.Search) < minProductQueryLen {
		s.debounce.Stop()
		return
	}
	s.debounce.Trigger(func() {
		s.onResult(s.client.SearchProducts(ctx, p))
	})
}

func (s *ProductSearcher) Stop() {
	s.debounce.Stop()
}
