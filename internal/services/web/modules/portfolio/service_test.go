package portfolio

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

func TestListHoldingsPagesSortedRows(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{holdings: numberedHoldings(23)})
	tests := []struct {
		name      string
		page      int
		size      int
		wantFirst string
		wantRows  int
		wantPages int
	}{
		{name: "first page", page: 1, size: 10, wantFirst: "S00", wantRows: 10, wantPages: 3},
		{name: "last partial page", page: 3, size: 10, wantFirst: "S20", wantRows: 3, wantPages: 3},
		{name: "page past end clamps", page: 9, size: 10, wantFirst: "S20", wantRows: 3, wantPages: 3},
		{name: "larger size", page: 1, size: 25, wantFirst: "S00", wantRows: 23, wantPages: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			view, err := svc.listHoldings(context.Background(), tc.page, tc.size)
			if err != nil {
				t.Fatalf("listHoldings() error = %v", err)
			}
			if len(view.Rows) != tc.wantRows {
				t.Fatalf("len(Rows) = %d, want %d", len(view.Rows), tc.wantRows)
			}
			if view.Rows[0].Symbol != tc.wantFirst {
				t.Fatalf("first symbol = %q, want %q", view.Rows[0].Symbol, tc.wantFirst)
			}
			if view.Window.Pages != tc.wantPages {
				t.Fatalf("Pages = %d, want %d", view.Window.Pages, tc.wantPages)
			}
		})
	}
}

func TestListHoldingsDoesNotReorderGatewaySlice(t *testing.T) {
	t.Parallel()

	holdings := numberedHoldings(3)
	if _, err := newService(&fakeGateway{holdings: holdings}).listHoldings(context.Background(), 1, 10); err != nil {
		t.Fatalf("listHoldings() error = %v", err)
	}
	if holdings[0].Symbol != "S02" {
		t.Fatalf("gateway slice reordered: first = %q", holdings[0].Symbol)
	}
}

func TestListHoldingsMapsGatewayErrors(t *testing.T) {
	t.Parallel()

	_, err := newService(&fakeGateway{err: errors.New("boom")}).listHoldings(context.Background(), 1, 10)
	if got := apperrors.HTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus() = %d, want %d", got, http.StatusServiceUnavailable)
	}
	_, err = newService(nil).listHoldings(context.Background(), 1, 10)
	if got := apperrors.HTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus() = %d, want %d", got, http.StatusServiceUnavailable)
	}
}
