package company

import (
	"context"
	"errors"
	"testing"
	"time"

	"kort/internal/dual"
)

type mockRepository struct {
	ListFunc    func(ctx context.Context) ([]*Company, error)
	GetByIDFunc func(ctx context.Context, id string) (*Company, error)
}

func (m *mockRepository) List(ctx context.Context) ([]*Company, error) {
	return m.ListFunc(ctx)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Company, error) {
	return m.GetByIDFunc(ctx, id)
}

func sampleCompanies() []*Company {
	now := time.Now()
	return []*Company{
		{ID: "c1", Name: "Acme Corp", CreatedAt: now, UpdatedAt: now},
		{ID: "c2", Name: "Globex", CreatedAt: now.Add(-time.Hour), UpdatedAt: now},
	}
}

func TestListCompanies(t *testing.T) {
	storeErr := errors.New("connection refused")
	live := sampleCompanies()
	synthetic := []*Company{{ID: "m1", Name: "Company 1"}}

	tests := []struct {
		name     string
		useMock  bool
		storeErr error
		want     []*Company
	}{
		{name: "store mode serves live data", useMock: false, want: live},
		{name: "mock mode serves synthetic data", useMock: true, want: synthetic},
		{name: "store failure falls back to synthetic data", useMock: false, storeErr: storeErr, want: synthetic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockRepository{
				ListFunc: func(ctx context.Context) ([]*Company, error) { return synthetic, nil },
			}
			store := &mockRepository{
				ListFunc: func(ctx context.Context) ([]*Company, error) {
					if tt.storeErr != nil {
						return nil, tt.storeErr
					}
					return live, nil
				},
			}

			service := NewService(dual.NewExecutor(tt.useMock), mock, store)
			got, err := service.ListCompanies(context.Background())
			if err != nil {
				t.Fatalf("ListCompanies() error = %v", err)
			}
			if len(got) != len(tt.want) || got[0].ID != tt.want[0].ID {
				t.Errorf("ListCompanies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCompany(t *testing.T) {
	live := sampleCompanies()[0]

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "existing company", id: "c1"},
		{name: "missing company", id: "missing", wantErr: ErrCompanyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*Company, error) {
					if id != live.ID {
						return nil, ErrCompanyNotFound
					}
					return live, nil
				},
			}
			// The mock source agrees on the not-found case so the auto
			// fallback cannot mask it.
			mock := &mockRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*Company, error) {
					return nil, ErrCompanyNotFound
				},
			}

			service := NewService(dual.NewExecutor(false), mock, store)
			got, err := service.GetCompany(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GetCompany() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got.ID != tt.id {
				t.Errorf("GetCompany() = %v, want ID %s", got, tt.id)
			}
		})
	}
}
